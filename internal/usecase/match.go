package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/repository"
	"github.com/rocketscienceinc/tictactoe-engine/internal/service"
)

const (
	instrumentationName = "github.com/rocketscienceinc/tictactoe-engine/internal/usecase"

	DefaultHistoryLimit = 10
	noMove              = -1
)

var tracer = otel.Tracer(instrumentationName)

type MatchUseCase interface {
	NewRound(ctx context.Context) (*Snapshot, error)
	SetAgent(ctx context.Context, kind string) (*Snapshot, error)
	HumanTurn(ctx context.Context, cell int) (*Snapshot, error)

	Score(ctx context.Context) (*entity.Score, error)
	ResetScore(ctx context.Context) error
	History(ctx context.Context, limit int) ([]*entity.Round, error)
}

type scoreRepoDep interface {
	CreateOrUpdate(ctx context.Context, playerID string, score *entity.Score) error
	GetByPlayerID(ctx context.Context, playerID string) (*entity.Score, error)
	DeleteByPlayerID(ctx context.Context, playerID string) error
}

type roundRepoDep interface {
	Save(ctx context.Context, round *entity.Round) error
	ListByPlayerID(ctx context.Context, playerID string, limit int) ([]*entity.Round, error)
}

type MatchSettings struct {
	PlayerID   string
	Agent      string
	HumanFirst bool
	ThinkDelay time.Duration
}

// Snapshot is a copy of the match state after an operation.
type Snapshot struct {
	Board     entity.Board
	Round     entity.Round
	AgentMove int
}

// HasAgentMove reports whether the agent placed a mark during the operation.
func (that *Snapshot) HasAgentMove() bool {
	return that.AgentMove != noMove
}

// match is not safe for concurrent use.
type match struct {
	logger *slog.Logger

	scoreRepo scoreRepoDep
	roundRepo roundRepoDep

	rng      *rand.Rand
	settings MatchSettings
	now      func() time.Time

	finishedRounds metric.Int64Counter

	board *entity.Board
	round *entity.Round
	agent service.Agent
}

func NewMatchUseCase(
	logger *slog.Logger,
	rng *rand.Rand,
	scoreRepo scoreRepoDep,
	roundRepo roundRepoDep,
	settings MatchSettings,
) (MatchUseCase, error) {
	agent, err := service.NewAgent(settings.Agent, rng)
	if err != nil {
		return nil, fmt.Errorf("could not create agent: %w", err)
	}

	finishedRounds, err := otel.GetMeterProvider().Meter(instrumentationName).Int64Counter(
		"rounds.finished",
		metric.WithDescription("Number of finished rounds by outcome"),
	)
	if err != nil {
		return nil, fmt.Errorf("could not create rounds counter: %w", err)
	}

	return &match{
		logger:         logger.With("component", "match"),
		scoreRepo:      scoreRepo,
		roundRepo:      roundRepo,
		rng:            rng,
		settings:       settings,
		now:            time.Now,
		finishedRounds: finishedRounds,
		board:          entity.NewBoard(),
		agent:          agent,
	}, nil
}

// NewRound abandons the current round, if any, and starts a fresh one. When
// the agent moves first it plays its opening move right away.
func (that *match) NewRound(ctx context.Context) (*Snapshot, error) {
	ctx, span := tracer.Start(ctx, "match.NewRound", trace.WithAttributes(
		attribute.String("player.id", that.settings.PlayerID),
		attribute.String("agent.kind", that.agent.Kind()),
	))
	defer span.End()

	return that.startRound(ctx, span)
}

// SetAgent switches the opponent and starts a new round against it.
func (that *match) SetAgent(ctx context.Context, kind string) (*Snapshot, error) {
	ctx, span := tracer.Start(ctx, "match.SetAgent", trace.WithAttributes(
		attribute.String("agent.kind", kind),
	))
	defer span.End()

	agent, err := service.NewAgent(kind, that.rng)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Unknown agent")

		return nil, fmt.Errorf("could not switch agent: %w", err)
	}

	that.agent = agent
	that.settings.Agent = agent.Kind()

	that.logger.InfoContext(ctx, "agent selected", "agent", agent.Kind())

	return that.startRound(ctx, span)
}

func (that *match) startRound(ctx context.Context, span trace.Span) (*Snapshot, error) {
	log := that.logger.With("method", "startRound")

	if that.round != nil && that.round.IsOngoing() && len(that.round.Turns) > 0 {
		log.DebugContext(ctx, "abandoning round", "round_id", that.round.ID)
	}

	humanMark := entity.MarkX
	if !that.settings.HumanFirst {
		humanMark = entity.MarkO
	}

	that.board.Reset()
	that.round = entity.NewRound(uuid.NewString(), that.settings.PlayerID, that.agent.Kind(), humanMark, that.now())

	span.SetAttributes(attribute.String("round.id", that.round.ID))
	log.InfoContext(ctx, "round started", "round_id", that.round.ID, "human_mark", humanMark)

	agentMove := noMove
	if !that.settings.HumanFirst {
		move, err := that.agentTurn(ctx)
		if err != nil {
			that.round.Abandon()
			span.RecordError(err)
			span.SetStatus(codes.Error, "Agent opening failed")

			return nil, err
		}

		agentMove = move
	}

	return that.snapshot(agentMove), nil
}

// HumanTurn places the human's mark and, while the round is still open, lets
// the agent answer. A finished round is tallied and stored; storage failures
// are returned together with the final state. A round whose agent reply is
// interrupted is abandoned and needs NewRound.
func (that *match) HumanTurn(ctx context.Context, cell int) (*Snapshot, error) {
	ctx, span := tracer.Start(ctx, "match.HumanTurn", trace.WithAttributes(
		attribute.Int("cell", cell),
	))
	defer span.End()

	if that.round == nil {
		if _, err := that.startRound(ctx, span); err != nil {
			return nil, err
		}
	}

	span.SetAttributes(attribute.String("round.id", that.round.ID))

	if !that.round.IsOngoing() {
		span.SetStatus(codes.Error, "Round is over")
		return that.snapshot(noMove), apperror.ErrRoundFinished
	}

	if err := ctx.Err(); err != nil {
		return that.snapshot(noMove), fmt.Errorf("human move interrupted: %w", err)
	}

	if err := that.board.ApplyMove(cell, that.round.HumanMark); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Illegal move")

		return that.snapshot(noMove), fmt.Errorf("human move rejected: %w", err)
	}

	that.round.Record(cell, that.round.HumanMark)

	if that.isRoundOver() {
		err := that.finishRound(ctx, span)
		return that.snapshot(noMove), err
	}

	agentMove, err := that.agentTurn(ctx)
	if err != nil {
		that.round.Abandon()
		that.logger.WarnContext(ctx, "round abandoned", "round_id", that.round.ID, "error", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "Agent move failed")

		return that.snapshot(noMove), err
	}

	if that.isRoundOver() {
		err = that.finishRound(ctx, span)
		return that.snapshot(agentMove), err
	}

	return that.snapshot(agentMove), nil
}

func (that *match) agentTurn(ctx context.Context) (int, error) {
	if that.settings.ThinkDelay > 0 {
		select {
		case <-ctx.Done():
			return noMove, fmt.Errorf("agent interrupted: %w", ctx.Err())
		case <-time.After(that.settings.ThinkDelay):
		}
	}

	move := that.agent.ChooseMove(that.board, that.round.AgentMark)

	if err := that.board.ApplyMove(move, that.round.AgentMark); err != nil {
		return noMove, fmt.Errorf("agent %s chose cell %d: %w", that.agent.Kind(), move, err)
	}

	that.round.Record(move, that.round.AgentMark)

	that.logger.DebugContext(ctx, "agent moved", "round_id", that.round.ID, "cell", move)

	return move, nil
}

func (that *match) isRoundOver() bool {
	return that.board.LastWinner() != entity.Empty || !that.board.HasLegalMoves()
}

func (that *match) finishRound(ctx context.Context, span trace.Span) error {
	log := that.logger.With("method", "finishRound")

	that.round.Finish(that.board.LastWinner(), that.now())

	span.SetAttributes(attribute.String("round.outcome", that.round.Outcome))
	that.finishedRounds.Add(ctx, 1, metric.WithAttributes(
		attribute.String("outcome", that.round.Outcome),
		attribute.String("agent", that.round.Agent),
	))

	log.InfoContext(ctx, "round finished",
		"round_id", that.round.ID,
		"outcome", that.round.Outcome,
		"turns", len(that.round.Turns),
	)

	var errs []error

	if err := that.tally(ctx, that.round.Outcome); err != nil {
		log.ErrorContext(ctx, "could not update score", "error", err)
		errs = append(errs, err)
	}

	if err := that.roundRepo.Save(ctx, that.round); err != nil {
		log.ErrorContext(ctx, "could not save round", "round_id", that.round.ID, "error", err)
		errs = append(errs, fmt.Errorf("could not save round: %w", err))
	}

	if err := errors.Join(errs...); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Could not record round")

		return err
	}

	return nil
}

func (that *match) tally(ctx context.Context, outcome string) error {
	score, err := that.scoreRepo.GetByPlayerID(ctx, that.settings.PlayerID)
	if err != nil && !errors.Is(err, repository.ErrScoreNotFound) {
		return fmt.Errorf("could not get score: %w", err)
	}

	if score == nil {
		score = &entity.Score{}
	}

	score.Add(outcome)

	if err = that.scoreRepo.CreateOrUpdate(ctx, that.settings.PlayerID, score); err != nil {
		return fmt.Errorf("could not update score: %w", err)
	}

	return nil
}

func (that *match) Score(ctx context.Context) (*entity.Score, error) {
	ctx, span := tracer.Start(ctx, "match.Score")
	defer span.End()

	score, err := that.scoreRepo.GetByPlayerID(ctx, that.settings.PlayerID)
	if errors.Is(err, repository.ErrScoreNotFound) {
		return &entity.Score{}, nil
	}

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Could not get score")

		return nil, fmt.Errorf("could not get score: %w", err)
	}

	return score, nil
}

func (that *match) ResetScore(ctx context.Context) error {
	ctx, span := tracer.Start(ctx, "match.ResetScore")
	defer span.End()

	err := that.scoreRepo.DeleteByPlayerID(ctx, that.settings.PlayerID)
	if err != nil && !errors.Is(err, repository.ErrScoreNotFound) {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Could not reset score")

		return fmt.Errorf("could not reset score: %w", err)
	}

	that.logger.InfoContext(ctx, "score reset", "player_id", that.settings.PlayerID)

	return nil
}

// History returns the latest finished rounds, newest first. A non-positive
// limit falls back to DefaultHistoryLimit.
func (that *match) History(ctx context.Context, limit int) ([]*entity.Round, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}

	ctx, span := tracer.Start(ctx, "match.History", trace.WithAttributes(
		attribute.Int("limit", limit),
	))
	defer span.End()

	rounds, err := that.roundRepo.ListByPlayerID(ctx, that.settings.PlayerID, limit)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Could not list rounds")

		return nil, fmt.Errorf("could not get history: %w", err)
	}

	return rounds, nil
}

func (that *match) snapshot(agentMove int) *Snapshot {
	round := *that.round
	round.Turns = slices.Clone(that.round.Turns)

	return &Snapshot{
		Board:     *that.board,
		Round:     round,
		AgentMove: agentMove,
	}
}
