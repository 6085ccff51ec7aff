package console

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/usecase"
)

const timeLayout = "2006-01-02 15:04:05"

func (that *Server) handleTurn(ctx context.Context, cell int) error {
	log := that.logger.With("method", "handleTurn")

	snapshot, err := that.uMatch.HumanTurn(ctx, cell)

	switch {
	case errors.Is(err, apperror.ErrInvalidCell):
		that.printf("Cell %d does not exist, pick a cell from 0 to 8.\n", cell)
		return nil
	case errors.Is(err, apperror.ErrCellOccupied):
		that.printf("Cell %d is already taken.\n", cell)
		return nil
	case errors.Is(err, apperror.ErrRoundFinished):
		that.printf("The round is over, type 'new' to play again.\n")
		return nil
	case errors.Is(err, context.Canceled):
		return nil
	case errors.Is(err, context.DeadlineExceeded):
		that.printf("The round was interrupted, type 'new' to play again.\n")
		return nil
	case err != nil && snapshot == nil:
		return fmt.Errorf("failed to play cell %d: %w", cell, err)
	case err != nil:
		log.Error("round was not recorded", "error", err)
		that.printf("Warning: the round could not be recorded: %v\n", err)
	}

	that.printSnapshot(snapshot)

	if snapshot.Round.IsFinished() {
		return that.handleScore(ctx, nil)
	}

	return nil
}

func (that *Server) handleNewRound(ctx context.Context, _ []string) error {
	snapshot, err := that.uMatch.NewRound(ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}

	if err != nil {
		return fmt.Errorf("failed to start round: %w", err)
	}

	that.printf("New round against the %s agent. You play %s.\n", snapshot.Round.Agent, snapshot.Round.HumanMark)
	that.printSnapshot(snapshot)

	return nil
}

func (that *Server) handleSetAgent(ctx context.Context, args []string) error {
	if len(args) != 1 {
		that.printf("Usage: agent <random|search|easy|hard>\n")
		return nil
	}

	snapshot, err := that.uMatch.SetAgent(ctx, args[0])
	if errors.Is(err, apperror.ErrUnknownAgent) {
		that.printf("Unknown agent %q, use random, search, easy or hard.\n", args[0])
		return nil
	}

	if errors.Is(err, context.Canceled) {
		return nil
	}

	if err != nil {
		return fmt.Errorf("failed to switch agent: %w", err)
	}

	that.printf("New round against the %s agent. You play %s.\n", snapshot.Round.Agent, snapshot.Round.HumanMark)
	that.printSnapshot(snapshot)

	return nil
}

func (that *Server) handleScore(ctx context.Context, _ []string) error {
	score, err := that.uMatch.Score(ctx)
	if err != nil {
		that.logger.Error("could not get score", "error", err)
		that.printf("Score is unavailable: %v\n", err)

		return nil
	}

	that.printf("Score: you %d, agent %d, ties %d\n", score.HumanWins, score.AgentWins, score.Ties)

	return nil
}

func (that *Server) handleResetScore(ctx context.Context, _ []string) error {
	if err := that.uMatch.ResetScore(ctx); err != nil {
		that.logger.Error("could not reset score", "error", err)
		that.printf("Score was not reset: %v\n", err)

		return nil
	}

	that.printf("Score reset.\n")

	return nil
}

func (that *Server) handleHistory(ctx context.Context, _ []string) error {
	rounds, err := that.uMatch.History(ctx, usecase.DefaultHistoryLimit)
	if err != nil {
		that.logger.Error("could not get history", "error", err)
		that.printf("History is unavailable: %v\n", err)

		return nil
	}

	if len(rounds) == 0 {
		that.printf("No finished rounds yet.\n")
		return nil
	}

	for _, round := range rounds {
		cells := make([]string, 0, len(round.Turns))
		for _, turn := range round.Turns {
			cells = append(cells, fmt.Sprintf("%s%d", turn.Mark, turn.Cell))
		}

		that.printf("%s  %-6s  %-5s  %s\n",
			round.FinishedAt.Local().Format(timeLayout), round.Agent, round.Outcome, strings.Join(cells, " "))
	}

	return nil
}

func (that *Server) handleHelp(_ context.Context, _ []string) error {
	that.printHelp()
	return nil
}

func (that *Server) handleQuit(_ context.Context, _ []string) error {
	that.printf("Bye!\n")
	return errQuit
}

func (that *Server) printHelp() {
	that.printf(`Commands:
  0-8           place your mark on a cell
  new           start a new round
  agent <kind>  play against random (easy) or search (hard)
  score         show the score
  reset         reset the score
  history       show the latest rounds
  help          show this help
  quit          leave the game
`)
}

func (that *Server) printSnapshot(snapshot *usecase.Snapshot) {
	if snapshot.HasAgentMove() {
		that.printf("Agent plays %d.\n", snapshot.AgentMove)
	}

	that.printf("%s\n", snapshot.Board.String())

	if !snapshot.Round.IsFinished() {
		return
	}

	switch snapshot.Round.Outcome {
	case entity.OutcomeHuman:
		that.printf("You win!\n")
	case entity.OutcomeAgent:
		that.printf("The agent wins.\n")
	default:
		that.printf("It's a tie.\n")
	}
}
