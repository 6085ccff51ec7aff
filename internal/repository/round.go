package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

type RoundRepository interface {
	Save(ctx context.Context, round *entity.Round) error
	ListByPlayerID(ctx context.Context, playerID string, limit int) ([]*entity.Round, error)
}

type dbRound struct {
	conn *sqlx.DB
}

func NewRoundRepository(conn *sqlx.DB) RoundRepository {
	return &dbRound{
		conn: conn,
	}
}

// roundRow is the rounds table layout. Timestamps are unix nanoseconds.
type roundRow struct {
	ID         string `db:"id"`
	PlayerID   string `db:"player_id"`
	Agent      string `db:"agent"`
	HumanMark  string `db:"human_mark"`
	AgentMark  string `db:"agent_mark"`
	Turns      string `db:"moves"`
	Winner     string `db:"winner"`
	Outcome    string `db:"outcome"`
	StartedAt  int64  `db:"started_at"`
	FinishedAt int64  `db:"finished_at"`
}

func (that *dbRound) Save(ctx context.Context, round *entity.Round) error {
	turnsJSON, err := json.Marshal(round.Turns)
	if err != nil {
		return fmt.Errorf("could not marshal turns: %w", err)
	}

	row := roundRow{
		ID:         round.ID,
		PlayerID:   round.PlayerID,
		Agent:      round.Agent,
		HumanMark:  string(round.HumanMark),
		AgentMark:  string(round.AgentMark),
		Turns:      string(turnsJSON),
		Winner:     string(round.Winner),
		Outcome:    round.Outcome,
		StartedAt:  round.StartedAt.UnixNano(),
		FinishedAt: round.FinishedAt.UnixNano(),
	}

	query := `INSERT INTO rounds (id, player_id, agent, human_mark, agent_mark, moves, winner, outcome, started_at, finished_at)
		VALUES (:id, :player_id, :agent, :human_mark, :agent_mark, :moves, :winner, :outcome, :started_at, :finished_at)`

	if _, err = that.conn.NamedExecContext(ctx, query, row); err != nil {
		return fmt.Errorf("can't save round: %w", err)
	}

	return nil
}

// ListByPlayerID returns the player's finished rounds, newest first.
func (that *dbRound) ListByPlayerID(ctx context.Context, playerID string, limit int) ([]*entity.Round, error) {
	query := `SELECT id, player_id, agent, human_mark, agent_mark, moves, winner, outcome, started_at, finished_at
		FROM rounds WHERE player_id = ? ORDER BY finished_at DESC, rowid DESC LIMIT ?`

	var rows []roundRow
	if err := that.conn.SelectContext(ctx, &rows, query, playerID, limit); err != nil {
		return nil, fmt.Errorf("can't list rounds: %w", err)
	}

	rounds := make([]*entity.Round, 0, len(rows))
	for _, row := range rows {
		var turns []entity.Turn
		if err := json.Unmarshal([]byte(row.Turns), &turns); err != nil {
			return nil, fmt.Errorf("failed to unmarshal turns of round %s: %w", row.ID, err)
		}

		rounds = append(rounds, &entity.Round{
			ID:         row.ID,
			PlayerID:   row.PlayerID,
			Agent:      row.Agent,
			HumanMark:  entity.Mark(row.HumanMark),
			AgentMark:  entity.Mark(row.AgentMark),
			Turns:      turns,
			Winner:     entity.Mark(row.Winner),
			Outcome:    row.Outcome,
			Status:     entity.StatusFinished,
			StartedAt:  time.Unix(0, row.StartedAt).UTC(),
			FinishedAt: time.Unix(0, row.FinishedAt).UTC(),
		})
	}

	return rounds, nil
}
