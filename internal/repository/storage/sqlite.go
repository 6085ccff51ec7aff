package storage

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	// registers the sqlite3 driver.
	_ "github.com/mattn/go-sqlite3"
)

const MemoryPath = ":memory:"

type Storage struct {
	Connection *sqlx.DB
}

func NewSQLiteStorage(path string) (*Storage, error) {
	conn, err := sqlx.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("can't open database: %w", err)
	}

	// every new connection to :memory: gets its own empty database
	if path == MemoryPath {
		conn.SetMaxOpenConns(1)
	}

	if err = conn.Ping(); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("can't connect to database: %w", err)
	}

	return &Storage{Connection: conn}, nil
}

func (that *Storage) Init(ctx context.Context) error {
	query := `CREATE TABLE IF NOT EXISTS rounds (
		id          TEXT PRIMARY KEY,
		player_id   TEXT    NOT NULL,
		agent       TEXT    NOT NULL,
		human_mark  TEXT    NOT NULL,
		agent_mark  TEXT    NOT NULL,
		moves       TEXT    NOT NULL,
		winner      TEXT    NOT NULL DEFAULT '',
		outcome     TEXT    NOT NULL,
		started_at  INTEGER NOT NULL,
		finished_at INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS rounds_player_finished ON rounds (player_id, finished_at)`

	if _, err := that.Connection.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("can't create table: %w", err)
	}

	return nil
}

func (that *Storage) Close() error {
	if err := that.Connection.Close(); err != nil {
		return fmt.Errorf("can't close database: %w", err)
	}

	return nil
}
