package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rocketscienceinc/tictactoe-engine/internal/config"
	"github.com/rocketscienceinc/tictactoe-engine/internal/repository"
	"github.com/rocketscienceinc/tictactoe-engine/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-engine/internal/telemetry"
	"github.com/rocketscienceinc/tictactoe-engine/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-engine/transport/console"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	shutdownOtel, err := telemetry.InitOtel(conf.Telemetry)
	if err != nil {
		return fmt.Errorf("could not init telemetry: %w", err)
	}

	defer func() {
		if err = shutdownOtel(context.Background()); err != nil {
			log.Error("could not shutdown telemetry", "error", err)
		}
	}()

	scoreRepo, closeScores, err := newScoreRepository(ctx, log, conf)
	if err != nil {
		return err
	}
	defer closeScores()

	sqliteStorage, err := storage.NewSQLiteStorage(conf.SQLiteStoragePath)
	if err != nil {
		return fmt.Errorf("could not open sqlite storage: %w", err)
	}

	defer func() {
		if err = sqliteStorage.Close(); err != nil {
			log.Error("could not close sqlite storage", "error", err)
		}
	}()

	if err = sqliteStorage.Init(ctx); err != nil {
		return fmt.Errorf("could not init sqlite storage: %w", err)
	}

	roundRepo := repository.NewRoundRepository(sqliteStorage.Connection)

	matchUseCase, err := usecase.NewMatchUseCase(logger, newRand(conf.Seed), scoreRepo, roundRepo, usecase.MatchSettings{
		PlayerID:   conf.PlayerName,
		Agent:      conf.Agent,
		HumanFirst: !conf.AgentFirst,
		ThinkDelay: conf.ThinkDelay,
	})
	if err != nil {
		return fmt.Errorf("could not create match: %w", err)
	}

	log.Info("Starting console", "player", conf.PlayerName, "agent", conf.Agent)

	if err = console.New(logger, matchUseCase, os.Stdin, os.Stdout).Start(ctx); err != nil {
		return fmt.Errorf("console error: %w", err)
	}

	return nil
}

// newScoreRepository - uses redis when enabled, otherwise keeps scores in memory.
func newScoreRepository(ctx context.Context, log *slog.Logger, conf *config.Config) (repository.ScoreRepository, func(), error) {
	if !conf.Redis.Enabled {
		log.Info("Redis is disabled, scores are kept in memory")
		return repository.NewMemoryScoreRepository(), func() {}, nil
	}

	redisAddrString := conf.Redis.GetRedisAddr()
	if redisAddrString == "" {
		return nil, nil, ErrAddrNotFound
	}

	redisStorage, err := storage.NewRedisStorage(ctx, redisAddrString)
	if err != nil {
		return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
	}

	closeRedis := func() {
		if err := redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}

	return repository.NewScoreRepository(redisStorage.Connection), closeRedis, nil
}

// newRand - a zero seed picks a time based one.
func newRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	return rand.New(rand.NewPCG(seed, seed>>1|1))
}
