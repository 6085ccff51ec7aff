package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/usecase"
)

var errQuit = errors.New("quit")

type uMatch interface {
	NewRound(ctx context.Context) (*usecase.Snapshot, error)
	SetAgent(ctx context.Context, kind string) (*usecase.Snapshot, error)
	HumanTurn(ctx context.Context, cell int) (*usecase.Snapshot, error)

	Score(ctx context.Context) (*entity.Score, error)
	ResetScore(ctx context.Context) error
	History(ctx context.Context, limit int) ([]*entity.Round, error)
}

type handler func(ctx context.Context, args []string) error

// Server is a line oriented terminal front end for a match.
type Server struct {
	logger *slog.Logger
	uMatch uMatch

	in  io.Reader
	out io.Writer

	handlers map[string]handler
}

func New(logger *slog.Logger, uMatch uMatch, in io.Reader, out io.Writer) *Server {
	server := &Server{
		logger: logger.With("component", "console"),
		uMatch: uMatch,
		in:     in,
		out:    out,

		handlers: make(map[string]handler),
	}

	server.handlers["new"] = server.handleNewRound
	server.handlers["agent"] = server.handleSetAgent
	server.handlers["score"] = server.handleScore
	server.handlers["reset"] = server.handleResetScore
	server.handlers["history"] = server.handleHistory
	server.handlers["help"] = server.handleHelp
	server.handlers["quit"] = server.handleQuit
	server.handlers["exit"] = server.handleQuit

	return server
}

// Start - runs the read-eval loop until quit, end of input or ctx is done.
func (that *Server) Start(ctx context.Context) error {
	log := that.logger.With("method", "Start")

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	readErr := make(chan error, 1)

	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(that.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				readErr <- nil
				return
			}
		}

		readErr <- scanner.Err()
	}()

	that.printHelp()

	if err := that.handleNewRound(ctx, nil); err != nil {
		return err
	}

	for {
		that.printf("> ")

		select {
		case <-ctx.Done():
			log.Info("console stopped", "reason", ctx.Err())
			return nil
		case line, ok := <-lines:
			if !ok {
				if err := <-readErr; err != nil {
					return fmt.Errorf("failed to read input: %w", err)
				}

				log.Info("input closed")

				return nil
			}

			err := that.dispatch(ctx, line)
			if errors.Is(err, errQuit) {
				return nil
			}

			if err != nil {
				return err
			}
		}
	}
}

// dispatch runs one command. Only failures that should stop the console are
// returned; everything else is reported to the player.
func (that *Server) dispatch(ctx context.Context, line string) error {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return nil
	}

	if cell, err := strconv.Atoi(fields[0]); err == nil {
		return that.handleTurn(ctx, cell)
	}

	handle, ok := that.handlers[fields[0]]
	if !ok {
		that.printf("Unknown command %q, type 'help' for the list of commands.\n", fields[0])
		return nil
	}

	return handle(ctx, fields[1:])
}

func (that *Server) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(that.out, format, args...)
}
