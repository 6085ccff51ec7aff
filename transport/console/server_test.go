package console

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-engine/internal/repository"
	"github.com/rocketscienceinc/tictactoe-engine/internal/service"
	"github.com/rocketscienceinc/tictactoe-engine/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-engine/testing/suite"
)

func newTestServer(t *testing.T, in io.Reader) (*Server, *bytes.Buffer, usecase.MatchUseCase) {
	t.Helper()

	_, db := suite.NewSQLite(t)
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	match, err := usecase.NewMatchUseCase(logger, rand.New(rand.NewPCG(1, 2)),
		repository.NewMemoryScoreRepository(), repository.NewRoundRepository(db),
		usecase.MatchSettings{PlayerID: "alice", Agent: service.SearchKind, HumanFirst: true})
	require.NoError(t, err)

	out := &bytes.Buffer{}

	return New(logger, match, in, out), out, match
}

func TestServer_Commands(t *testing.T) {
	// Given: a session that tries every kind of command
	input := strings.Join([]string{
		"help",
		"4",
		"4",
		"9",
		"foo",
		"",
		"agent",
		"agent medium",
		"score",
		"history",
		"quit",
		"2",
	}, "\n")

	server, out, _ := newTestServer(t, strings.NewReader(input))

	// When: the console runs
	err := server.Start(context.Background())

	// Then: every command is answered and nothing after quit is read
	require.NoError(t, err)

	output := out.String()
	assert.Contains(t, output, "Commands:")
	assert.Contains(t, output, "New round against the search agent. You play X.")
	assert.Contains(t, output, "Agent plays 0.")
	assert.Contains(t, output, "Cell 4 is already taken.")
	assert.Contains(t, output, "Cell 9 does not exist")
	assert.Contains(t, output, `Unknown command "foo"`)
	assert.Contains(t, output, "Usage: agent")
	assert.Contains(t, output, `Unknown agent "medium"`)
	assert.Contains(t, output, "Score: you 0, agent 0, ties 0")
	assert.Contains(t, output, "No finished rounds yet.")
	assert.Contains(t, output, "Bye!")
	assert.NotContains(t, output, "Agent plays 1.")
}

func TestServer_PlaysFullRound(t *testing.T) {
	ctx := context.Background()

	// Given: a player who tries the cells in order
	input := "0\n1\n2\n3\n4\n5\n6\n7\n8\nhistory\n"
	server, out, match := newTestServer(t, strings.NewReader(input))

	// When: the console runs until the input ends
	err := server.Start(ctx)

	// Then: exactly one round was finished and recorded
	require.NoError(t, err)

	score, err := match.Score(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, score.Total())
	assert.Zero(t, score.HumanWins)

	rounds, err := match.History(ctx, 0)
	require.NoError(t, err)
	require.Len(t, rounds, 1)

	output := out.String()
	assert.Contains(t, output, "Score: you 0,")
	assert.True(t, strings.Contains(output, "The agent wins.") || strings.Contains(output, "It's a tie."),
		"no result line in output:\n%s", output)
	assert.NotContains(t, output, "You win!")
	assert.Contains(t, output, "X0 O")
	assert.NotContains(t, output, "No finished rounds yet.")
}

func TestServer_SwitchesAgent(t *testing.T) {
	server, out, _ := newTestServer(t, strings.NewReader("agent easy\nnew\n"))

	err := server.Start(context.Background())

	require.NoError(t, err)
	assert.Contains(t, out.String(), "New round against the random agent.")
	assert.Equal(t, 1, strings.Count(out.String(), "the search agent"))
}

func TestServer_StopsOnCancel(t *testing.T) {
	// Given: input that never arrives
	reader, writer := io.Pipe()
	t.Cleanup(func() { _ = writer.Close() })

	server, _, _ := newTestServer(t, reader)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// When/Then: the console returns once the context is done
	require.NoError(t, server.Start(ctx))
}
