package service

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

const (
	RandomKind = "random"
	SearchKind = "search"
)

// Agent chooses the next move for its own mark. Callers must only ask for a
// move while the round is still open; a terminal board is a programming error.
type Agent interface {
	ChooseMove(board *entity.Board, own entity.Mark) int
	Kind() string
}

// NewAgent builds the agent for kind. "easy" and "hard"/"smart" are accepted as
// aliases of the random and search agents.
func NewAgent(kind string, rng *rand.Rand) (Agent, error) {
	switch NormalizeKind(kind) {
	case RandomKind:
		return NewRandomBot(rng), nil
	case SearchKind:
		return NewSearchBot(rng), nil
	default:
		return nil, fmt.Errorf("%w: %q", apperror.ErrUnknownAgent, kind)
	}
}

// NormalizeKind maps aliases onto the canonical kind. Unknown kinds are
// returned lower-cased and unchanged.
func NormalizeKind(kind string) string {
	switch kind = strings.ToLower(strings.TrimSpace(kind)); kind {
	case "easy", RandomKind:
		return RandomKind
	case "hard", "smart", SearchKind:
		return SearchKind
	default:
		return kind
	}
}

// mustBeOpen panics when an agent is asked to move on a terminal board.
func mustBeOpen(board *entity.Board) {
	if board.LastWinner() != entity.Empty {
		panic(fmt.Errorf("agent asked to move: %w", apperror.ErrRoundFinished))
	}

	if !board.HasLegalMoves() {
		panic(fmt.Errorf("agent asked to move: %w", apperror.ErrNoLegalMoves))
	}
}
