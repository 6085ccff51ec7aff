package service

import (
	"math/rand/v2"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// RandomBot picks uniformly among the legal moves.
type RandomBot struct {
	rng *rand.Rand
}

func NewRandomBot(rng *rand.Rand) *RandomBot {
	return &RandomBot{rng: rng}
}

func (that *RandomBot) Kind() string {
	return RandomKind
}

func (that *RandomBot) ChooseMove(board *entity.Board, _ entity.Mark) int {
	mustBeOpen(board)

	availableCells := board.LegalMoves()

	return availableCells[that.rng.IntN(len(availableCells))]
}
