package service

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

var openingCorners = [...]int{0, 2, 6, 8}

// SearchBot plays perfectly by exhaustive minimax over the remaining game tree.
type SearchBot struct {
	rng *rand.Rand
}

func NewSearchBot(rng *rand.Rand) *SearchBot {
	return &SearchBot{rng: rng}
}

func (that *SearchBot) Kind() string {
	return SearchKind
}

type searchResult struct {
	move    int
	hasMove bool
	score   int
}

// ChooseMove returns the move that maximises own's worst-case outcome. On an
// empty board it opens in a random corner without searching. The board is
// mutated during the search and restored before returning.
func (that *SearchBot) ChooseMove(board *entity.Board, own entity.Mark) int {
	mustBeOpen(board)

	if board.CountEmpty() == len(board.Cells()) {
		return openingCorners[that.rng.IntN(len(openingCorners))]
	}

	result := minimax(board, own, own)
	if !result.hasMove {
		panic(fmt.Errorf("search found no move for %s", own))
	}

	return result.move
}

// minimax evaluates board with toMove about to play. A win scores the number
// of empty cells left plus one, so quicker wins and slower losses are
// preferred. Ties between equal scores keep the lowest move index.
func minimax(board *entity.Board, toMove, own entity.Mark) searchResult {
	opponent := toMove.Opponent()

	if board.LastWinner() == opponent {
		score := board.CountEmpty() + 1
		if opponent != own {
			score = -score
		}

		return searchResult{score: score}
	}

	if !board.HasLegalMoves() {
		return searchResult{score: 0}
	}

	maximizing := toMove == own

	best := searchResult{score: math.MaxInt}
	if maximizing {
		best.score = math.MinInt
	}

	for _, move := range board.LegalMoves() {
		if err := board.ApplyMove(move, toMove); err != nil {
			panic(fmt.Errorf("search tried illegal move %d: %w", move, err))
		}

		result := minimax(board, opponent, own)
		board.UndoMove(move)

		result.move = move
		result.hasMove = true

		if (maximizing && result.score > best.score) || (!maximizing && result.score < best.score) {
			best = result
		}
	}

	return best
}
