package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

type Mark string

const (
	Empty Mark = ""
	MarkX Mark = "X"
	MarkO Mark = "O"
)

const boardSize = 9

// Opponent returns the other player's mark. Empty has no opponent.
func (that Mark) Opponent() Mark {
	switch that {
	case MarkX:
		return MarkO
	case MarkO:
		return MarkX
	default:
		return Empty
	}
}

func (that Mark) IsPlayer() bool {
	return that == MarkX || that == MarkO
}

// Board is the 3x3 grid, indexed row-major (index = row*3 + col).
//
// lastWinner only reflects the most recently applied move: it is derived from
// that move's lines and never from a whole-board scan.
type Board struct {
	cells      [boardSize]Mark
	lastWinner Mark
}

func NewBoard() *Board {
	return &Board{}
}

// LegalMoves returns the empty cells in ascending order.
func (that *Board) LegalMoves() []int {
	moves := make([]int, 0, boardSize)
	for i, cell := range that.cells {
		if cell == Empty {
			moves = append(moves, i)
		}
	}

	return moves
}

func (that *Board) HasLegalMoves() bool {
	for _, cell := range that.cells {
		if cell == Empty {
			return true
		}
	}

	return false
}

func (that *Board) CountEmpty() int {
	count := 0
	for _, cell := range that.cells {
		if cell == Empty {
			count++
		}
	}

	return count
}

func (that *Board) IsFull() bool {
	return !that.HasLegalMoves()
}

// ApplyMove places mark on the given cell and records mark as the last winner
// when the move completes a line through that cell. The board is left
// untouched when the move is rejected.
func (that *Board) ApplyMove(move int, mark Mark) error {
	if move < 0 || move >= boardSize {
		return fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, move)
	}

	if that.cells[move] != Empty {
		return apperror.ErrCellOccupied
	}

	that.cells[move] = mark
	if that.completesLine(move, mark) {
		that.lastWinner = mark
	}

	return nil
}

// UndoMove empties the cell and clears the last winner unconditionally.
// It is the inverse of the ApplyMove that was just made on the same cell and
// exists for search backtracking only; it must not be used to take back moves
// during play.
func (that *Board) UndoMove(move int) {
	that.cells[move] = Empty
	that.lastWinner = Empty
}

func (that *Board) Reset() {
	that.cells = [boardSize]Mark{}
	that.lastWinner = Empty
}

func (that *Board) LastWinner() Mark {
	return that.lastWinner
}

func (that *Board) Cell(index int) Mark {
	return that.cells[index]
}

func (that *Board) Cells() [boardSize]Mark {
	return that.cells
}

// completesLine checks the row and column of move and, for corners and the
// centre, both diagonals. Edge cells are not on a diagonal.
func (that *Board) completesLine(move int, mark Mark) bool {
	row, col := move/3, move%3

	if that.cells[row*3] == mark && that.cells[row*3+1] == mark && that.cells[row*3+2] == mark {
		return true
	}

	if that.cells[col] == mark && that.cells[col+3] == mark && that.cells[col+6] == mark {
		return true
	}

	if move%2 == 0 {
		if that.cells[0] == mark && that.cells[4] == mark && that.cells[8] == mark {
			return true
		}

		if that.cells[2] == mark && that.cells[4] == mark && that.cells[6] == mark {
			return true
		}
	}

	return false
}

// String renders the board as three rows, showing the index of empty cells.
func (that *Board) String() string {
	var sb strings.Builder

	for row := 0; row < 3; row++ {
		if row > 0 {
			sb.WriteString("---+---+---\n")
		}

		for col := 0; col < 3; col++ {
			index := row*3 + col
			symbol := string(that.cells[index])
			if symbol == "" {
				symbol = fmt.Sprintf("%d", index)
			}

			if col > 0 {
				sb.WriteString("|")
			}
			sb.WriteString(" " + symbol + " ")
		}
		sb.WriteString("\n")
	}

	return sb.String()
}
