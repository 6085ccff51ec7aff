package apperror

import "errors"

var (
	ErrCellOccupied  = errors.New("cell is already occupied")
	ErrInvalidCell   = errors.New("invalid cell index")
	ErrRoundFinished = errors.New("round is already finished")
	ErrNoLegalMoves  = errors.New("no legal moves left")
	ErrUnknownAgent  = errors.New("unknown agent kind")
)
