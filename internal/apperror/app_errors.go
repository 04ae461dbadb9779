package apperror

import "errors"

var (
	ErrGameFinished  = errors.New("game is already finished")
	ErrNotYourTurn   = errors.New("it's not your turn")
	ErrCellOccupied  = errors.New("cell is already occupied")
	ErrInvalidCell   = errors.New("invalid cell index")
	ErrGameNotFound  = errors.New("game not found")
	ErrImpossible    = errors.New("board is not reachable by legal play")
	ErrMalformedBody = errors.New("malformed request body")
)
