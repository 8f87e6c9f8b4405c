package apperror

import "errors"

var (
	ErrIllegalMove  = errors.New("illegal move")
	ErrOutOfRange   = errors.New("cell is out of range")
	ErrInvalidQuery = errors.New("invalid query for board state")
	ErrInvalidBoard = errors.New("invalid board")

	ErrGameNotFound = errors.New("game not found")
	ErrGameFinished = errors.New("game is already finished")
	ErrNotYourTurn  = errors.New("it's not your turn")
	ErrInvalidMark  = errors.New("invalid player mark")
)
