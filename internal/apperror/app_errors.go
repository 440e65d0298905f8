package apperror

import (
	"errors"
	"fmt"
)

var (
	ErrIllegalMove  = errors.New("illegal move")
	ErrInvalidCell  = fmt.Errorf("%w: invalid cell index", ErrIllegalMove)
	ErrCellOccupied = fmt.Errorf("%w: cell is already occupied", ErrIllegalMove)
	ErrInvalidToken = errors.New("invalid token")

	ErrGameFinished      = errors.New("game is already finished")
	ErrGameNotInProgress = errors.New("game is not in progress")
	ErrGameInProgress    = errors.New("game is in progress")
	ErrNotYourTurn       = errors.New("it's not your turn")
	ErrNoLegalMoves      = errors.New("no legal moves")

	ErrInvalidPlayerIndex   = errors.New("invalid player index")
	ErrInteractionSuspended = errors.New("interaction is suspended")

	ErrDoubleWin      = errors.New("both tokens own a winning line")
	ErrTokenImbalance = errors.New("token counts differ by more than one")
)
