package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactwo/internal/apperror"
	"github.com/rocketscienceinc/tictactwo/internal/entity"
)

// WinMasks are the eight winning lines as 9-bit masks over entity.Board.Mask:
// top, middle and bottom row, left, middle and right column, then "\" and "/".
var WinMasks = [8]uint16{448, 56, 7, 292, 146, 73, 273, 84}

// Outcome is the result of inspecting a board for a completed line.
type Outcome struct {
	Winner    entity.Cell
	HasWinner bool
}

// Evaluate reports whether either token owns a winning line.
// Both tokens are tested against every mask and a later match overwrites an earlier one.
func Evaluate(board entity.Board) Outcome {
	masks := [2]uint16{board.Mask(entity.TokenA), board.Mask(entity.TokenB)}
	tokens := [2]entity.Cell{entity.TokenA, entity.TokenB}

	var outcome Outcome

	for _, line := range WinMasks {
		for i, mask := range masks {
			if mask&line == line {
				outcome = Outcome{Winner: tokens[i], HasWinner: true}
			}
		}
	}

	return outcome
}

func HasLine(board entity.Board, token entity.Cell) bool {
	mask := board.Mask(token)

	for _, line := range WinMasks {
		if mask&line == line {
			return true
		}
	}

	return false
}

// Validate rejects boards that legal alternating play can never produce.
func Validate(board entity.Board) error {
	if HasLine(board, entity.TokenA) && HasLine(board, entity.TokenB) {
		return fmt.Errorf("%w: %s", apperror.ErrDoubleWin, board)
	}

	diff := board.Count(entity.TokenA) - board.Count(entity.TokenB)
	if diff > 1 || diff < -1 {
		return fmt.Errorf("%w: %s", apperror.ErrTokenImbalance, board)
	}

	return nil
}
