package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactwo/internal/apperror"
)

const (
	Width  = 3
	Height = 3
	Size   = Width * Height

	CenterCell = Size / 2
)

// IllegalScore marks an occupied cell in a ScoreTable.
const IllegalScore = -1

// Cell is the state of a single board position.
type Cell uint8

const (
	EmptyCell Cell = iota
	TokenA
	TokenB
)

// ParseToken converts a configuration value ("X" or "O") into a token.
func ParseToken(s string) (Cell, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "X":
		return TokenA, nil
	case "O":
		return TokenB, nil
	default:
		return EmptyCell, fmt.Errorf("%w: %q", apperror.ErrInvalidToken, s)
	}
}

func (that Cell) IsToken() bool {
	return that == TokenA || that == TokenB
}

// Opponent returns the other token. EmptyCell has no opponent and maps to itself.
func (that Cell) Opponent() Cell {
	switch that {
	case TokenA:
		return TokenB
	case TokenB:
		return TokenA
	default:
		return EmptyCell
	}
}

func (that Cell) String() string {
	switch that {
	case TokenA:
		return "X"
	case TokenB:
		return "O"
	default:
		return "-"
	}
}

// Board is the 3x3 grid stored row-major: row 0 is 0..2, row 1 is 3..5, row 2 is 6..8.
type Board [Size]Cell

// ScoreTable holds one desirability score per board index.
type ScoreTable [Size]int

func IsValidIndex(index int) bool {
	return index >= 0 && index < Size
}

// Mask encodes the cells holding token as a 9-bit value; index 0 is the most significant bit.
func (that Board) Mask(token Cell) uint16 {
	var mask uint16

	for i, cell := range that {
		if cell == token {
			mask |= 1 << (Size - 1 - i)
		}
	}

	return mask
}

func (that Board) Count(cell Cell) int {
	count := 0

	for _, c := range that {
		if c == cell {
			count++
		}
	}

	return count
}

func (that Board) EmptyCells() []int {
	cells := make([]int, 0, Size)

	for i, cell := range that {
		if cell == EmptyCell {
			cells = append(cells, i)
		}
	}

	return cells
}

func (that Board) IsFull() bool {
	return that.Count(EmptyCell) == 0
}

// String renders the board as three slash-separated rows, e.g. "XO-/-X-/--O".
func (that Board) String() string {
	var sb strings.Builder

	for i, cell := range that {
		if i > 0 && i%Width == 0 {
			sb.WriteByte('/')
		}
		sb.WriteString(cell.String())
	}

	return sb.String()
}
