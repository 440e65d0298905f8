package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactwo/internal/apperror"
)

func TestParseToken(t *testing.T) {
	t.Run("Accepts both token letters", func(t *testing.T) {
		for input, expected := range map[string]Cell{"X": TokenA, "o": TokenB, " x ": TokenA} {
			token, err := ParseToken(input)

			require.NoError(t, err, "input %q", input)
			assert.Equal(t, expected, token, "input %q", input)
		}
	})

	t.Run("Rejects anything else", func(t *testing.T) {
		// When: parsing a value that names no token
		_, err := ParseToken("-")

		// Then: ErrInvalidToken is returned
		assert.ErrorIs(t, err, apperror.ErrInvalidToken)
	})
}

func TestCell_Opponent(t *testing.T) {
	assert.Equal(t, TokenB, TokenA.Opponent())
	assert.Equal(t, TokenA, TokenB.Opponent())
	assert.Equal(t, EmptyCell, EmptyCell.Opponent())
}

func TestBoard_Mask(t *testing.T) {
	t.Run("Index zero is the most significant bit", func(t *testing.T) {
		// Given: a board with X in the first and last cell
		board := Board{TokenA, EmptyCell, EmptyCell, EmptyCell, TokenB, EmptyCell, EmptyCell, EmptyCell, TokenA}

		// Then: the masks carry bit 8 and bit 0 for X and bit 4 for O
		assert.Equal(t, uint16(0b100000001), board.Mask(TokenA))
		assert.Equal(t, uint16(0b000010000), board.Mask(TokenB))
	})

	t.Run("Empty board has empty masks", func(t *testing.T) {
		assert.Zero(t, Board{}.Mask(TokenA))
		assert.Zero(t, Board{}.Mask(TokenB))
	})
}

func TestBoard_Cells(t *testing.T) {
	// Given: a partially filled board
	board := Board{TokenA, TokenB, EmptyCell, EmptyCell, TokenA, EmptyCell, EmptyCell, EmptyCell, EmptyCell}

	// Then: counts and empty cells reflect the placements
	assert.Equal(t, 2, board.Count(TokenA))
	assert.Equal(t, 1, board.Count(TokenB))
	assert.Equal(t, []int{2, 3, 5, 6, 7, 8}, board.EmptyCells())
	assert.False(t, board.IsFull())
	assert.Equal(t, "XO-/-X-/---", board.String())
}

func TestBoard_IsFull(t *testing.T) {
	board := Board{TokenA, TokenB, TokenA, TokenA, TokenB, TokenB, TokenB, TokenA, TokenA}

	assert.True(t, board.IsFull())
	assert.Empty(t, board.EmptyCells())
}

func TestIsValidIndex(t *testing.T) {
	assert.True(t, IsValidIndex(0))
	assert.True(t, IsValidIndex(Size-1))
	assert.False(t, IsValidIndex(-1))
	assert.False(t, IsValidIndex(Size))
}
