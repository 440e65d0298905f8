package tictactoe

import (
	"github.com/rocketscienceinc/tictactwo/internal/entity"
	"github.com/rocketscienceinc/tictactwo/internal/pkg/random"
)

const (
	CenterBonus = 5

	singleFriendScore = 2
	singleFoeScore    = 1
	friendLineScore   = 20
	foeBlockScore     = 9
)

type step struct {
	row, col int
}

// axis is a line through a cell, walked in direction and in its reverse.
type axis struct {
	direction step
	passes    func(row, col int) bool
}

func anyCell(_, _ int) bool { return true }

var axes = [4]axis{
	{direction: step{row: -1, col: 0}, passes: anyCell},
	{direction: step{row: 0, col: 1}, passes: anyCell},
	{direction: step{row: 1, col: 1}, passes: func(row, col int) bool { return row == col }},
	{direction: step{row: -1, col: 1}, passes: func(row, col int) bool { return row+col == entity.Width-1 }},
}

// Evaluator scores empty cells for the token about to move. It looks one move ahead at most.
type Evaluator struct {
	rnd                    random.Random
	centerBonusProbability float64
}

func NewEvaluator(rnd random.Random, centerBonusProbability float64) *Evaluator {
	return &Evaluator{
		rnd:                    rnd,
		centerBonusProbability: centerBonusProbability,
	}
}

// ScoreCell returns the heuristic score of placing mover at index, or entity.IllegalScore if the cell is taken.
func (that *Evaluator) ScoreCell(board entity.Board, mover entity.Cell, index int) int {
	if !entity.IsValidIndex(index) || board[index] != entity.EmptyCell {
		return entity.IllegalScore
	}

	score := 0

	if index == entity.CenterCell && random.Chance(that.rnd, that.centerBonusProbability) {
		score += CenterBonus
	}

	for _, line := range axes {
		friend, foe := countLine(board, mover, index, line)
		score += lineScore(friend, foe)
	}

	return score
}

// ScoreTable scores every cell of board for mover.
func (that *Evaluator) ScoreTable(board entity.Board, mover entity.Cell) entity.ScoreTable {
	var table entity.ScoreTable

	for i := range table {
		table[i] = that.ScoreCell(board, mover, i)
	}

	return table
}

// InitialTable is the table for an empty board; only the center bonus can be non-zero.
func (that *Evaluator) InitialTable() entity.ScoreTable {
	return that.ScoreTable(entity.Board{}, entity.TokenA)
}

// countLine walks from index to both board edges along line and counts mover and opponent cells.
func countLine(board entity.Board, mover entity.Cell, index int, line axis) (int, int) {
	row, col := index/entity.Width, index%entity.Width
	if !line.passes(row, col) {
		return 0, 0
	}

	foe := mover.Opponent()
	friendCount, foeCount := 0, 0

	for _, dir := range [2]step{line.direction, {row: -line.direction.row, col: -line.direction.col}} {
		r, c := row+dir.row, col+dir.col

		for r >= 0 && r < entity.Height && c >= 0 && c < entity.Width {
			switch board[r*entity.Width+c] {
			case mover:
				friendCount++
			case foe:
				foeCount++
			}

			r, c = r+dir.row, c+dir.col
		}
	}

	return friendCount, foeCount
}

func lineScore(friend, foe int) int {
	score := 0

	if friend == 1 {
		score += singleFriendScore
	}
	if foe == 1 {
		score += singleFoeScore
	}
	if friend > 1 {
		score += friendLineScore
	}
	if foe > 1 {
		score += foeBlockScore
	}

	return score
}
