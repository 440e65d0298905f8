package tictactoe

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactwo/internal/apperror"
	"github.com/rocketscienceinc/tictactwo/internal/entity"
	"github.com/rocketscienceinc/tictactwo/internal/pkg/random"
)

const (
	DefaultCenterBonusProbability = 0.5
	DefaultTieBreakProbability    = 0.5
)

// Notifier receives board events in the order they happen.
type Notifier interface {
	BoardChanged(index int, token entity.Cell)
	GameWon(token entity.Cell)
	GameDrawn()
}

type nopNotifier struct{}

func (nopNotifier) BoardChanged(int, entity.Cell) {}
func (nopNotifier) GameWon(entity.Cell)           {}
func (nopNotifier) GameDrawn()                    {}

type Status int

const (
	StatusOngoing Status = iota
	StatusWon
	StatusDrawn
)

func (that Status) String() string {
	switch that {
	case StatusWon:
		return "won"
	case StatusDrawn:
		return "drawn"
	default:
		return "ongoing"
	}
}

// Result is the state of the game after the latest refresh.
type Result struct {
	Status Status
	Winner entity.Cell
}

func (that Result) IsFinished() bool {
	return that.Status != StatusOngoing
}

type Options struct {
	CenterBonusProbability float64
	TieBreakProbability    float64
}

func DefaultOptions() Options {
	return Options{
		CenterBonusProbability: DefaultCenterBonusProbability,
		TieBreakProbability:    DefaultTieBreakProbability,
	}
}

// BoardController owns the authoritative board and the score table derived from it.
// It is not safe for concurrent use.
type BoardController struct {
	logger    *slog.Logger
	evaluator *Evaluator
	rnd       random.Random
	notifier  Notifier

	tieBreakProbability float64

	board     entity.Board
	scores    entity.ScoreTable
	nextMover entity.Cell
	result    Result
}

func NewBoardController(logger *slog.Logger, rnd random.Random, opts Options, notifier Notifier) *BoardController {
	if notifier == nil {
		notifier = nopNotifier{}
	}

	controller := &BoardController{
		logger:              logger.With("component", "board-controller"),
		evaluator:           NewEvaluator(rnd, opts.CenterBonusProbability),
		rnd:                 rnd,
		notifier:            notifier,
		tieBreakProbability: opts.TieBreakProbability,
	}
	controller.Reset()

	return controller
}

// SetNotifier replaces the event receiver; nil silences events.
func (that *BoardController) SetNotifier(notifier Notifier) {
	if notifier == nil {
		notifier = nopNotifier{}
	}
	that.notifier = notifier
}

// Reset clears the board and re-rolls the initial score table.
func (that *BoardController) Reset() {
	that.board = entity.Board{}
	that.scores = that.evaluator.InitialTable()
	that.nextMover = entity.EmptyCell
	that.result = Result{Status: StatusOngoing}
}

// ApplyMove places token at index, then refreshes the outcome and scores for the opponent.
// A rejected move leaves the board and score table untouched.
func (that *BoardController) ApplyMove(index int, token entity.Cell) (Result, error) {
	if err := that.validateMove(index, token); err != nil {
		return that.result, err
	}

	that.board[index] = token
	that.logger.Debug("move applied", "cell", index, "token", token.String(), "board", that.board.String())
	that.notifier.BoardChanged(index, token)

	return that.Refresh(token.Opponent()), nil
}

func (that *BoardController) validateMove(index int, token entity.Cell) error {
	if !token.IsToken() {
		return fmt.Errorf("%w: %d", apperror.ErrInvalidToken, token)
	}

	if that.result.IsFinished() {
		return apperror.ErrGameFinished
	}

	if !entity.IsValidIndex(index) {
		return fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, index)
	}

	if that.board[index] != entity.EmptyCell {
		return fmt.Errorf("%w: cell %d", apperror.ErrCellOccupied, index)
	}

	return nil
}

// Refresh re-derives the outcome. A won or drawn board is reported to the notifier;
// otherwise the score table is rebuilt for nextMover.
func (that *BoardController) Refresh(nextMover entity.Cell) Result {
	that.nextMover = nextMover

	if err := Validate(that.board); errors.Is(err, apperror.ErrDoubleWin) {
		that.logger.Error("board invariant violated", "error", err)
	}

	outcome := Evaluate(that.board)

	switch {
	case outcome.HasWinner:
		that.result = Result{Status: StatusWon, Winner: outcome.Winner}
		that.notifier.GameWon(outcome.Winner)
	case that.board.IsFull():
		that.result = Result{Status: StatusDrawn}
		that.notifier.GameDrawn()
	default:
		that.result = Result{Status: StatusOngoing}
		that.scores = that.evaluator.ScoreTable(that.board, nextMover)
	}

	return that.result
}

// BestMove returns the highest scoring legal cell. Ties are settled by a coin flip
// so that equal positions do not always produce the same reply.
func (that *BoardController) BestMove() (int, bool) {
	best, bestScore := -1, entity.IllegalScore

	for i, score := range that.scores {
		if score == entity.IllegalScore {
			continue
		}

		switch {
		case best < 0 || score > bestScore:
			best, bestScore = i, score
		case score == bestScore && random.Chance(that.rnd, that.tieBreakProbability):
			best = i
		}
	}

	return best, best >= 0
}

// WinnerToken derives the winner from the cached next mover: the side that was not about to play.
func (that *BoardController) WinnerToken() (entity.Cell, bool) {
	if that.result.Status != StatusWon || !that.nextMover.IsToken() {
		return entity.EmptyCell, false
	}

	return that.nextMover.Opponent(), true
}

func (that *BoardController) Board() entity.Board {
	return that.board
}

func (that *BoardController) ScoreTable() entity.ScoreTable {
	return that.scores
}

func (that *BoardController) Result() Result {
	return that.result
}

func (that *BoardController) NextMover() entity.Cell {
	return that.nextMover
}
