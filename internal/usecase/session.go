package usecase

import (
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactwo/internal/apperror"
	"github.com/rocketscienceinc/tictactwo/internal/entity"
	"github.com/rocketscienceinc/tictactwo/internal/pkg"
	"github.com/rocketscienceinc/tictactwo/internal/pkg/random"
	"github.com/rocketscienceinc/tictactwo/internal/service"
	"github.com/rocketscienceinc/tictactwo/internal/tictactoe"
)

const (
	PlayerOne = 1
	PlayerTwo = 2
)

// Listener receives board events and turn changes of one session.
type Listener interface {
	tictactoe.Notifier
	TurnChanged(playerIndex int)
}

type nopListener struct{}

func (nopListener) BoardChanged(int, entity.Cell) {}
func (nopListener) GameWon(entity.Cell)           {}
func (nopListener) GameDrawn()                    {}
func (nopListener) TurnChanged(int)               {}

type State int

const (
	StateIdle State = iota
	StatePlayer1Turn
	StatePlayer2Turn
)

func (that State) String() string {
	switch that {
	case StatePlayer1Turn:
		return "player1"
	case StatePlayer2Turn:
		return "player2"
	default:
		return "idle"
	}
}

// PlayerIndex is 1 or 2 while a game is running and 0 when idle.
func (that State) PlayerIndex() int {
	switch that {
	case StatePlayer1Turn:
		return PlayerOne
	case StatePlayer2Turn:
		return PlayerTwo
	default:
		return 0
	}
}

// DefaultPlayers is the setup a new session starts with: a human X against the bot's O.
func DefaultPlayers() [2]entity.Player {
	return [2]entity.Player{
		{Name: "Player 1", Kind: entity.Human, Token: entity.TokenA},
		{Name: "Player 2", Kind: entity.Automated, Token: entity.TokenB},
	}
}

// Session tracks whose turn it is and which token each player controls.
// Each session owns its board and random source; a session is not safe for concurrent use.
type Session struct {
	id       string
	logger   *slog.Logger
	listener Listener

	controller *tictactoe.BoardController
	bot        service.BotService

	players   [2]entity.Player
	state     State
	suspended bool
}

func NewSession(logger *slog.Logger, rnd random.Random, opts tictactoe.Options, listener Listener) *Session {
	if listener == nil {
		listener = nopListener{}
	}

	id := pkg.GenerateSessionID()
	log := logger.With("session_id", id)

	controller := tictactoe.NewBoardController(log, rnd, opts, listener)

	return &Session{
		id:         id,
		logger:     log.With("component", "session"),
		listener:   listener,
		controller: controller,
		bot:        service.NewBotService(log, controller),
		players:    DefaultPlayers(),
		state:      StateIdle,
	}
}

func (that *Session) ID() string {
	return that.id
}

func (that *Session) State() State {
	return that.state
}

// StartPlaying clears the board, hands the first turn to player 1 and lets bots move.
func (that *Session) StartPlaying() error {
	log := that.logger.With("method", "StartPlaying")

	if that.suspended {
		return apperror.ErrInteractionSuspended
	}

	if that.state != StateIdle {
		return apperror.ErrGameInProgress
	}

	that.controller.Reset()
	that.state = StatePlayer1Turn
	log.Info("game started", "player1", that.players[0].Name, "player2", that.players[1].Name)
	that.listener.TurnChanged(PlayerOne)

	if _, err := that.PlayAutomatedTurns(); err != nil {
		return fmt.Errorf("failed to play automated turns: %w", err)
	}

	return nil
}

// AdvanceTurn hands the turn to the other player. It does nothing while idle.
func (that *Session) AdvanceTurn() {
	switch that.state {
	case StatePlayer1Turn:
		that.state = StatePlayer2Turn
	case StatePlayer2Turn:
		that.state = StatePlayer1Turn
	default:
		return
	}

	that.listener.TurnChanged(that.state.PlayerIndex())
}

// EndToIdle finishes the running game and books result into both players' stats.
// An unfinished result returns to idle without touching the stats.
func (that *Session) EndToIdle(result tictactoe.Result) {
	if that.state == StateIdle {
		return
	}

	that.state = StateIdle

	switch result.Status {
	case tictactoe.StatusWon:
		for i := range that.players {
			if that.players[i].Token == result.Winner {
				that.players[i].RecordWin()
			} else {
				that.players[i].RecordLoss()
			}
		}
	case tictactoe.StatusDrawn:
		for i := range that.players {
			that.players[i].RecordDraw()
		}
	default:
		return
	}

	that.logger.Info("game finished",
		"method", "EndToIdle",
		"status", result.Status.String(),
		"winner", result.Winner.String(),
		"board", that.controller.Board().String(),
	)
}

// Abort resigns the running game without recording a result.
func (that *Session) Abort() {
	if that.state == StateIdle {
		return
	}

	that.logger.Info("game aborted", "method", "Abort", "board", that.controller.Board().String())
	that.state = StateIdle
}

// PlayMove places the current human player's token at index, then lets bots reply.
// The returned result is the state after the last applied move.
func (that *Session) PlayMove(index int) (tictactoe.Result, error) {
	if that.suspended {
		return that.controller.Result(), apperror.ErrInteractionSuspended
	}

	if that.state == StateIdle {
		return that.controller.Result(), apperror.ErrGameNotInProgress
	}

	if that.currentPlayer().IsAutomated() {
		return that.controller.Result(), apperror.ErrNotYourTurn
	}

	result, err := that.applyMove(index)
	if err != nil {
		return result, err
	}

	if result.IsFinished() {
		return result, nil
	}

	return that.PlayAutomatedTurns()
}

// PlayAutomatedTurns lets the bot move for as long as an automated player holds the turn.
func (that *Session) PlayAutomatedTurns() (tictactoe.Result, error) {
	result := that.controller.Result()

	for that.state != StateIdle && that.currentPlayer().IsAutomated() {
		cell, err := that.bot.ChooseMove()
		if err != nil {
			return result, fmt.Errorf("bot failed to choose a move: %w", err)
		}

		if result, err = that.applyMove(cell); err != nil {
			return result, fmt.Errorf("bot failed to make turn: %w", err)
		}
	}

	return result, nil
}

func (that *Session) applyMove(index int) (tictactoe.Result, error) {
	player := that.currentPlayer()

	result, err := that.controller.ApplyMove(index, player.Token)
	if err != nil {
		return result, fmt.Errorf("player %q failed to move: %w", player.Name, err)
	}

	that.logger.Debug("turn played",
		"method", "applyMove",
		"player", player.Name,
		"cell", index,
		"status", result.Status.String(),
	)

	if result.IsFinished() {
		that.EndToIdle(result)
	} else {
		that.AdvanceTurn()
	}

	return result, nil
}

// SetPlayer configures player index (1 or 2) while idle. The other player
// always receives the complementary token.
func (that *Session) SetPlayer(index int, kind entity.PlayerKind, name string, token entity.Cell) error {
	if that.suspended {
		return apperror.ErrInteractionSuspended
	}

	if index != PlayerOne && index != PlayerTwo {
		return fmt.Errorf("%w: %d", apperror.ErrInvalidPlayerIndex, index)
	}

	if that.state != StateIdle {
		return apperror.ErrGameInProgress
	}

	if !token.IsToken() {
		return fmt.Errorf("%w: %d", apperror.ErrInvalidToken, token)
	}

	player := &that.players[index-1]
	player.Kind = kind
	player.Name = name
	player.Token = token

	that.players[2-index].Token = token.Opponent()

	return nil
}

func (that *Session) Player(index int) (entity.Player, error) {
	if index != PlayerOne && index != PlayerTwo {
		return entity.Player{}, fmt.Errorf("%w: %d", apperror.ErrInvalidPlayerIndex, index)
	}

	return that.players[index-1], nil
}

// CurrentPlayer returns the player holding the turn, or false while idle.
func (that *Session) CurrentPlayer() (entity.Player, bool) {
	if that.state == StateIdle {
		return entity.Player{}, false
	}

	return *that.currentPlayer(), true
}

func (that *Session) currentPlayer() *entity.Player {
	return &that.players[that.state.PlayerIndex()-1]
}

// Suspend blocks user-facing interactions, e.g. while a result banner is shown.
func (that *Session) Suspend() {
	that.suspended = true
}

func (that *Session) Resume() {
	that.suspended = false
}

func (that *Session) Suspended() bool {
	return that.suspended
}

func (that *Session) Board() entity.Board {
	return that.controller.Board()
}

func (that *Session) ScoreTable() entity.ScoreTable {
	return that.controller.ScoreTable()
}

func (that *Session) BestMove() (int, bool) {
	return that.controller.BestMove()
}

func (that *Session) Result() tictactoe.Result {
	return that.controller.Result()
}
