package console

import (
	"log/slog"

	"github.com/rocketscienceinc/tictactwo/internal/entity"
)

// Tally counts what a listener has seen.
type Tally struct {
	Moves  int `json:"moves"`
	XWins  int `json:"x_wins"`
	OWins  int `json:"o_wins"`
	Draws  int `json:"draws"`
	Turns  int `json:"turns"`
	Played int `json:"played"`
}

// Listener logs session notifications. It belongs to a single session.
type Listener struct {
	logger *slog.Logger
	tally  Tally
}

func NewListener(logger *slog.Logger) *Listener {
	return &Listener{
		logger: logger.With("component", "console-listener"),
	}
}

// Attach tags every following log line with the session id.
func (that *Listener) Attach(sessionID string) {
	that.logger = that.logger.With("session_id", sessionID)
}

func (that *Listener) BoardChanged(index int, token entity.Cell) {
	that.tally.Moves++
	that.logger.Debug("board changed", "cell", index, "token", token.String())
}

func (that *Listener) GameWon(token entity.Cell) {
	that.tally.Played++

	switch token {
	case entity.TokenA:
		that.tally.XWins++
	case entity.TokenB:
		that.tally.OWins++
	}

	that.logger.Info("game won", "token", token.String())
}

func (that *Listener) GameDrawn() {
	that.tally.Played++
	that.tally.Draws++
	that.logger.Info("game drawn")
}

func (that *Listener) TurnChanged(playerIndex int) {
	that.tally.Turns++
	that.logger.Debug("turn changed", "player", playerIndex)
}

func (that *Listener) Tally() Tally {
	return that.tally
}
