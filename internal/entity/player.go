package entity

import (
	"fmt"
	"strings"
)

const (
	WinPoints  = 10
	DrawPoints = 5
)

// PlayerKind tells whether a player's moves come from input or from the bot.
type PlayerKind string

const (
	Human     PlayerKind = "human"
	Automated PlayerKind = "automated"
)

func ParsePlayerKind(s string) (PlayerKind, error) {
	switch kind := PlayerKind(strings.ToLower(strings.TrimSpace(s))); kind {
	case Human, Automated:
		return kind, nil
	default:
		return "", fmt.Errorf("unknown player kind %q", s)
	}
}

// Stats are cumulative per-player results within a session.
type Stats struct {
	Won        int `json:"won"`
	Lost       int `json:"lost"`
	Drawn      int `json:"drawn"`
	TotalGames int `json:"total_games"`
	Score      int `json:"score"`
}

type Player struct {
	Name  string     `json:"name"`
	Kind  PlayerKind `json:"kind"`
	Token Cell       `json:"token"`
	Stats Stats      `json:"stats"`
}

func (that *Player) IsAutomated() bool {
	return that.Kind == Automated
}

func (that *Player) RecordWin() {
	that.Stats.Won++
	that.Stats.Score += WinPoints
	that.Stats.TotalGames++
}

func (that *Player) RecordLoss() {
	that.Stats.Lost++
	that.Stats.TotalGames++
}

func (that *Player) RecordDraw() {
	that.Stats.Drawn++
	that.Stats.Score += DrawPoints
	that.Stats.TotalGames++
}
