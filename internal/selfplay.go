package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/rocketscienceinc/tictactwo/internal/config"
	"github.com/rocketscienceinc/tictactwo/internal/entity"
	"github.com/rocketscienceinc/tictactwo/internal/pkg/random"
	"github.com/rocketscienceinc/tictactwo/internal/tictactoe"
	"github.com/rocketscienceinc/tictactwo/internal/transport/console"
	"github.com/rocketscienceinc/tictactwo/internal/usecase"
)

var ErrHumanInSelfPlay = errors.New("self-play needs two automated players")

type playerSetup struct {
	name  string
	kind  entity.PlayerKind
	token entity.Cell
}

// SessionSummary is what one self-play session produced.
type SessionSummary struct {
	SessionID string           `json:"session_id"`
	Games     int              `json:"games"`
	Players   [2]entity.Player `json:"players"`
	Tally     console.Tally    `json:"tally"`
}

// SelfPlay runs bot-against-bot sessions concurrently, one goroutine per session.
type SelfPlay struct {
	logger   *slog.Logger
	options  tictactoe.Options
	players  [2]playerSetup
	seed     uint64
	sessions int
	games    int
}

func NewSelfPlay(logger *slog.Logger, conf *config.Config) (*SelfPlay, error) {
	var players [2]playerSetup

	for i, player := range []config.Player{conf.Players.One, conf.Players.Two} {
		kind, token, err := player.Parse()
		if err != nil {
			return nil, fmt.Errorf("player %d: %w", i+1, err)
		}

		if kind != entity.Automated {
			return nil, fmt.Errorf("%w: player %d is %s", ErrHumanInSelfPlay, i+1, kind)
		}

		players[i] = playerSetup{name: player.Name, kind: kind, token: token}
	}

	seed := conf.Engine.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano()) //nolint: gosec // not security sensitive
	}

	return &SelfPlay{
		logger: logger.With("component", "self-play"),
		options: tictactoe.Options{
			CenterBonusProbability: conf.Engine.CenterBonusProbability,
			TieBreakProbability:    conf.Engine.TieBreakProbability,
		},
		players:  players,
		seed:     seed,
		sessions: conf.SelfPlay.Sessions,
		games:    conf.SelfPlay.Games,
	}, nil
}

// Run plays every session to completion or until ctx is cancelled, checked between games.
func (that *SelfPlay) Run(ctx context.Context) ([]SessionSummary, error) {
	summaries := make([]SessionSummary, that.sessions)

	group, ctx := errgroup.WithContext(ctx)
	for i := range that.sessions {
		group.Go(func() error {
			summary, err := that.runSession(ctx, i)
			summaries[i] = summary

			return err
		})
	}

	if err := group.Wait(); err != nil {
		return nil, fmt.Errorf("self-play failed: %w", err)
	}

	return summaries, nil
}

func (that *SelfPlay) runSession(ctx context.Context, index int) (SessionSummary, error) {
	listener := console.NewListener(that.logger)
	session := usecase.NewSession(that.logger, random.New(that.seed+uint64(index)), that.options, listener) //nolint: gosec // index is small
	listener.Attach(session.ID())

	log := that.logger.With("session_id", session.ID(), "method", "runSession")

	for i, player := range that.players {
		if err := session.SetPlayer(i+1, player.kind, player.name, player.token); err != nil {
			return SessionSummary{}, fmt.Errorf("failed to set player %d: %w", i+1, err)
		}
	}

	summary := SessionSummary{SessionID: session.ID()}

	for range that.games {
		if ctx.Err() != nil {
			log.Info("session interrupted", "games", summary.Games)
			break
		}

		if err := session.StartPlaying(); err != nil {
			return summary, fmt.Errorf("session %s failed to play: %w", session.ID(), err)
		}
		summary.Games++
	}

	for i := range summary.Players {
		player, err := session.Player(i + 1)
		if err != nil {
			return summary, fmt.Errorf("failed to get player %d: %w", i+1, err)
		}
		summary.Players[i] = player
	}
	summary.Tally = listener.Tally()

	return summary, nil
}
