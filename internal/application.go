package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactwo/internal/config"
)

// RunApp - runs the self-play sessions and logs their summary.
func RunApp(ctx context.Context, logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	runner, err := NewSelfPlay(logger, conf)
	if err != nil {
		return fmt.Errorf("could not set up self-play: %w", err)
	}

	log.Info("Starting self-play", "sessions", conf.SelfPlay.Sessions, "games", conf.SelfPlay.Games)

	summaries, err := runner.Run(ctx)
	if err != nil {
		return err
	}

	var xWins, oWins, draws, games int
	for _, summary := range summaries {
		log.Info("Session finished",
			"session_id", summary.SessionID,
			"games", summary.Games,
			"player1", summary.Players[0],
			"player2", summary.Players[1],
		)

		xWins += summary.Tally.XWins
		oWins += summary.Tally.OWins
		draws += summary.Tally.Draws
		games += summary.Games
	}

	log.Info("Self-play finished", "games", games, "x_wins", xWins, "o_wins", oWins, "draws", draws)

	return nil
}
