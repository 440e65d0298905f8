package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	app "github.com/rocketscienceinc/tictactwo/internal"
	"github.com/rocketscienceinc/tictactwo/internal/config"
)

// main - is the entry point of the application. It initializes the configuration, logger, and runs the application.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		configPath string
		games      int
		sessions   int
	)

	rootCmd := &cobra.Command{
		Use:   "tictactwo",
		Short: "Bot-against-bot self-play for the 3x3 board engine",
		RunE: func(cmd *cobra.Command, _ []string) error {
			conf := initConfig(configPath)

			if cmd.Flags().Changed("games") {
				conf.SelfPlay.Games = games
			}
			if cmd.Flags().Changed("sessions") {
				conf.SelfPlay.Sessions = sessions
			}

			if err := conf.Validate(); err != nil {
				return fmt.Errorf("invalid flags: %w", err)
			}

			logger := initLogger(conf)

			if err := app.RunApp(cmd.Context(), logger, conf); err != nil {
				return fmt.Errorf("app run failed: %w", err)
			}

			return nil
		},
		SilenceUsage: true,
	}

	rootCmd.Flags().StringVar(&configPath, "config", "", "Config file path (default ./config.yml)")
	rootCmd.Flags().IntVar(&games, "games", 0, "Games per session (env: SELF_PLAY_GAMES)")
	rootCmd.Flags().IntVar(&sessions, "sessions", 0, "Concurrent sessions (env: SELF_PLAY_SESSIONS)")
	rootCmd.SetContext(context.Background())

	return rootCmd
}

// initialize config.
func initConfig(path string) *config.Config {
	if path != "" {
		return config.MustLoad(path)
	}

	baseDir, err := os.Getwd()
	if err != nil {
		panic(fmt.Errorf("failed to get current directory: %w", err))
	}

	return config.MustLoad(filepath.Join(baseDir, "./config.yml"))
}

// initialize logger.
func initLogger(conf *config.Config) *slog.Logger {
	var level slog.Level

	switch conf.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	}

	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
}
