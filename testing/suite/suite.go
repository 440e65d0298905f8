package suite

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/rocketscienceinc/tictactwo/internal/pkg/random/mocks"
)

const maxWaitDuration = 30 * time.Second

// neverTieBreak is drawn once the queued values run out; it loses every coin flip at probability 0.5.
const neverTieBreak = 0.99

type Suite struct {
	*testing.T
	Logger *slog.Logger

	// Random replays queued values, then returns neverTieBreak.
	Random *mocks.MockRandom
}

func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	level := slog.LevelWarn
	if testing.Verbose() {
		level = slog.LevelDebug
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))

	rnd := mocks.NewMockRandom()
	rnd.Default = neverTieBreak

	return ctx, &Suite{
		T:      t,
		Logger: logger,
		Random: rnd,
	}
}
