package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactwo/internal/apperror"
	"github.com/rocketscienceinc/tictactwo/internal/config"
	"github.com/rocketscienceinc/tictactwo/internal/entity"
)

const validConfig = `
log-level: debug
engine:
  center-bonus-probability: 1
  tie-break-probability: 0.25
  seed: 99
players:
  one:
    name: Alice
    kind: human
    token: O
  two:
    name: Bot
    token: X
self-play:
  sessions: 3
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	t.Run("Reads the file and fills defaults", func(t *testing.T) {
		// Given: a config file without a games count
		path := writeConfig(t, validConfig)

		// When: loading it
		conf, err := config.Load(path)

		// Then: file values and defaults are combined
		require.NoError(t, err)
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, config.Engine{CenterBonusProbability: 1, TieBreakProbability: 0.25, Seed: 99}, conf.Engine)
		assert.Equal(t, config.SelfPlay{Sessions: 3, Games: 10}, conf.SelfPlay)
		assert.Equal(t, "automated", conf.Players.Two.Kind)

		kind, token, err := conf.Players.One.Parse()
		require.NoError(t, err)
		assert.Equal(t, entity.Human, kind)
		assert.Equal(t, entity.TokenB, token)
	})

	t.Run("Environment overrides the file", func(t *testing.T) {
		path := writeConfig(t, validConfig)
		t.Setenv("ENGINE_SEED", "7")
		t.Setenv("SELF_PLAY_GAMES", "3")

		conf, err := config.Load(path)

		require.NoError(t, err)
		assert.Equal(t, uint64(7), conf.Engine.Seed)
		assert.Equal(t, 3, conf.SelfPlay.Games)
	})

	t.Run("Missing file is an error", func(t *testing.T) {
		_, err := config.Load(filepath.Join(t.TempDir(), "missing.yml"))

		assert.Error(t, err)
	})

	t.Run("MustLoad panics on an invalid file", func(t *testing.T) {
		path := writeConfig(t, "engine:\n  tie-break-probability: 2\n")

		assert.Panics(t, func() {
			config.MustLoad(path)
		})
	})
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *config.Config {
		return &config.Config{
			Engine: config.Engine{CenterBonusProbability: 0.5, TieBreakProbability: 0.5},
			Players: config.Players{
				One: config.Player{Name: "Player 1", Kind: "automated", Token: "X"},
				Two: config.Player{Name: "Player 2", Kind: "automated", Token: "O"},
			},
			SelfPlay: config.SelfPlay{Sessions: 1, Games: 1},
		}
	}

	t.Run("Accepts a valid config", func(t *testing.T) {
		assert.NoError(t, valid().Validate())
	})

	t.Run("Rejects probabilities outside the unit interval", func(t *testing.T) {
		conf := valid()
		conf.Engine.TieBreakProbability = 1.5

		assert.ErrorIs(t, conf.Validate(), config.ErrInvalidProbability)
	})

	t.Run("Rejects an empty self-play run", func(t *testing.T) {
		conf := valid()
		conf.SelfPlay.Games = 0

		assert.ErrorIs(t, conf.Validate(), config.ErrInvalidSelfPlay)
	})

	t.Run("Rejects equal tokens", func(t *testing.T) {
		conf := valid()
		conf.Players.Two.Token = "x"

		assert.ErrorIs(t, conf.Validate(), config.ErrSameTokens)
	})

	t.Run("Rejects unknown tokens", func(t *testing.T) {
		conf := valid()
		conf.Players.One.Token = "Z"

		assert.ErrorIs(t, conf.Validate(), apperror.ErrInvalidToken)
	})

	t.Run("Rejects unknown kinds", func(t *testing.T) {
		conf := valid()
		conf.Players.One.Kind = "robot"

		assert.Error(t, conf.Validate())
	})
}
