package config

import (
	"errors"
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/rocketscienceinc/tictactwo/internal/entity"
)

var (
	ErrInvalidProbability = errors.New("probability must be within [0, 1]")
	ErrInvalidSelfPlay    = errors.New("self-play needs at least one session and one game")
	ErrSameTokens         = errors.New("players must use different tokens")
)

type Config struct {
	LogLevel string   `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	Engine   Engine   `yaml:"engine"`
	Players  Players  `yaml:"players"`
	SelfPlay SelfPlay `yaml:"self-play"`
}

type Engine struct {
	CenterBonusProbability float64 `yaml:"center-bonus-probability" env:"CENTER_BONUS_PROBABILITY" env-default:"0.5"`
	TieBreakProbability    float64 `yaml:"tie-break-probability" env:"TIE_BREAK_PROBABILITY" env-default:"0.5"`
	// Seed 0 seeds every session from the clock.
	Seed uint64 `yaml:"seed" env:"ENGINE_SEED" env-default:"0"`
}

type Players struct {
	One Player `yaml:"one"`
	Two Player `yaml:"two"`
}

type Player struct {
	Name  string `yaml:"name"`
	Kind  string `yaml:"kind" env-default:"automated"`
	Token string `yaml:"token"`
}

type SelfPlay struct {
	Sessions int `yaml:"sessions" env:"SELF_PLAY_SESSIONS" env-default:"1"`
	Games    int `yaml:"games" env:"SELF_PLAY_GAMES" env-default:"10"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return config, nil
}

func (that *Config) Validate() error {
	for name, p := range map[string]float64{
		"center-bonus-probability": that.Engine.CenterBonusProbability,
		"tie-break-probability":    that.Engine.TieBreakProbability,
	} {
		if p < 0 || p > 1 {
			return fmt.Errorf("%w: %s is %v", ErrInvalidProbability, name, p)
		}
	}

	if that.SelfPlay.Sessions < 1 || that.SelfPlay.Games < 1 {
		return fmt.Errorf("%w: sessions %d, games %d", ErrInvalidSelfPlay, that.SelfPlay.Sessions, that.SelfPlay.Games)
	}

	_, one, err := that.Players.One.Parse()
	if err != nil {
		return fmt.Errorf("player one: %w", err)
	}

	_, two, err := that.Players.Two.Parse()
	if err != nil {
		return fmt.Errorf("player two: %w", err)
	}

	if one == two {
		return fmt.Errorf("%w: both play %s", ErrSameTokens, one)
	}

	return nil
}

// Parse converts the configured kind and token into their entity values.
func (that *Player) Parse() (entity.PlayerKind, entity.Cell, error) {
	kind, err := entity.ParsePlayerKind(that.Kind)
	if err != nil {
		return "", entity.EmptyCell, err
	}

	token, err := entity.ParseToken(that.Token)
	if err != nil {
		return "", entity.EmptyCell, err
	}

	return kind, token, nil
}
