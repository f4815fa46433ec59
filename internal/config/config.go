package config

import (
	"fmt"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
	"inbetween-sim/internal/util"
	"inbetween-sim/pkg/playable/inbetween"
	"os"
)

// Config provides configuration for the In-Between simulator
type Config struct {
	loaded bool
	Game   Game `yaml:"game" envconfig:"game"`
	Log    struct {
		Level string `yaml:"level" envconfig:"level"`
	} `yaml:"log" envconfig:"log"`
}

// Game configures the simulated game
type Game struct {
	Players          int      `yaml:"players" envconfig:"players"`
	StartingPurse    int      `yaml:"startingPurse" envconfig:"starting_purse"`
	MinBet           int      `yaml:"minBet" envconfig:"min_bet"`
	Rounds           int      `yaml:"rounds" envconfig:"rounds"`
	PayoutThreshold  int      `yaml:"payoutThreshold" envconfig:"payout_threshold"`
	MaxTurnsPerRound int      `yaml:"maxTurnsPerRound" envconfig:"max_turns_per_round"`
	Strategies       []string `yaml:"strategies" envconfig:"strategies"`
	// Seed makes a simulation reproducible; 0 uses crypto/rand
	Seed int64 `yaml:"seed" envconfig:"seed"`
}

var config Config

// DefaultConfig returns the configuration used when nothing is overridden
func DefaultConfig() Config {
	opts := inbetween.DefaultOptions()

	cfg := Config{
		Game: Game{
			Players:          opts.Players,
			StartingPurse:    opts.StartingPurse,
			MinBet:           opts.MinBet,
			Rounds:           10,
			PayoutThreshold:  opts.PayoutThreshold,
			MaxTurnsPerRound: opts.MaxTurnsPerRound,
			Strategies:       []string{},
		},
	}

	cfg.Log.Level = "info"
	return cfg
}

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration
// Values come from the defaults, then the YAML config file (if it exists), then the environment.
// A .env file in the working directory is read into the environment first.
func Load() error {
	_ = godotenv.Load()

	cfg := DefaultConfig()

	configFile := util.Getenv("INBETWEEN_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err != nil && !os.IsNotExist(err) {
		return err
	}

	if err == nil {
		defer file.Close()

		if err := yaml.NewDecoder(file).Decode(&cfg); err != nil {
			return fmt.Errorf("could not decode %s: %w", configFile, err)
		}
	}

	if err := envconfig.Process("inbetween", &cfg); err != nil {
		return err
	}

	cfg.loaded = true
	config = cfg
	return nil
}

// Options converts the game configuration into game options
// The Decider is left for the caller to set.
func (g Game) Options() (inbetween.Options, error) {
	strategies := make([]inbetween.Strategy, 0, len(g.Strategies))
	for _, name := range g.Strategies {
		s, err := inbetween.StrategyFromString(name)
		if err != nil {
			return inbetween.Options{}, err
		}

		strategies = append(strategies, s)
	}

	return inbetween.Options{
		Players:          g.Players,
		StartingPurse:    g.StartingPurse,
		MinBet:           g.MinBet,
		PayoutThreshold:  g.PayoutThreshold,
		MaxTurnsPerRound: g.MaxTurnsPerRound,
		Strategies:       strategies,
	}, nil
}

// UsesStrategy returns true if any seat is configured with the strategy
func (g Game) UsesStrategy(strategy inbetween.Strategy) bool {
	for _, name := range g.Strategies {
		if s, err := inbetween.StrategyFromString(name); err == nil && s == strategy {
			return true
		}
	}

	return false
}
