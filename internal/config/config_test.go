package config

import (
	"github.com/stretchr/testify/assert"
	"inbetween-sim/internal/util"
	"inbetween-sim/pkg/playable/inbetween"
	"testing"
)

func TestInstance(t *testing.T) {
	clear1 := util.SetEnv("INBETWEEN_CONFIG_FILE", "testdata/config.yaml")
	defer clear1()
	clear2 := util.SetEnv("INBETWEEN_GAME_MIN_BET", "3")
	defer clear2()

	config = Config{}

	a := assert.New(t)
	cfg := Instance()
	a.Equal(6, cfg.Game.Players)
	a.Equal(250, cfg.Game.StartingPurse)
	a.Equal(3, cfg.Game.MinBet)
	a.Equal(25, cfg.Game.Rounds)
	a.Equal(100, cfg.Game.PayoutThreshold)
	a.Equal([]string{"smart linear", "aggressive"}, cfg.Game.Strategies)
	a.Equal("debug", cfg.Log.Level)

	// ensure that it's only loaded once
	clear3 := util.SetEnv("INBETWEEN_GAME_MIN_BET", "4")
	defer clear3()
	// ensure we aren't using a pointer
	cfg.Game.MinBet = 99
	cfg = Instance()
	a.Equal(3, cfg.Game.MinBet)
}

func TestDefaults(t *testing.T) {
	clear1 := util.SetEnv("INBETWEEN_CONFIG_FILE", "testdata/does-not-exist.yaml")
	defer clear1()

	assert.NoError(t, Load())
	cfg := Instance()
	assert.Equal(t, 4, cfg.Game.Players)
	assert.Equal(t, 100, cfg.Game.StartingPurse)
	assert.Equal(t, 1, cfg.Game.MinBet)
	assert.Equal(t, 1000, cfg.Game.MaxTurnsPerRound)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_envStrategies(t *testing.T) {
	clear1 := util.SetEnv("INBETWEEN_CONFIG_FILE", "testdata/does-not-exist.yaml")
	defer clear1()
	clear2 := util.SetEnv("INBETWEEN_GAME_STRATEGIES", "minimum,user")
	defer clear2()
	clear3 := util.SetEnv("INBETWEEN_GAME_SEED", "42")
	defer clear3()

	a := assert.New(t)
	a.NoError(Load())
	cfg := Instance()
	a.Equal([]string{"minimum", "user"}, cfg.Game.Strategies)
	a.Equal(int64(42), cfg.Game.Seed)
	a.True(cfg.Game.UsesStrategy(inbetween.StrategyUser))
	a.False(cfg.Game.UsesStrategy(inbetween.StrategyScale))
}

func TestGame_Options(t *testing.T) {
	a := assert.New(t)

	g := DefaultConfig().Game
	g.Strategies = []string{"smart-exponential", "always bet"}
	opts, err := g.Options()
	a.NoError(err)
	a.Equal(4, opts.Players)
	a.Equal(100, opts.StartingPurse)
	a.Equal(1, opts.MinBet)
	a.Equal(100, opts.PayoutThreshold)
	a.Equal([]inbetween.Strategy{inbetween.StrategySmartExponential, inbetween.StrategyAlwaysBet}, opts.Strategies)

	g.Strategies = []string{"yolo"}
	_, err = g.Options()
	a.EqualError(err, "unknown strategy: yolo")
}
