package inbetween

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestDefaultOptions(t *testing.T) {
	a := assert.New(t)
	opts := DefaultOptions()

	a.Equal(4, opts.Players)
	a.Equal(100, opts.StartingPurse)
	a.Equal(1, opts.MinBet)
	a.Equal(100, opts.PayoutThreshold)
	a.NoError(opts.validate())
}

func TestOptions_strategyForSeat(t *testing.T) {
	a := assert.New(t)
	opts := DefaultOptions()

	a.Equal(StrategyAggressive, opts.strategyForSeat(0))
	a.Equal(StrategyMinimum, opts.strategyForSeat(1))
	a.Equal(StrategyAggressive, opts.strategyForSeat(2))

	opts.Strategies = []Strategy{StrategySmartLinear, StrategyScale, StrategyAlwaysBet}
	a.Equal(StrategySmartLinear, opts.strategyForSeat(0))
	a.Equal(StrategyScale, opts.strategyForSeat(1))
	a.Equal(StrategyAlwaysBet, opts.strategyForSeat(2))
	a.Equal(StrategySmartLinear, opts.strategyForSeat(3))
}

func TestOptions_validate(t *testing.T) {
	test := func(t *testing.T, expects string, modify func(o *Options)) {
		t.Helper()

		opts := DefaultOptions()
		modify(&opts)

		err := opts.validate()
		assert.EqualError(t, err, expects)
		assert.IsType(t, ConfigError{}, err)
	}

	test(t, "invalid players: game requires at least one player", func(o *Options) { o.Players = 0 })
	test(t, "invalid players: game requires at least one player", func(o *Options) { o.Players = -2 })
	test(t, "invalid minBet: must be > 0", func(o *Options) { o.MinBet = 0 })
	test(t, "invalid minBet: must be > 0", func(o *Options) { o.MinBet = -1 })
	test(t, "invalid payoutThreshold: must be >= 0", func(o *Options) { o.PayoutThreshold = -1 })
	test(t, "invalid maxTurnsPerRound: must be >= 0", func(o *Options) { o.MaxTurnsPerRound = -1 })
	test(t, "invalid strategies: the user strategy requires a decider", func(o *Options) {
		o.Strategies = []Strategy{StrategyMinimum, StrategyUser}
	})
	test(t, "invalid strategies: unknown strategy", func(o *Options) {
		o.Strategies = []Strategy{Strategy(42)}
	})

	// only seats that are filled matter
	opts := DefaultOptions()
	opts.Players = 1
	opts.Strategies = []Strategy{StrategyMinimum, StrategyUser}
	assert.NoError(t, opts.validate())
}
