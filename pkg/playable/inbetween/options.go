package inbetween

// Options contains options for creating a new game of In-Between
type Options struct {
	// Players is how many players sit at the table
	Players int
	// StartingPurse is each player's purse before the first ante
	StartingPurse int
	// MinBet is the ante, and the penalty for being dealt a joker
	MinBet int
	// PayoutThreshold ends the round and splits the pot once the pot exceeds it
	PayoutThreshold int
	// MaxTurnsPerRound splits the pot after this many full passes; 0 means no limit
	MaxTurnsPerRound int
	// Strategies are assigned to players round-robin
	// If empty, even seats play aggressively and odd seats play the minimum.
	Strategies []Strategy
	// Decider is required if any player uses StrategyUser
	Decider Decider
}

// DefaultOptions returns the default set of options
func DefaultOptions() Options {
	return Options{
		Players:          4,
		StartingPurse:    100,
		MinBet:           1,
		PayoutThreshold:  100,
		MaxTurnsPerRound: 1000,
	}
}

// strategyForSeat returns the strategy of the player at seat
func (o Options) strategyForSeat(seat int) Strategy {
	if len(o.Strategies) == 0 {
		if seat%2 == 0 {
			return StrategyAggressive
		}

		return StrategyMinimum
	}

	return o.Strategies[seat%len(o.Strategies)]
}

// validate fails fast on options that cannot produce a playable game
func (o Options) validate() error {
	if o.Players <= 0 {
		return ConfigError{Field: "players", Reason: "game requires at least one player"}
	}

	if o.MinBet <= 0 {
		return ConfigError{Field: "minBet", Reason: "must be > 0"}
	}

	if o.PayoutThreshold < 0 {
		return ConfigError{Field: "payoutThreshold", Reason: "must be >= 0"}
	}

	if o.MaxTurnsPerRound < 0 {
		return ConfigError{Field: "maxTurnsPerRound", Reason: "must be >= 0"}
	}

	for i := 0; i < o.Players; i++ {
		if o.strategyForSeat(i) == StrategyUser && o.Decider == nil {
			return ConfigError{Field: "strategies", Reason: "the user strategy requires a decider"}
		}
	}

	for _, s := range o.Strategies {
		if !s.valid() {
			return ConfigError{Field: "strategies", Reason: "unknown strategy"}
		}
	}

	return nil
}
