package inbetween

import (
	"encoding/json"
	"fmt"
	"inbetween-sim/pkg/deck"
	"math"
	"strings"
)

// Strategy is a betting policy
type Strategy int

// Strategy constants
const (
	StrategyAlwaysBet Strategy = iota
	StrategyMinimum
	StrategyAggressive
	StrategyScale
	StrategySmartLinear
	StrategySmartExponential
	StrategyUser
)

// Decider makes the decisions for a player using StrategyUser
type Decider interface {
	// DecideAceHigh returns true if the ace that was just dealt should be high
	DecideAceHigh(playerID int64, hand Hand) bool

	// DecideBet returns the bet, or false to pass
	DecideBet(playerID int64, hand Hand, pot, purse int) (bet int, ok bool)
}

// MarshalJSON encodes the JSON
func (s Strategy) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	}{
		ID:   int(s),
		Name: s.String(),
	})
}

// String returns the strategy name
func (s Strategy) String() string {
	switch s {
	case StrategyAlwaysBet:
		return "Always Bet"
	case StrategyMinimum:
		return "Minimum"
	case StrategyAggressive:
		return "Aggressive"
	case StrategyScale:
		return "Scale"
	case StrategySmartLinear:
		return "Smart Linear"
	case StrategySmartExponential:
		return "Smart Exponential"
	case StrategyUser:
		return "User"
	}

	panic(fmt.Sprintf("unknown strategy: %d", s))
}

func (s Strategy) valid() bool {
	return s >= StrategyAlwaysBet && s <= StrategyUser
}

// StrategyFromString returns the Strategy based on the string
// Both "smart linear" and "smart-linear" are accepted.
func StrategyFromString(s string) (Strategy, error) {
	name := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", " ")
	for strategy := range GetStrategies() {
		if strings.ToLower(strategy.String()) == name {
			return strategy, nil
		}
	}

	return -1, fmt.Errorf("unknown strategy: %s", s)
}

// GetStrategies returns the strategies
func GetStrategies() map[Strategy]string {
	strategies := make(map[Strategy]string)
	for s := StrategyAlwaysBet; s <= StrategyUser; s++ {
		strategies[s] = s.String()
	}

	return strategies
}

// decideAceHigh is called once for every ace dealt while the hand is being built
func (s Strategy) decideAceHigh(decider Decider, p *Player, hand Hand) bool {
	if s == StrategyUser && decider != nil {
		return decider.DecideAceHigh(p.PlayerID, hand)
	}

	return false
}

// decideBet returns the bet for a complete hand, or false to pass
// It must not modify the hand or the remaining cards.
func (s Strategy) decideBet(decider Decider, p *Player, hand Hand, pot int, remaining []*deck.Card) (int, bool) {
	spread := hand.Spread()
	maxBet := p.maxBet(pot)

	switch s {
	case StrategyAlwaysBet:
		return 1, true
	case StrategyMinimum:
		if spread > 6 {
			return 1, true
		}

		return 0, false
	case StrategyAggressive:
		if spread > 9 {
			return maxBet, true
		}

		if spread > 6 {
			return maxBet / 2, true
		}

		return 0, false
	case StrategyScale:
		// spread is at most 13, so this is always a zero bet
		if spread > 6 {
			return maxBet * (spread / 14), true
		}

		return 0, true
	case StrategySmartLinear:
		outcome := expectedOutcome(hand, remaining)
		if outcome <= 0 {
			return 0, false
		}

		return int(math.Floor(float64(maxBet) * outcome)), true
	case StrategySmartExponential:
		outcome := expectedOutcome(hand, remaining)
		if outcome <= 0 {
			return 0, false
		}

		return int(math.Floor(float64(maxBet) * math.Sqrt(outcome))), true
	case StrategyUser:
		if decider == nil {
			return 0, false
		}

		return decider.DecideBet(p.PlayerID, hand, pot, p.Purse)
	}

	panic(fmt.Sprintf("unknown strategy: %d", s))
}

// expectedOutcome scores every card left in the deck against the hand
// A post costs -2, a win is +1, and a miss is -1. Jokers count towards the deck size only.
// The result is normalized by the size of the deck, so it falls within [-2, 1].
func expectedOutcome(hand Hand, remaining []*deck.Card) float64 {
	if len(remaining) == 0 {
		return 0
	}

	low, high := hand.bounds()
	score := 0
	for _, card := range remaining {
		if card.IsJoker() {
			continue
		}

		value := card.Value()
		switch {
		case value == low || value == high:
			score -= 2
		case value > low && value < high:
			score++
		default:
			score--
		}
	}

	return float64(score) / float64(len(remaining))
}
