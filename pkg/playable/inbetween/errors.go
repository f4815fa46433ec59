package inbetween

import (
	"errors"
	"fmt"
)

// ErrNegativeBet is returned when a strategy bets less than zero
var ErrNegativeBet = errors.New("bet cannot be negative")

// ErrBetExceedsPurse is returned when a strategy bets more than the player has
var ErrBetExceedsPurse = errors.New("bet exceeds the player's purse")

// ErrBetExceedsPot is returned when a strategy bets more than the pot can pay
var ErrBetExceedsPot = errors.New("bet exceeds the pot")

// ConfigError is returned when a game cannot be constructed from the options
type ConfigError struct {
	Field  string
	Reason string
}

func (c ConfigError) Error() string {
	return fmt.Sprintf("invalid %s: %s", c.Field, c.Reason)
}

// BetError is a bet that was rejected before it could change any balances
type BetError struct {
	PlayerID int64
	Amount   int
	Purse    int
	Pot      int
	Err      error
}

func (b BetError) Error() string {
	return fmt.Sprintf("player %d bet of ${%d} rejected (purse ${%d}, pot ${%d}): %v", b.PlayerID, b.Amount, b.Purse, b.Pot, b.Err)
}

// Unwrap returns the reason the bet was rejected
func (b BetError) Unwrap() error {
	return b.Err
}
