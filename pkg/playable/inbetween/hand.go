package inbetween

import (
	"fmt"
	"inbetween-sim/pkg/deck"
)

// Hand is the two cards a player bets between
// While the hand is being dealt, the second (or both) slots may be nil.
type Hand [2]*deck.Card

// isComplete returns true once both cards have been dealt
func (h Hand) isComplete() bool {
	return h[0] != nil && h[1] != nil
}

// bounds returns the low and high values of a complete hand
func (h Hand) bounds() (low, high int) {
	if !h.isComplete() {
		panic("hand is not complete")
	}

	low, high = h[0].Value(), h[1].Value()
	if low > high {
		low, high = high, low
	}

	return low, high
}

// Spread is the difference between the values of the two cards
func (h Hand) Spread() int {
	low, high := h.bounds()
	return high - low
}

func (h Hand) String() string {
	first, second := "-", "-"
	if h[0] != nil {
		first = h[0].String()
	}

	if h[1] != nil {
		second = h[1].String()
	}

	return fmt.Sprintf("[%s %s]", first, second)
}
