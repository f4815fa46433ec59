package inbetween

import (
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"inbetween-sim/internal/rng"
	"inbetween-sim/pkg/deck"
	"inbetween-sim/pkg/playable"
	"testing"
)

// fakeDecider bets a fixed amount (or passes) and records what it was asked
type fakeDecider struct {
	bet     int
	pass    bool
	aceHigh bool

	aceCalls int
	hands    []Hand
}

func (f *fakeDecider) DecideAceHigh(playerID int64, hand Hand) bool {
	f.aceCalls++
	return f.aceHigh
}

func (f *fakeDecider) DecideBet(playerID int64, hand Hand, pot, purse int) (int, bool) {
	f.hands = append(f.hands, hand)
	if f.pass {
		return 0, false
	}

	return f.bet, true
}

// identityGen never moves a card, so a shuffled deck stays in canonical order
type identityGen struct{}

func (identityGen) Intn(n int) int {
	return n - 1
}

// dealOrder returns cards so they are dealt in the order they are written
func dealOrder(cards string) []*deck.Card {
	c := deck.CardsFromString(cards)
	for i, j := 0, len(c)-1; i < j; i, j = i+1, j-1 {
		c[i], c[j] = c[j], c[i]
	}

	return c
}

// createTestGame returns a single player game using StrategyUser with a rigged deck
func createTestGame(t *testing.T, pot int, cards string, decider *fakeDecider) (*Game, *Player) {
	t.Helper()

	opts := DefaultOptions()
	opts.Players = 1
	opts.Strategies = []Strategy{StrategyUser}
	opts.Decider = decider

	g, err := NewGame(logrus.StandardLogger(), opts, rng.NewSeeded(1))
	if !assert.NoError(t, err) {
		t.FailNow()
	}

	g.deck.Cards = dealOrder(cards)
	g.pot = pot
	return g, g.players[0]
}

func totalMoney(g *Game) int {
	total := g.pot
	for _, p := range g.players {
		total += p.Purse
	}

	return total
}

func handFromString(s string) Hand {
	cards := deck.CardsFromString(s)
	return Hand{cards[0], cards[1]}
}

func messages(logs *[]string) playable.LogListener {
	return func(lms []*playable.LogMessage) {
		for _, lm := range lms {
			*logs = append(*logs, lm.Message)
		}
	}
}
