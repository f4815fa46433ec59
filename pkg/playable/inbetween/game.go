package inbetween

import (
	"fmt"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"inbetween-sim/internal/rng"
	"inbetween-sim/pkg/deck"
	"inbetween-sim/pkg/playable"
)

// Game is a simulated game of In-Between
// A Game is not safe for concurrent use. Players act strictly one after another.
type Game struct {
	id          string
	options     Options
	players     []*Player
	deck        *deck.Deck
	rng         rng.Generator
	logger      logrus.FieldLogger
	logListener playable.LogListener

	round int
	turn  int
	pot   int
}

// NewGame returns a new game
// If gen is nil, crypto/rand is used for shuffling and payouts.
func NewGame(logger logrus.FieldLogger, options Options, gen rng.Generator) (*Game, error) {
	if err := options.validate(); err != nil {
		return nil, err
	}

	if gen == nil {
		gen = rng.Crypto{}
	}

	if logger == nil {
		logger = logrus.StandardLogger()
	}

	players := make([]*Player, options.Players)
	for i := range players {
		players[i] = NewPlayer(int64(i+1), options.StartingPurse, options.strategyForSeat(i))
	}

	d := deck.New(gen)
	d.Shuffle()

	id := uuid.New().String()
	return &Game{
		id:      id,
		options: options,
		players: players,
		deck:    d,
		rng:     gen,
		logger:  logger.WithField("game", id),
	}, nil
}

// ID returns the unique ID of the game
func (g *Game) ID() string {
	return g.id
}

// Name returns the name of the game
func (g *Game) Name() string {
	return "In-Between"
}

// SetLogListener registers a function that receives game log messages
func (g *Game) SetLogListener(listener playable.LogListener) {
	g.logListener = listener
}

// Players returns the players in seat order
func (g *Game) Players() []*Player {
	return g.players
}

// Pot returns the amount currently in the pot
func (g *Game) Pot() int {
	return g.pot
}

// Play runs the number of rounds back to back
// Purses carry over from one round to the next.
func (g *Game) Play(rounds int) error {
	if rounds < 1 {
		return ConfigError{Field: "rounds", Reason: "must be at least 1"}
	}

	for i := 0; i < rounds; i++ {
		if err := g.RunRound(); err != nil {
			return fmt.Errorf("round %d: %w", g.round, err)
		}
	}

	return nil
}

// RunRound plays a single round until the pot is empty or paid out
func (g *Game) RunRound() error {
	g.round++
	g.turn = 0
	g.deck.Shuffle()

	log := g.logger.WithField("round", g.round)
	g.sendLogMessage(0, nil, "Round %d started", g.round)

	for _, p := range g.players {
		g.transfer(p, -g.options.MinBet)
	}

	log.WithField("pot", g.pot).Debug("ante collected")

	for !g.checkEndgame() {
		for _, p := range g.players {
			if err := g.takeTurn(p); err != nil {
				return err
			}

			if g.checkEndgame() {
				log.WithField("turn", g.turn).Info("round over")
				return nil
			}
		}

		g.turn++

		if limit := g.options.MaxTurnsPerRound; limit > 0 && g.turn >= limit {
			log.WithFields(logrus.Fields{
				"turn": g.turn,
				"pot":  g.pot,
			}).Warn("turn limit reached, splitting the pot")

			g.payout()
			return nil
		}
	}

	log.WithField("turn", g.turn).Info("round over")
	return nil
}

func (g *Game) sendLogMessage(playerID int64, card *deck.Card, format string, a ...interface{}) {
	if g.logListener != nil {
		g.logListener([]*playable.LogMessage{
			playable.CardLogMessage(playerID, card, format, a...),
		})
	}
}
