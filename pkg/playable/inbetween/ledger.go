package inbetween

import (
	"github.com/sirupsen/logrus"
	"inbetween-sim/internal/rng"
)

// transfer moves amount from the pot to the player
// A negative amount moves money from the player into the pot.
// This is the only place purses and the pot are changed.
func (g *Game) transfer(p *Player, amount int) {
	p.Purse += amount
	g.pot -= amount
}

// checkEndgame returns true if the round is over
// If the pot grew past the payout threshold, it is split between the players first.
func (g *Game) checkEndgame() bool {
	if g.pot == 0 {
		return true
	}

	if g.pot > g.options.PayoutThreshold {
		g.payout()
		return true
	}

	return false
}

// payout splits the pot evenly between every player
// Leftover units go one each to a random subset of the players.
func (g *Game) payout() {
	n := len(g.players)
	share := g.pot / n
	remainder := g.pot % n
	if remainder < 0 {
		share--
		remainder += n
	}

	g.logger.WithFields(logrus.Fields{
		"round":     g.round,
		"pot":       g.pot,
		"share":     share,
		"remainder": remainder,
	}).Info("paying out the pot")

	for _, p := range g.players {
		g.transfer(p, share)
	}

	for _, i := range rng.Sample(g.rng, n, remainder) {
		g.transfer(g.players[i], 1)
	}

	g.sendLogMessage(0, nil, "Pot paid out, ${%d} each", share)
}
