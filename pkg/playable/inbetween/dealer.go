package inbetween

import (
	"fmt"
	"github.com/sirupsen/logrus"
	"inbetween-sim/pkg/deck"
)

// DealState is the state of a single deal to a player
type DealState string

// DealState constants
const (
	// DealStateAwaitingFirstCard is before any cards have been dealt
	DealStateAwaitingFirstCard DealState = "awaiting-first-card"

	// DealStateAwaitingSecondCard means only the first card has been dealt
	DealStateAwaitingSecondCard DealState = "awaiting-second-card"

	// DealStateAwaitingBetDecision means both cards are known and the strategy must bet or pass
	DealStateAwaitingBetDecision DealState = "awaiting-bet-decision"

	// DealStateAwaitingThirdCard means a bet was placed and the in-between card is next
	DealStateAwaitingThirdCard DealState = "awaiting-third-card"

	// DealStateSettled means the deal is over, whether or not a bet was placed
	DealStateSettled DealState = "settled"

	// DealStateEliminatedByJoker means a joker was dealt and the player paid the minimum bet
	DealStateEliminatedByJoker DealState = "eliminated-by-joker"
)

// Result is the result of a bet
type Result string

// Result constants
const (
	ResultLost Result = "lost"
	ResultPost Result = "post"
	ResultWon  Result = "won"
)

// pendingDeal is a hand being dealt to the active player
// Dealing a card that pairs the held card starts a nested deal on top of the stack,
// and the interrupted deal resumes filling the same slot once the nested one is finished.
type pendingDeal struct {
	state DealState
	hand  Hand
	// pairedCard is the card that started a nested deal
	pairedCard *deck.Card
	bet        int
	inBetween  *deck.Card
}

// heldCard returns the card a newly dealt card is compared against for pairs
func (d *pendingDeal) heldCard() *deck.Card {
	if d.hand[0] != nil {
		return d.hand[0]
	}

	return d.pairedCard
}

func (d *pendingDeal) isOver() bool {
	return d.state == DealStateSettled || d.state == DealStateEliminatedByJoker
}

// takeTurn deals to the player until their turn is over
func (g *Game) takeTurn(p *Player) error {
	stack := []*pendingDeal{{state: DealStateAwaitingFirstCard}}

	for len(stack) > 0 {
		deal := stack[len(stack)-1]
		if deal.isOver() {
			stack = stack[:len(stack)-1]
			continue
		}

		if deal.state == DealStateAwaitingBetDecision {
			g.placeBet(p, deal)
			continue
		}

		card, err := g.drawCard()
		if err != nil {
			return err
		}

		g.sendLogMessage(p.PlayerID, card, "Dealt: %s", card)

		if card.IsJoker() {
			g.sendLogMessage(p.PlayerID, card, "{} was dealt a joker and paid ${%d}", g.options.MinBet)
			g.transfer(p, -g.options.MinBet)
			deal.state = DealStateEliminatedByJoker
			continue
		}

		if held := deal.heldCard(); held != nil && held.Rank == card.Rank {
			g.sendLogMessage(p.PlayerID, card, "{} was dealt a pair, dealing a bonus hand")
			stack = append(stack, &pendingDeal{
				state:      DealStateAwaitingFirstCard,
				pairedCard: card,
			})

			continue
		}

		if card.Rank == deck.Ace {
			if _, decided := card.AceHigh(); !decided {
				if err := card.SetAceHigh(p.Strategy.decideAceHigh(g.options.Decider, p, deal.hand)); err != nil {
					return fmt.Errorf("could not decide ace: %w", err)
				}
			}
		}

		if err := g.fillSlot(p, deal, card); err != nil {
			return err
		}
	}

	return nil
}

// fillSlot places the card in the next open slot of the deal
func (g *Game) fillSlot(p *Player, deal *pendingDeal, card *deck.Card) error {
	switch deal.state {
	case DealStateAwaitingFirstCard:
		deal.hand[0] = card
		deal.state = DealStateAwaitingSecondCard
		return nil
	case DealStateAwaitingSecondCard:
		deal.hand[1] = card
		deal.state = DealStateAwaitingBetDecision
		return nil
	case DealStateAwaitingThirdCard:
		deal.inBetween = card
		deal.state = DealStateSettled

		// a bonus hand dealt on the in-between card may have moved the pot or purse since the bet
		if err := g.validateBet(p, deal.bet); err != nil {
			g.logger.WithFields(logrus.Fields{
				"round":  g.round,
				"turn":   g.turn,
				"player": p.PlayerID,
				"pot":    g.pot,
			}).WithError(err).Warn("bet voided")
			g.sendLogMessage(p.PlayerID, card, "{} bet ${%d}, but the bet was voided", deal.bet)
			return nil
		}

		g.settle(p, deal)
		return nil
	}

	return fmt.Errorf("cannot deal card from state: %s", deal.state)
}

// placeBet asks the player's strategy for a bet and validates it
// A rejected bet ends the deal as if the player passed.
func (g *Game) placeBet(p *Player, deal *pendingDeal) {
	log := g.logger.WithFields(logrus.Fields{
		"round":  g.round,
		"turn":   g.turn,
		"player": p.PlayerID,
		"hand":   deal.hand.String(),
		"pot":    g.pot,
	})

	bet, ok := p.Strategy.decideBet(g.options.Decider, p, deal.hand, g.pot, g.deck.Remaining())
	if !ok {
		log.Debug("passed")
		g.sendLogMessage(p.PlayerID, nil, "{} passed")
		deal.state = DealStateSettled
		return
	}

	if err := g.validateBet(p, bet); err != nil {
		log.WithError(err).Warn("bet rejected")
		g.sendLogMessage(p.PlayerID, nil, "{} bet ${%d}, but the bet was rejected", bet)
		deal.state = DealStateSettled
		return
	}

	log.WithField("bet", bet).Debug("bet placed")
	g.sendLogMessage(p.PlayerID, nil, "{} bet ${%d}", bet)
	deal.bet = bet
	deal.state = DealStateAwaitingThirdCard
}

// validateBet ensures a bet can't drive a purse or the pot negative
func (g *Game) validateBet(p *Player, bet int) error {
	var err error
	switch {
	case bet < 0:
		err = ErrNegativeBet
	case bet > 0 && bet > p.Purse:
		err = ErrBetExceedsPurse
	case bet > 0 && bet > g.pot:
		err = ErrBetExceedsPot
	}

	if err != nil {
		return BetError{
			PlayerID: p.PlayerID,
			Amount:   bet,
			Purse:    p.Purse,
			Pot:      g.pot,
			Err:      err,
		}
	}

	return nil
}

// settle compares the in-between card against the hand and moves the bet
func (g *Game) settle(p *Player, deal *pendingDeal) {
	low, high := deal.hand.bounds()
	value := deal.inBetween.Value()

	var result Result
	var adjustment int
	switch {
	case value == low || value == high:
		result = ResultPost
		adjustment = -2 * deal.bet
	case value > low && value < high:
		result = ResultWon
		adjustment = deal.bet
	default:
		result = ResultLost
		adjustment = -1 * deal.bet
	}

	g.transfer(p, adjustment)

	g.logger.WithFields(logrus.Fields{
		"round":      g.round,
		"turn":       g.turn,
		"player":     p.PlayerID,
		"result":     result,
		"adjustment": adjustment,
		"pot":        g.pot,
	}).Debug("bet settled")

	if result == ResultPost {
		g.sendLogMessage(p.PlayerID, deal.inBetween, "{} posted and lost ${%d}", -adjustment)
	} else {
		g.sendLogMessage(p.PlayerID, deal.inBetween, "{} %s ${%d}", result, abs(adjustment))
	}
}

// drawCard will draw a card and it should always succeed
// An empty deck is rebuilt and reshuffled first.
func (g *Game) drawCard() (*deck.Card, error) {
	if !g.deck.CanDraw(1) {
		g.logger.WithField("round", g.round).Debug("deck is empty, shuffling")
		g.deck.Shuffle()
	}

	card, err := g.deck.Draw()
	if err != nil {
		return nil, fmt.Errorf("could not draw card: %w", err)
	}

	return card, nil
}

func abs(n int) int {
	if n < 0 {
		return -n
	}

	return n
}
