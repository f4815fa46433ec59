package deck

import (
	"crypto/sha1" // nolint:gosec
	"encoding/hex"
	"errors"
	"inbetween-sim/internal/rng"
)

// ErrEndOfDeck is an error when Draw() is attempted and there are no more cards
var ErrEndOfDeck = errors.New("end of deck reached")

// Size is the number of cards in a full deck: 52 standard cards and two jokers
const Size = 54

// Deck represents a playing deck
// Cards are drawn from the end of the slice.
type Deck struct {
	Cards []*Card `json:"cards"`
	rng   rng.Generator
}

// New returns a new deck of cards.
// Important! this deck is unshuffled. You must call the Shuffle() method to shuffle the cards
func New(gen rng.Generator) *Deck {
	if gen == nil {
		gen = rng.Crypto{}
	}

	d := &Deck{
		rng: gen,
	}

	d.buildDeck()
	return d
}

// buildDeck creates the canonical order: suit-major, rank-minor, jokers last
func (d *Deck) buildDeck() {
	cards := make([]*Card, 0, Size)
	for _, suit := range Suits {
		for rank := Ace; rank <= King; rank++ {
			cards = append(cards, &Card{
				Rank: rank,
				Suit: suit,
			})
		}
	}

	cards = append(cards, &Card{Rank: Joker, Suit: Spades}, &Card{Rank: Joker, Suit: Diamonds})
	d.Cards = cards
}

// Shuffle will rebuild a full deck and shuffle it
// Any cards still in the deck are discarded, and every card is fresh (no ace decisions).
func (d *Deck) Shuffle() {
	d.buildDeck()

	rng.Shuffle(d.rng, len(d.Cards), func(i, j int) {
		d.Cards[i], d.Cards[j] = d.Cards[j], d.Cards[i]
	})
}

// HashCode returns a SHA1 hash code of the deck.
func (d *Deck) HashCode() string {
	hash := sha1.New() // nolint:gosec
	for _, card := range d.Cards {
		_, _ = hash.Write([]byte(CardToString(card)))
	}

	return hex.EncodeToString(hash.Sum(nil)[:])
}

// Draw will draw the next card
// If there are no more cards, an ErrEndOfDeck is returned along with a nil card.
func (d *Deck) Draw() (*Card, error) {
	if len(d.Cards) <= 0 {
		return nil, ErrEndOfDeck
	}

	last := len(d.Cards) - 1
	card := d.Cards[last]
	d.Cards = d.Cards[:last]

	return card, nil
}

// CanDraw returns true if there are {want} cards left in the deck
func (d *Deck) CanDraw(want int) bool {
	return len(d.Cards) >= want
}

// CardsLeft returns the number of cards left in the deck
func (d *Deck) CardsLeft() int {
	return len(d.Cards)
}

// Remaining returns a copy of the cards left in the deck
// The slice may be freely modified, but the cards must be treated as read-only.
func (d *Deck) Remaining() []*Card {
	cards := make([]*Card, len(d.Cards))
	copy(cards, d.Cards)
	return cards
}
