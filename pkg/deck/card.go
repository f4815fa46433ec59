package deck

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrNotAce is an error when an ace-only action is attempted on another rank
var ErrNotAce = errors.New("the card is not an ace")

// ErrAceAlreadyDecided is returned when the ace high/low decision has already been made
var ErrAceAlreadyDecided = errors.New("ace high/low has already been decided")

// Suit represents a card suit
// Suits never affect the value of a card
type Suit string

// suit constants
const (
	Spades   Suit = "spades"
	Diamonds Suit = "diamonds"
	Clubs    Suit = "clubs"
	Hearts   Suit = "hearts"
)

// Suits is the canonical suit order used when building a deck
var Suits = []Suit{Spades, Diamonds, Clubs, Hearts}

// Rank is the rank of a card
type Rank int

// rank constants
const (
	Joker Rank = iota
	Ace
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

// HighAce is the value of an ace that was declared high
const HighAce = 14

type aceState int

const (
	aceUndecided aceState = iota
	aceLow
	aceHigh
)

// Card is an individual playing card
type Card struct {
	Rank Rank `json:"rank"`
	Suit Suit `json:"suit"`

	// only meaningful for aces, decided once when the card is dealt
	aceState aceState
}

type cardJSON struct {
	Rank    Rank  `json:"rank"`
	Suit    Suit  `json:"suit"`
	AceHigh *bool `json:"aceHigh,omitempty"`
}

// MarshalJSON includes the ace decision when one was made
func (c *Card) MarshalJSON() ([]byte, error) {
	cj := cardJSON{
		Rank: c.Rank,
		Suit: c.Suit,
	}

	if high, decided := c.AceHigh(); decided {
		cj.AceHigh = &high
	}

	return json.Marshal(cj)
}

// IsJoker returns true if the card is a joker
func (c *Card) IsJoker() bool {
	return c.Rank == Joker
}

// Value returns the value used to compare cards
// An ace is worth 1 unless it was declared high, in which case it's worth 14.
func (c *Card) Value() int {
	if c.Rank == Ace && c.aceState == aceHigh {
		return HighAce
	}

	return int(c.Rank)
}

// SetAceHigh records whether the ace is high or low
// The decision can only be made once per card.
func (c *Card) SetAceHigh(high bool) error {
	if c.Rank != Ace {
		return ErrNotAce
	}

	if c.aceState != aceUndecided {
		return ErrAceAlreadyDecided
	}

	if high {
		c.aceState = aceHigh
	} else {
		c.aceState = aceLow
	}

	return nil
}

// AceHigh returns whether the ace was declared high, and whether a decision was made at all
func (c *Card) AceHigh() (high bool, decided bool) {
	return c.aceState == aceHigh, c.aceState != aceUndecided
}

func (c *Card) String() string {
	if c.Rank == Joker {
		return "Joker"
	}

	var rank string
	switch c.Rank {
	case Ace:
		rank = "A"
	case Jack:
		rank = "J"
	case Queen:
		rank = "Q"
	case King:
		rank = "K"
	default:
		rank = strconv.Itoa(int(c.Rank))
	}

	var suit string
	switch c.Suit {
	case Clubs:
		suit = "♣"
	case Diamonds:
		suit = "♢"
	case Hearts:
		suit = "♡"
	case Spades:
		suit = "♠"
	default:
		panic("unknown suit")
	}

	if high, _ := c.AceHigh(); high {
		return fmt.Sprintf("%s%s (high)", rank, suit)
	}

	return fmt.Sprintf("%s%s", rank, suit)
}

var cardRx = regexp.MustCompile(`(?i)^(1[0-3]|[0-9])([cdhs])([+-])?\z`)

// CardFromString returns a Card from the string.
// The string must be in the format of <rank><suit>[+|-] where rank >= 0 (joker) and <= 13 (king)
// and suit in [cdhs]. An optional trailing + or - pre-decides an ace as high or low.
func CardFromString(s string) *Card {
	if s == "" {
		return nil
	}

	match := cardRx.FindStringSubmatch(s)
	if match == nil {
		panic(fmt.Sprintf("could not parse card: %s", s))
	}

	rank, err := strconv.Atoi(match[1])
	if err != nil {
		panic(fmt.Sprintf("could not parse card `%s`: %v", s, err))
	}

	var suit Suit
	switch strings.ToLower(match[2]) {
	case "c":
		suit = Clubs
	case "d":
		suit = Diamonds
	case "h":
		suit = Hearts
	case "s":
		suit = Spades
	default:
		// should never be hit due to the regexp
		panic("unknown suit")
	}

	card := &Card{
		Rank: Rank(rank),
		Suit: suit,
	}

	if match[3] != "" {
		if err := card.SetAceHigh(match[3] == "+"); err != nil {
			panic(fmt.Sprintf("could not parse card `%s`: %v", s, err))
		}
	}

	return card
}

// CardsFromString will returns a slice of cards
func CardsFromString(s string) []*Card {
	if s == "" {
		return []*Card{}
	}

	cardStrings := strings.Split(s, ",")
	cards := make([]*Card, len(cardStrings))
	for i, card := range cardStrings {
		cards[i] = CardFromString(card)
	}

	return cards
}

// CardToString converts a card (Ace of Clubs) to a string (1c)
func CardToString(card *Card) string {
	if card == nil {
		return ""
	}

	var suit string
	switch card.Suit {
	case Clubs:
		suit = "c"
	case Hearts:
		suit = "h"
	case Diamonds:
		suit = "d"
	case Spades:
		suit = "s"
	}

	decision := ""
	if high, decided := card.AceHigh(); decided {
		decision = "-"
		if high {
			decision = "+"
		}
	}

	return fmt.Sprintf("%d%s%s", card.Rank, suit, decision)
}

// CardsToString will convert a slice of cards to a string in the format of 2c,3h,4s,...
func CardsToString(cards []*Card) string {
	c := make([]string, len(cards))
	for i, card := range cards {
		c[i] = CardToString(card)
	}

	return strings.Join(c, ",")
}
