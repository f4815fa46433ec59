package playable

import (
	"github.com/stretchr/testify/assert"
	"inbetween-sim/pkg/deck"
	"testing"
	"time"
)

func TestSimpleLogMessage(t *testing.T) {
	before := time.Now()
	lm := SimpleLogMessage(0, "test %d", 5)
	assert.Equal(t, "test 5", lm.Message)
	assert.Nil(t, lm.PlayerIDs)
	assert.False(t, lm.Time.Before(before))
	assert.False(t, time.Now().Before(lm.Time))
	assert.Nil(t, lm.Cards)
	assert.NotEmpty(t, lm.UUID)
}

func TestSimpleLogMessage_withPlayerID(t *testing.T) {
	lm := SimpleLogMessage(1, "test %d", 4)
	assert.Equal(t, "test 4", lm.Message)
	assert.Equal(t, []int64{1}, lm.PlayerIDs)
}

func TestCardLogMessage(t *testing.T) {
	a := assert.New(t)
	card := deck.CardFromString("0s")

	lm := CardLogMessage(2, card, "Dealt: %s", card)
	a.Equal("Dealt: Joker", lm.Message)
	a.Equal([]*deck.Card{card}, lm.Cards)
	a.Equal([]int64{2}, lm.PlayerIDs)

	lm = CardLogMessage(0, nil, "nothing")
	a.Nil(lm.Cards)
}
