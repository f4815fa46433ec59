package inbetween

// GameState is a read-only snapshot of the game
type GameState struct {
	Round          int       `json:"round"`
	Turn           int       `json:"turn"`
	Pot            int       `json:"pot"`
	MinBet         int       `json:"minBet"`
	Players        []*Player `json:"players"`
	CardsRemaining int       `json:"cardsRemaining"`
}

// State returns the current state of the game
// The players are copies, changing them does not affect the game.
func (g *Game) State() *GameState {
	players := make([]*Player, len(g.players))
	for i, p := range g.players {
		cp := *p
		players[i] = &cp
	}

	return &GameState{
		Round:          g.round,
		Turn:           g.turn,
		Pot:            g.pot,
		MinBet:         g.options.MinBet,
		Players:        players,
		CardsRemaining: g.deck.CardsLeft(),
	}
}
