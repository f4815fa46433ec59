package inbetween

// Player is a seat at the table
// Purse is only changed through Game.transfer.
type Player struct {
	PlayerID int64    `json:"playerId"`
	Purse    int      `json:"purse"`
	Strategy Strategy `json:"strategy"`
}

// NewPlayer returns a new player
func NewPlayer(playerID int64, purse int, strategy Strategy) *Player {
	return &Player{
		PlayerID: playerID,
		Purse:    purse,
		Strategy: strategy,
	}
}

// maxBet is the most a capped strategy is willing to put at risk
func (p *Player) maxBet(pot int) int {
	if pot < p.Purse {
		return pot
	}

	return p.Purse
}
