package game

// Player identifies one of the two sides.
type Player uint8

const (
	PlayerOne Player = iota
	PlayerTwo
)

// Other returns the opposing player.
func (p Player) Other() Player {
	if p == PlayerOne {
		return PlayerTwo
	}
	return PlayerOne
}

// Flip swaps the player in place.
func (p *Player) Flip() {
	*p = p.Other()
}

// Result converts the player into a win for that player.
func (p Player) Result() GameResult {
	return WinFor(p)
}

func (p Player) String() string {
	if p == PlayerOne {
		return "Player One"
	}
	return "Player Two"
}
