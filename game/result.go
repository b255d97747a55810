package game

type resultKind uint8

const (
	undetermined resultKind = iota
	won
	drawn
)

// GameResult is the outcome of a game: a win for one player, a draw, or
// undetermined while play continues. The zero value is undetermined.
// Results are plain values, comparable with ==.
type GameResult struct {
	kind   resultKind
	winner Player
}

// WinFor returns a win for p.
func WinFor(p Player) GameResult {
	return GameResult{kind: won, winner: p}
}

// Drawn returns the drawn result.
func Drawn() GameResult {
	return GameResult{kind: drawn}
}

// Undetermined returns the result of a game still in progress.
func Undetermined() GameResult {
	return GameResult{}
}

// IsDetermined reports whether the game is over.
func (r GameResult) IsDetermined() bool {
	return r.kind != undetermined
}

// IsDraw reports whether the game ended without a winner.
func (r GameResult) IsDraw() bool {
	return r.kind == drawn
}

// Winner returns the winning player if the result is a win.
func (r GameResult) Winner() (Player, bool) {
	return r.winner, r.kind == won
}

// Other returns the result with the winner swapped. Draws and undetermined
// results are unchanged.
func (r GameResult) Other() GameResult {
	if r.kind == won {
		return WinFor(r.winner.Other())
	}
	return r
}

func (r GameResult) String() string {
	switch r.kind {
	case won:
		return r.winner.String() + " wins"
	case drawn:
		return "draw"
	default:
		return "undetermined"
	}
}
