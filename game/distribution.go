package game

import "fmt"

// Distribution holds win/draw/loss probabilities from the perspective of the
// side to move at the evaluated state. Only win and loss are stored; draw is
// their complement.
type Distribution struct {
	win  float64
	loss float64
}

// NewDistribution builds a distribution from win and loss probabilities.
// Panics unless both are non-negative and sum to at most 1.
func NewDistribution(win, loss float64) Distribution {
	if win < 0 || loss < 0 || win+loss > 1 {
		panic(fmt.Sprintf("invalid distribution: win=%v loss=%v", win, loss))
	}
	return Distribution{win: win, loss: loss}
}

// CertainWin is the distribution of a won position.
func CertainWin() Distribution {
	return Distribution{win: 1}
}

// CertainLoss is the distribution of a lost position.
func CertainLoss() Distribution {
	return Distribution{loss: 1}
}

// CertainDraw is the distribution of a drawn position.
func CertainDraw() Distribution {
	return Distribution{}
}

// WinProb returns the probability of a win.
func (d Distribution) WinProb() float64 {
	return d.win
}

// LossProb returns the probability of a loss.
func (d Distribution) LossProb() float64 {
	return d.loss
}

// DrawProb returns the probability of a draw.
func (d Distribution) DrawProb() float64 {
	return 1 - d.win - d.loss
}

// OtherPerspective swaps win and loss. Look-ahead re-interprets a child
// state's evaluation from the parent's perspective with this.
func (d Distribution) OtherPerspective() Distribution {
	return Distribution{win: d.loss, loss: d.win}
}

// ExpectedResult scores the position with win=1, draw=0, loss=-1.
func (d Distribution) ExpectedResult() float64 {
	return d.win - d.loss
}
