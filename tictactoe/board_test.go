package tictactoe

import (
	"math/bits"
	"testing"

	"github.com/matryer/is"

	"minimax/game"
)

func playOut(t *testing.T, cells ...int) *BoardState {
	t.Helper()
	b := New()
	for _, c := range cells {
		if !b.TryMove(CellMove(c)) {
			t.Fatalf("move to cell %d rejected", c)
		}
	}
	return b
}

func TestNewBoard(t *testing.T) {
	is := is.New(t)
	b := New()
	is.Equal(b.CurrentPlayer(), game.PlayerOne) // player one starts
	is.Equal(len(b.LegalMoves()), 9)
	is.True(!b.GameResult().IsDetermined())
}

func TestCellMove(t *testing.T) {
	is := is.New(t)
	for k := 0; k < 9; k++ {
		mv := CellMove(k)
		is.Equal(mv.Cell(), k)
		is.Equal(bits.OnesCount16(uint16(mv)), 1) // exactly one bit set
		is.Equal(mv, AllMoves[k])
	}
}

func TestCellMoveOutOfRange(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for cell 9")
		}
	}()
	CellMove(9)
}

func TestApplyMovePassesTheTurn(t *testing.T) {
	is := is.New(t)
	b := New()
	b.ApplyMove(CellMove(4))
	is.Equal(b.CurrentPlayer(), game.PlayerTwo)
	is.Equal(b.LastPlayer(), game.PlayerOne)
	is.Equal(b.player1, uint16(1<<4))
	is.Equal(b.player2, uint16(0))
}

func TestTryMoveRejectsOccupiedCell(t *testing.T) {
	is := is.New(t)
	b := playOut(t, 4)
	before := *b
	is.True(!b.TryMove(CellMove(4)))
	is.Equal(*b, before) // illegal move must not mutate
}

func TestNextStateLeavesOriginal(t *testing.T) {
	is := is.New(t)
	b := playOut(t, 0, 4)
	before := *b

	next := b.NextState(CellMove(8))
	is.Equal(*b, before)

	copied := *b
	copied.ApplyMove(CellMove(8))
	is.Equal(*next, copied) // NextState == copy then ApplyMove
}

func TestMoveOrderCommutes(t *testing.T) {
	is := is.New(t)

	// Same cells claimed by the same players in a different order.
	a := playOut(t, 0, 1, 2, 3)
	b := playOut(t, 2, 1, 0, 3)
	is.Equal(*a, *b)

	// Two plies to distinct cells fill the same cells either way around.
	c := playOut(t, 0, 1)
	d := playOut(t, 1, 0)
	is.Equal(c.player1|c.player2, d.player1|d.player2)
}

func TestLegalityMonotonic(t *testing.T) {
	is := is.New(t)
	b := New()
	for _, c := range []int{0, 1, 2, 4, 3, 5, 7, 6, 8} {
		before := b.LegalMoves()
		b.ApplyMove(CellMove(c))
		if b.GameResult().IsDetermined() {
			break
		}
		after := b.LegalMoves()
		is.Equal(len(after), len(before)-1) // exactly the played cell disappears
		for _, mv := range after {
			is.True(mv.Cell() != c)
		}
	}
}

func TestWinningLineDetection(t *testing.T) {
	is := is.New(t)
	for _, line := range winningLines {
		// Bare line for player one.
		b := &BoardState{player1: line}
		is.Equal(b.GameResult(), game.WinFor(game.PlayerOne))
		is.True(b.IsWinner(game.PlayerOne))
		is.Equal(len(b.LegalMoves()), 0) // terminal even though not full

		// Up to three disjoint opponent cells change nothing.
		b = &BoardState{player1: line, player2: disjointCells(line, 3)}
		is.Equal(b.GameResult(), game.WinFor(game.PlayerOne))

		// Mirror for player two.
		b = &BoardState{player2: line}
		is.Equal(b.GameResult(), game.WinFor(game.PlayerTwo))
	}
}

// disjointCells returns up to n cells outside mask.
func disjointCells(mask uint16, n int) uint16 {
	var cells uint16
	for k := 0; k < 9 && n > 0; k++ {
		bit := uint16(1) << k
		if mask&bit == 0 {
			cells |= bit
			n--
		}
	}
	return cells
}

func TestDrawDetection(t *testing.T) {
	is := is.New(t)
	// X O X / X O O / O X X: full board, no line for either player.
	b := &BoardState{
		player1: 0b110001101,
		player2: 0b001110010,
	}
	is.Equal(b.GameResult(), game.Drawn())
	is.Equal(len(b.LegalMoves()), 0)
}

func TestTopRowScenario(t *testing.T) {
	is := is.New(t)
	b := playOut(t, 0, 3, 1, 4, 2)
	is.Equal(b.GameResult(), game.WinFor(game.PlayerOne))
	is.Equal(len(b.LegalMoves()), 0)
}

func TestFullGameDrawScenario(t *testing.T) {
	is := is.New(t)
	b := New()
	for _, c := range []int{0, 1, 2, 4, 3, 5, 7, 6} {
		is.True(b.TryMove(CellMove(c)))
		is.True(!b.GameResult().IsDetermined()) // no premature result
	}
	is.True(b.TryMove(CellMove(8)))
	is.Equal(b.GameResult(), game.Drawn())
}

func TestGameResultIsIdempotent(t *testing.T) {
	is := is.New(t)
	b := playOut(t, 0, 3, 1, 4, 2)
	before := *b
	is.Equal(b.GameResult(), b.GameResult())
	is.Equal(*b, before)
}
