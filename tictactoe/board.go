// Package tictactoe is the reference rules engine: a 3x3 grid game on a
// pair of 9-bit occupancy masks. Bit k of a mask is the cell at row k/3,
// column k%3, counting left to right, top to bottom:
//
//	0 | 1 | 2
//	3 | 4 | 5
//	6 | 7 | 8
package tictactoe

import (
	"fmt"
	"math/bits"

	"github.com/samber/lo"

	"minimax/game"
)

// Piece is the glyph a player marks cells with. Cosmetic only; it never
// affects rules evaluation.
type Piece uint8

const (
	X Piece = iota
	O
)

func (p Piece) other() Piece {
	if p == X {
		return O
	}
	return X
}

func (p Piece) String() string {
	if p == X {
		return "X"
	}
	return "O"
}

// Move selects the cell to occupy: a single set bit among the low nine.
type Move uint16

// CellMove returns the move occupying cell k.
func CellMove(k int) Move {
	if k < 0 || k > 8 {
		panic(fmt.Sprintf("cell %d out of range", k))
	}
	return Move(1) << k
}

// Cell returns the board cell this move occupies.
func (m Move) Cell() int {
	return bits.TrailingZeros16(uint16(m))
}

func (m Move) String() string {
	return fmt.Sprintf("cell %d", m.Cell())
}

// AllMoves lists the nine cell moves in board order.
var AllMoves = [9]Move{
	1 << 0, 1 << 1, 1 << 2,
	1 << 3, 1 << 4, 1 << 5,
	1 << 6, 1 << 7, 1 << 8,
}

// winningLines holds the eight winning cell sets. A player has won iff for
// some line, mask&line == line.
var winningLines = [8]uint16{
	0b000_000_111, // top row
	0b000_111_000, // middle row
	0b111_000_000, // bottom row
	0b001_001_001, // left column
	0b010_010_010, // middle column
	0b100_100_100, // right column
	0b100_010_001, // upper-left diagonal
	0b001_010_100, // upper-right diagonal
}

// fullBoard covers all nine cells. A full board with no winner is a draw.
const fullBoard uint16 = 0b111_111_111

// BoardState is the full state of one game. The occupancy masks stay
// disjoint and confined to the low nine bits; only ApplyMove may change
// them. Value semantics: copying a BoardState copies the game.
type BoardState struct {
	player1      uint16
	player2      uint16
	toMove       game.Player
	player1Piece Piece
}

var _ game.State[*BoardState, Move] = (*BoardState)(nil)

// New returns an empty board with player one to move, marking with X.
func New() *BoardState {
	return &BoardState{}
}

// NewWithPiece returns an empty board with player one marking with piece.
func NewWithPiece(piece Piece) *BoardState {
	return &BoardState{player1Piece: piece}
}

// MoveIsLegal reports whether mv's cell is unoccupied.
func (b *BoardState) MoveIsLegal(mv Move) bool {
	filled := b.player1 | b.player2
	return uint16(mv)&filled == 0
}

// TryMove applies mv if it is legal and reports whether it did. The board is
// untouched when mv is illegal.
func (b *BoardState) TryMove(mv Move) bool {
	if !b.MoveIsLegal(mv) {
		return false
	}
	b.ApplyMove(mv)
	return true
}

// ApplyMove occupies mv's cell for the side to move and passes the turn. It
// performs no legality check; mv must come from LegalMoves or have passed
// MoveIsLegal.
func (b *BoardState) ApplyMove(mv Move) {
	*b.currentPositions() |= uint16(mv)
	b.toMove.Flip()
}

// LegalMoves returns the unoccupied cells in board order, or nothing once
// the game is decided.
func (b *BoardState) LegalMoves() []Move {
	if b.GameResult().IsDetermined() {
		return nil
	}
	return lo.Filter(AllMoves[:], func(mv Move, _ int) bool {
		return b.MoveIsLegal(mv)
	})
}

// NextState returns the board reached by mv, leaving b untouched.
func (b *BoardState) NextState(mv Move) *BoardState {
	next := *b
	next.ApplyMove(mv)
	return &next
}

// IsWinner reports whether p has completed a line.
func (b *BoardState) IsWinner(p game.Player) bool {
	pos := b.positions(p)
	for _, line := range winningLines {
		if pos&line == line {
			return true
		}
	}
	return false
}

// Winner returns the player holding a completed line, if any. The last
// mover is checked first: under normal play only the player who just moved
// can have completed a line. The side to move is checked as a fallback so
// hand-built states are answered too.
func (b *BoardState) Winner() (game.Player, bool) {
	if last := b.LastPlayer(); b.IsWinner(last) {
		return last, true
	}
	if b.IsWinner(b.toMove) {
		return b.toMove, true
	}
	return 0, false
}

// GameResult derives the outcome from the occupancy masks alone.
func (b *BoardState) GameResult() game.GameResult {
	if winner, ok := b.Winner(); ok {
		return game.WinFor(winner)
	}
	if b.isFull() {
		return game.Drawn()
	}
	return game.Undetermined()
}

// CurrentPlayer returns the side to move.
func (b *BoardState) CurrentPlayer() game.Player {
	return b.toMove
}

// LastPlayer returns the side that moved last.
func (b *BoardState) LastPlayer() game.Player {
	return b.toMove.Other()
}

func (b *BoardState) isFull() bool {
	return (b.player1|b.player2)&fullBoard == fullBoard
}

func (b *BoardState) positions(p game.Player) uint16 {
	if p == game.PlayerOne {
		return b.player1
	}
	return b.player2
}

func (b *BoardState) currentPositions() *uint16 {
	if b.toMove == game.PlayerOne {
		return &b.player1
	}
	return &b.player2
}
