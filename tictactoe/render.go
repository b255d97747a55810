package tictactoe

import "strings"

const emptyCell = "-"

// String renders the grid as three newline-terminated rows of three cells
// separated by '|'. Occupied cells show the owner's piece, empty cells a
// dash. Output only; there is no parsing counterpart.
func (b *BoardState) String() string {
	var sb strings.Builder
	for cell := 0; cell < 9; cell++ {
		bit := uint16(1) << cell
		switch {
		case b.player1&bit != 0:
			sb.WriteString(b.player1Piece.String())
		case b.player2&bit != 0:
			sb.WriteString(b.player1Piece.other().String())
		default:
			sb.WriteString(emptyCell)
		}
		if cell%3 == 2 {
			sb.WriteByte('\n')
		} else {
			sb.WriteByte('|')
		}
	}
	return sb.String()
}
