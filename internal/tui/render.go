package tui

import (
	"fmt"
	"strings"

	"github.com/Tyler-Burley/Chess-Terminal/internal/engine"
)

const (
	escClearScreen = "\033[2J"
	escCursorHome  = "\033[H"
	escBoldWhite   = "\033[1;37m"
	escBoldBlue    = "\033[1;34m"
	escReset       = "\033[0m"
)

// renderBoard draws the grid top-down from black's back rank. hide, when
// non-nil, blanks that square; the flicker loop toggles it for the selected
// piece.
func renderBoard(b engine.Board, hide *engine.Square) string {
	var sb strings.Builder
	sb.WriteString(escCursorHome)
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			if hide != nil && hide.Row == row && hide.Col == col {
				sb.WriteString("  ")
				continue
			}
			sb.WriteString(cell(b[row][col]))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func cell(p engine.Piece) string {
	if p.IsEmpty() {
		return ". "
	}
	color := escBoldBlue
	if p.Color == engine.ColorWhite {
		color = escBoldWhite
	}
	return color + p.Kind.Letter() + escReset + " "
}

var tallyOrder = []engine.Kind{engine.Pawn, engine.Knight, engine.Bishop, engine.Rook, engine.Queen}

func capturedLine(color engine.Color, tally map[engine.Kind]int) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s has captured:", color)
	total := 0
	for _, kind := range tallyOrder {
		if n := tally[kind]; n > 0 {
			fmt.Fprintf(&sb, " %sx%d", kind.Letter(), n)
			total += n
		}
	}
	if total == 0 {
		sb.WriteString(" nothing yet")
	}
	return sb.String()
}
