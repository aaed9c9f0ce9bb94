package model

import "github.com/Tyler-Burley/Chess-Terminal/internal/engine"

// ClientPiece is the wire form of one occupied square.
type ClientPiece struct {
	Type  string `json:"type"`
	Color string `json:"color"`
}

// ClientBoard mirrors the engine board for the client: row 0 is rank 8,
// empty squares are null.
type ClientBoard [8][8]*ClientPiece

func clientBoard(b engine.Board) ClientBoard {
	var out ClientBoard
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			p := b[row][col]
			if p.IsEmpty() {
				continue
			}
			out[row][col] = &ClientPiece{
				Type:  p.Kind.String(),
				Color: p.Color.String(),
			}
		}
	}
	return out
}

func clientTally(tally map[engine.Kind]int) map[string]int {
	out := make(map[string]int, len(tally))
	for kind, n := range tally {
		out[kind.String()] = n
	}
	return out
}
