package engine

import "fmt"

// Board is the 8x8 grid of pieces. It holds no legality logic: callers are
// trusted, and only the engine's safety-checked path commits moves.
type Board [8][8]Piece

// NewBoard returns the standard starting position.
func NewBoard() Board {
	var b Board
	back := [8]Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for col, kind := range back {
		b[0][col] = Piece{Color: ColorBlack, Kind: kind}
		b[7][col] = Piece{Color: ColorWhite, Kind: kind}
	}
	for col := 0; col < 8; col++ {
		b[1][col] = Piece{Color: ColorBlack, Kind: Pawn}
		b[6][col] = Piece{Color: ColorWhite, Kind: Pawn}
	}
	return b
}

func (b *Board) At(s Square) Piece {
	return b[s.Row][s.Col]
}

// commit moves the piece at src onto dst, overwriting any occupant, and
// returns the overwritten piece.
func (b *Board) commit(src, dst Square) Piece {
	captured := b[dst.Row][dst.Col]
	b[dst.Row][dst.Col] = b[src.Row][src.Col]
	b[src.Row][src.Col] = Piece{}
	return captured
}

// withMove applies the move for the duration of fn and restores both cells on
// every exit path. Nothing else may read the board while fn runs.
func (b *Board) withMove(src, dst Square, fn func()) {
	moved := b[src.Row][src.Col]
	target := b[dst.Row][dst.Col]
	b[dst.Row][dst.Col] = moved
	b[src.Row][src.Col] = Piece{}
	defer func() {
		b[src.Row][src.Col] = moved
		b[dst.Row][dst.Col] = target
	}()
	fn()
}

// KingSquare locates color's king. A missing king means the engine itself has
// corrupted the position, so it is an invariant failure rather than a game
// condition.
func (b *Board) KingSquare(color Color) Square {
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			if b[row][col] == (Piece{Color: color, Kind: King}) {
				return Square{Row: row, Col: col}
			}
		}
	}
	panic(fmt.Sprintf("engine: no %s king on the board", color))
}
