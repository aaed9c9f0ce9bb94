package engine

// Color identifies a side. The zero value means no side, used for the empty
// square and for conclusions without a winner.
type Color int

const (
	ColorNone Color = iota
	ColorWhite
	ColorBlack
)

func (c Color) Opponent() Color {
	switch c {
	case ColorWhite:
		return ColorBlack
	case ColorBlack:
		return ColorWhite
	}
	return ColorNone
}

func (c Color) String() string {
	switch c {
	case ColorWhite:
		return "white"
	case ColorBlack:
		return "black"
	}
	return "none"
}

// Kind identifies a piece type. The zero value is the empty square.
type Kind int

const (
	KindNone Kind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

func (k Kind) String() string {
	switch k {
	case Pawn:
		return "pawn"
	case Knight:
		return "knight"
	case Bishop:
		return "bishop"
	case Rook:
		return "rook"
	case Queen:
		return "queen"
	case King:
		return "king"
	}
	return "none"
}

// Letter returns the single-letter board notation for the kind.
func (k Kind) Letter() string {
	switch k {
	case Pawn:
		return "P"
	case Knight:
		return "N"
	case Bishop:
		return "B"
	case Rook:
		return "R"
	case Queen:
		return "Q"
	case King:
		return "K"
	}
	return ""
}

// Piece is a tagged (color, kind) pair. The zero value is an empty square.
type Piece struct {
	Color Color
	Kind  Kind
}

func (p Piece) IsEmpty() bool {
	return p.Kind == KindNone
}

// GameState classifies a side's situation on the current board. It is always
// computed fresh, never stored.
type GameState int

const (
	Playing GameState = iota
	Check
	Checkmate
	Stalemate
)

func (s GameState) String() string {
	switch s {
	case Check:
		return "check"
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	}
	return "playing"
}
