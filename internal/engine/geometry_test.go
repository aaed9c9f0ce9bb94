package engine

import "testing"

func TestPawnGeometry(t *testing.T) {
	b := position(t, map[string]Piece{
		"e2": white(Pawn),
		"d3": black(Knight),
		"f3": white(Bishop),
		"c7": black(Pawn),
		"h2": white(Pawn),
		"h3": black(Rook),
		"b2": white(Pawn),
		"b4": black(Rook),
	})
	cases := []struct {
		src, dst string
		want     bool
	}{
		{"e2", "e3", true},  // forward one
		{"e2", "e4", true},  // forward two from home rank
		{"e2", "e5", false}, // forward three
		{"e2", "d3", true},  // capture diagonal
		{"e2", "f3", false}, // own piece on the diagonal
		{"e2", "f1", false}, // backward
		{"e2", "d2", false}, // sideways
		{"h2", "h3", false}, // forward onto an occupant
		{"h2", "h4", false}, // forward two through an occupant
		{"b2", "b4", false}, // forward two onto an occupant
		{"b2", "b3", true},
		{"c7", "c5", true},  // black forward two from its home rank
		{"c7", "c6", true},  // black forward one
		{"c7", "b6", false}, // black diagonal without a capture
		{"c7", "c8", false}, // black moving backward
	}
	for _, tc := range cases {
		if got := b.canReach(sq(t, tc.src), sq(t, tc.dst)); got != tc.want {
			t.Errorf("pawn %s->%s = %v, want %v", tc.src, tc.dst, got, tc.want)
		}
	}
}

func TestKnightGeometry(t *testing.T) {
	b := position(t, map[string]Piece{
		"d4": white(Knight),
		"e6": white(Pawn),
		"f5": black(Pawn),
		"d5": black(Pawn), // knights jump, blockers are irrelevant
	})
	cases := []struct {
		dst  string
		want bool
	}{
		{"e6", false}, // own piece
		{"f5", true},  // capture
		{"c6", true},
		{"b5", true},
		{"b3", true},
		{"c2", true},
		{"e2", true},
		{"f3", true},
		{"d6", false}, // straight
		{"f6", false}, // diagonal
		{"d4", false}, // in place
	}
	for _, tc := range cases {
		if got := b.canReach(sq(t, "d4"), sq(t, tc.dst)); got != tc.want {
			t.Errorf("knight d4->%s = %v, want %v", tc.dst, got, tc.want)
		}
	}
}

func TestSliderGeometry(t *testing.T) {
	cases := []struct {
		name     string
		board    map[string]Piece
		src, dst string
		want     bool
	}{
		{"rook up to enemy", map[string]Piece{"d4": white(Rook), "d7": black(Pawn)}, "d4", "d7", true},
		{"rook through enemy", map[string]Piece{"d4": white(Rook), "d7": black(Pawn)}, "d4", "d8", false},
		{"rook open rank", map[string]Piece{"d4": white(Rook)}, "d4", "a4", true},
		{"rook onto own pawn", map[string]Piece{"d4": white(Rook), "g4": white(Pawn)}, "d4", "g4", false},
		{"rook through own pawn", map[string]Piece{"d4": white(Rook), "g4": white(Pawn)}, "d4", "h4", false},
		{"rook open file down", map[string]Piece{"d4": white(Rook)}, "d4", "d1", true},
		{"rook diagonal", map[string]Piece{"d4": white(Rook)}, "d4", "f6", false},
		{"bishop up to capture", map[string]Piece{"c3": white(Bishop), "f6": black(Knight)}, "c3", "f6", true},
		{"bishop through enemy", map[string]Piece{"c3": white(Bishop), "f6": black(Knight)}, "c3", "g7", false},
		{"bishop blocked by own pawn", map[string]Piece{"c3": white(Bishop), "d4": white(Pawn)}, "c3", "e5", false},
		{"bishop open diagonal", map[string]Piece{"c3": white(Bishop)}, "c3", "a1", true},
		{"bishop straight", map[string]Piece{"c3": white(Bishop)}, "c3", "c6", false},
		{"queen straight through own pawn", map[string]Piece{"h4": white(Queen), "g4": white(Pawn)}, "h4", "d4", false},
		{"queen diagonal open", map[string]Piece{"h4": white(Queen)}, "h4", "e7", true},
		{"queen diagonal to capture", map[string]Piece{"h4": white(Queen), "e1": black(Rook)}, "h4", "e1", true},
		{"queen straight open", map[string]Piece{"h4": white(Queen)}, "h4", "h8", true},
		{"queen knight shape", map[string]Piece{"h4": white(Queen)}, "h4", "f5", false},
	}
	for _, tc := range cases {
		b := position(t, tc.board)
		if got := b.canReach(sq(t, tc.src), sq(t, tc.dst)); got != tc.want {
			t.Errorf("%s: %s->%s = %v, want %v", tc.name, tc.src, tc.dst, got, tc.want)
		}
	}
}

func TestKingGeometry(t *testing.T) {
	b := position(t, map[string]Piece{
		"e4": white(King),
		"e5": white(Pawn),
		"d5": black(Pawn),
	})
	cases := []struct {
		dst  string
		want bool
	}{
		{"d5", true}, // capture
		{"e5", false},
		{"f5", true},
		{"d4", true},
		{"f3", true},
		{"e6", false}, // two away
		{"c4", false},
		{"g6", false},
	}
	for _, tc := range cases {
		if got := b.canReach(sq(t, "e4"), sq(t, tc.dst)); got != tc.want {
			t.Errorf("king e4->%s = %v, want %v", tc.dst, got, tc.want)
		}
	}
}

func TestEmptySourceInvalid(t *testing.T) {
	b := NewBoard()
	if b.canReach(sq(t, "e4"), sq(t, "e5")) {
		t.Errorf("move from an empty square accepted")
	}
}
