package engine

import "testing"

func TestStartingPosition(t *testing.T) {
	b := NewBoard()
	back := []Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for col, kind := range back {
		if got := b[0][col]; got != black(kind) {
			t.Errorf("row 0 col %d = %+v, want black %s", col, got, kind)
		}
		if got := b[7][col]; got != white(kind) {
			t.Errorf("row 7 col %d = %+v, want white %s", col, got, kind)
		}
	}
	for col := 0; col < 8; col++ {
		if got := b[1][col]; got != black(Pawn) {
			t.Errorf("row 1 col %d = %+v, want black pawn", col, got)
		}
		if got := b[6][col]; got != white(Pawn) {
			t.Errorf("row 6 col %d = %+v, want white pawn", col, got)
		}
	}
	for row := 2; row < 6; row++ {
		for col := 0; col < 8; col++ {
			if !b[row][col].IsEmpty() {
				t.Errorf("row %d col %d = %+v, want empty", row, col, b[row][col])
			}
		}
	}
}

func TestKingSquare(t *testing.T) {
	b := NewBoard()
	if got := b.KingSquare(ColorWhite); got != (Square{Row: 7, Col: 4}) {
		t.Errorf("white king at %+v, want e1", got)
	}
	if got := b.KingSquare(ColorBlack); got != (Square{Row: 0, Col: 4}) {
		t.Errorf("black king at %+v, want e8", got)
	}
}

func TestCommitOverwritesAndClears(t *testing.T) {
	b := NewBoard()
	src, dst := Square{Row: 6, Col: 4}, Square{Row: 1, Col: 4}
	captured := b.commit(src, dst)
	if captured != black(Pawn) {
		t.Errorf("captured = %+v, want black pawn", captured)
	}
	if b.At(dst) != white(Pawn) {
		t.Errorf("destination = %+v, want white pawn", b.At(dst))
	}
	if !b.At(src).IsEmpty() {
		t.Errorf("source = %+v, want empty", b.At(src))
	}
}
