package engine

type offset struct {
	row int
	col int
}

var (
	rookDirs   = []offset{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	bishopDirs = []offset{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}

	knightOffsets = []offset{{2, 1}, {2, -1}, {-2, 1}, {-2, -1}, {1, 2}, {1, -2}, {-1, 2}, {-1, -2}}
	kingOffsets   = []offset{{1, 0}, {-1, 0}, {0, 1}, {0, -1}, {1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
)

// attacked reports whether any piece of color by could capture onto target on
// its next move, regardless of whose turn it is or whether doing so would
// expose the attacker's own king.
func (b *Board) attacked(target Square, by Color) bool {
	for _, o := range knightOffsets {
		if b.pieceAt(target.Row+o.row, target.Col+o.col, by, Knight) {
			return true
		}
	}
	for _, dir := range rookDirs {
		if p, ok := b.firstAlongRay(target, dir); ok && p.Color == by && (p.Kind == Rook || p.Kind == Queen) {
			return true
		}
	}
	for _, dir := range bishopDirs {
		if p, ok := b.firstAlongRay(target, dir); ok && p.Color == by && (p.Kind == Bishop || p.Kind == Queen) {
			return true
		}
	}
	// A pawn of color by sits one row behind target relative to its own
	// forward direction, offset one file either way.
	behind := 1
	if by == ColorBlack {
		behind = -1
	}
	if b.pieceAt(target.Row+behind, target.Col-1, by, Pawn) || b.pieceAt(target.Row+behind, target.Col+1, by, Pawn) {
		return true
	}
	for _, o := range kingOffsets {
		if b.pieceAt(target.Row+o.row, target.Col+o.col, by, King) {
			return true
		}
	}
	return false
}

// firstAlongRay walks outward from start in dir and returns the first
// occupied square's piece, or ok=false if the ray leaves the board empty.
func (b *Board) firstAlongRay(start Square, dir offset) (Piece, bool) {
	for row, col := start.Row+dir.row, start.Col+dir.col; inBounds(row, col); row, col = row+dir.row, col+dir.col {
		if !b[row][col].IsEmpty() {
			return b[row][col], true
		}
	}
	return Piece{}, false
}

func (b *Board) pieceAt(row, col int, color Color, kind Kind) bool {
	return inBounds(row, col) && b[row][col] == Piece{Color: color, Kind: kind}
}
