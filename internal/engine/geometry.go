package engine

// canReach reports whether the piece at src may move to dst by its movement
// shape alone. Check safety is not considered here.
func (b *Board) canReach(src, dst Square) bool {
	piece := b.At(src)
	if piece.IsEmpty() {
		return false
	}
	// No friendly captures. This also rejects src == dst.
	if b.At(dst).Color == piece.Color {
		return false
	}

	rowDiff := dst.Row - src.Row
	colDiff := dst.Col - src.Col

	switch piece.Kind {
	case Pawn:
		return b.pawnCanReach(piece.Color, src, dst, rowDiff, colDiff)
	case Knight:
		return (abs(rowDiff) == 1 && abs(colDiff) == 2) || (abs(rowDiff) == 2 && abs(colDiff) == 1)
	case Bishop:
		return abs(rowDiff) == abs(colDiff) && b.pathClear(src, dst)
	case Rook:
		return (rowDiff == 0 || colDiff == 0) && b.pathClear(src, dst)
	case Queen:
		return (rowDiff == 0 || colDiff == 0 || abs(rowDiff) == abs(colDiff)) && b.pathClear(src, dst)
	case King:
		return abs(rowDiff) <= 1 && abs(colDiff) <= 1
	}
	return false
}

func (b *Board) pawnCanReach(color Color, src, dst Square, rowDiff, colDiff int) bool {
	dir, homeRow := -1, 6
	if color == ColorBlack {
		dir, homeRow = 1, 1
	}
	switch {
	// Forward one onto an empty square.
	case colDiff == 0 && rowDiff == dir:
		return b.At(dst).IsEmpty()
	// Forward two from the home rank, both squares empty.
	case colDiff == 0 && rowDiff == 2*dir && src.Row == homeRow:
		return b.At(dst).IsEmpty() && b[src.Row+dir][src.Col].IsEmpty()
	// Diagonal captures only. The friendly-capture gate already ran, so any
	// occupant here is an enemy.
	case abs(colDiff) == 1 && rowDiff == dir:
		return !b.At(dst).IsEmpty()
	}
	return false
}

// pathClear checks that every square strictly between src and dst along the
// line connecting them is empty. Callers guarantee the squares share a rank,
// file or diagonal.
func (b *Board) pathClear(src, dst Square) bool {
	stepRow := sign(dst.Row - src.Row)
	stepCol := sign(dst.Col - src.Col)
	for row, col := src.Row+stepRow, src.Col+stepCol; row != dst.Row || col != dst.Col; row, col = row+stepRow, col+stepCol {
		if !b[row][col].IsEmpty() {
			return false
		}
	}
	return true
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
