package engine

// hasAnyMove reports whether color has at least one legal move. Every piece
// of that color is tried against all 64 destinations; at this board size the
// exhaustive scan is cheap and leaves no edge cases.
func (b *Board) hasAnyMove(color Color) bool {
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			if b[row][col].Color != color {
				continue
			}
			src := Square{Row: row, Col: col}
			for dstRow := 0; dstRow < 8; dstRow++ {
				for dstCol := 0; dstCol < 8; dstCol++ {
					if b.isSafe(src, Square{Row: dstRow, Col: dstCol}) {
						return true
					}
				}
			}
		}
	}
	return false
}
