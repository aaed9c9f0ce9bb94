package engine

// resolve classifies color's situation on the current board.
func (b *Board) resolve(color Color) GameState {
	inCheck := b.attacked(b.KingSquare(color), color.Opponent())
	hasMoves := b.hasAnyMove(color)
	switch {
	case inCheck && !hasMoves:
		return Checkmate
	case inCheck:
		return Check
	case !hasMoves:
		return Stalemate
	}
	return Playing
}
