package engine

// isSafe reports whether src->dst is a fully legal move: the piece geometry
// must allow it, and after playing it the mover's own king must not stand
// attacked. The check is run against the live board by applying the move,
// probing the king square, and restoring; withMove guarantees restoration on
// every exit path, so a rejected move leaves the board bit-for-bit unchanged.
func (b *Board) isSafe(src, dst Square) bool {
	if !b.canReach(src, dst) {
		return false
	}
	mover := b.At(src).Color
	safe := false
	b.withMove(src, dst, func() {
		safe = !b.attacked(b.KingSquare(mover), mover.Opponent())
	})
	return safe
}
