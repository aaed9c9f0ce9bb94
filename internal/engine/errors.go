package engine

import (
	"errors"
	"fmt"
)

var (
	// ErrWrongColor rejects selecting a piece the moving side does not own,
	// including an empty source square.
	ErrWrongColor = errors.New("piece does not belong to the side to move")

	// ErrIllegalMove rejects a move that fails piece geometry or would leave
	// the mover's own king attacked. The board is untouched.
	ErrIllegalMove = errors.New("illegal move")

	// ErrGameOver rejects any move attempted after checkmate or stalemate.
	ErrGameOver = errors.New("game is already over")
)

// ParseError reports malformed coordinate text. It is recoverable: the caller
// re-prompts and no state changes.
type ParseError struct {
	Input string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid square %q: want a file a-h followed by a rank 1-8", e.Input)
}
