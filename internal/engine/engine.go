package engine

import "sync"

// Status tracks whether a game can still accept moves.
type Status int

const (
	StatusInProgress Status = iota
	StatusConcluded
)

// Conclusion records why a game ended. Winner is ColorNone for stalemate.
type Conclusion struct {
	State  GameState
	Winner Color
}

// Engine owns one game's board and drives turns through the legality
// pipeline. All public methods lock the engine, so a renderer running on
// another goroutine can never observe the simulate/restore window inside a
// safety check.
type Engine struct {
	mu         sync.Mutex
	board      Board
	status     Status
	conclusion Conclusion
	captured   map[Color]map[Kind]int
}

// New returns an engine at the standard starting position.
func New() *Engine {
	return &Engine{
		board: NewBoard(),
		captured: map[Color]map[Kind]int{
			ColorWhite: make(map[Kind]int),
			ColorBlack: make(map[Kind]int),
		},
	}
}

// TryMove attempts one turn for mover, with source and destination given as
// two-character algebraic text. On success the move is committed and the
// opponent's resulting state is returned; checkmate and stalemate conclude
// the game. On any error the board is unchanged:
//
//   - *ParseError for malformed coordinate text
//   - ErrGameOver once the game has concluded
//   - ErrWrongColor when src does not hold one of mover's pieces
//   - ErrIllegalMove when geometry fails or the mover's king would be left
//     attacked
func (e *Engine) TryMove(mover Color, srcText, dstText string) (GameState, error) {
	src, err := ParseSquare(srcText)
	if err != nil {
		return Playing, err
	}
	dst, err := ParseSquare(dstText)
	if err != nil {
		return Playing, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.status == StatusConcluded {
		return e.conclusion.State, ErrGameOver
	}
	if e.board.At(src).Color != mover {
		return Playing, ErrWrongColor
	}
	if !e.board.isSafe(src, dst) {
		return Playing, ErrIllegalMove
	}

	if captured := e.board.commit(src, dst); !captured.IsEmpty() {
		e.captured[mover][captured.Kind]++
	}

	state := e.board.resolve(mover.Opponent())
	switch state {
	case Checkmate:
		e.status = StatusConcluded
		e.conclusion = Conclusion{State: Checkmate, Winner: mover}
	case Stalemate:
		e.status = StatusConcluded
		e.conclusion = Conclusion{State: Stalemate, Winner: ColorNone}
	}
	return state, nil
}

// NewFromBoard returns an engine over an arbitrary position. Both kings must
// be present.
func NewFromBoard(board Board) *Engine {
	e := New()
	e.board = board
	return e
}

// State classifies color's current situation. It mutates nothing observable
// and returns the same answer until the next committed move.
func (e *Engine) State(color Color) GameState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.board.resolve(color)
}

// Snapshot returns a copy of the board for rendering or serialization.
func (e *Engine) Snapshot() Board {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.board
}

// Captured returns a copy of color's capture tally: how many of each enemy
// kind color has taken. Display bookkeeping only.
func (e *Engine) Captured(color Color) map[Kind]int {
	e.mu.Lock()
	defer e.mu.Unlock()
	tally := make(map[Kind]int, len(e.captured[color]))
	for kind, n := range e.captured[color] {
		tally[kind] = n
	}
	return tally
}

// Status reports whether the game is still accepting moves and, once
// concluded, why it ended.
func (e *Engine) Status() (Status, Conclusion) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.status, e.conclusion
}
