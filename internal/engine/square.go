package engine

import "fmt"

// Square addresses a board cell. Row 0 is rank 8 and col 0 is file a, so the
// board prints top-down the way the pieces face each other.
type Square struct {
	Row int
	Col int
}

// ParseSquare reads two-character algebraic text such as "e2". Anything other
// than a file a-h followed by a rank 1-8 is a *ParseError.
func ParseSquare(text string) (Square, error) {
	if len(text) != 2 || text[0] < 'a' || text[0] > 'h' || text[1] < '1' || text[1] > '8' {
		return Square{}, &ParseError{Input: text}
	}
	return Square{
		Row: 8 - int(text[1]-'0'),
		Col: int(text[0] - 'a'),
	}, nil
}

func (s Square) String() string {
	return fmt.Sprintf("%c%d", 'a'+s.Col, 8-s.Row)
}

func inBounds(row, col int) bool {
	return row >= 0 && row < 8 && col >= 0 && col < 8
}
