// Package tui runs the two-player terminal game around the rule engine:
// ANSI board rendering, coordinate prompting with cancellation, and the
// flickering highlight on the selected piece.
package tui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/Tyler-Burley/Chess-Terminal/internal/engine"
)

const cancelToken = "x"

// syncWriter serializes writes so the flicker goroutine and the prompt loop
// never interleave mid-frame.
type syncWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (sw *syncWriter) Write(p []byte) (int, error) {
	sw.mu.Lock()
	defer sw.mu.Unlock()
	return sw.w.Write(p)
}

type Game struct {
	engine  *engine.Engine
	scanner *bufio.Scanner
	out     io.Writer
	notice  string
}

func New(in io.Reader, out io.Writer) *Game {
	scanner := bufio.NewScanner(in)
	scanner.Split(bufio.ScanWords)
	return &Game{
		engine:  engine.New(),
		scanner: scanner,
		out:     &syncWriter{w: out},
	}
}

// Run alternates turns from white until checkmate, stalemate, or the input
// runs out.
func (g *Game) Run() error {
	fmt.Fprint(g.out, escClearScreen)
	color := engine.ColorWhite
	for {
		g.draw()
		fmt.Fprintf(g.out, "\n%s to move.", color)

		src, cancelled, ok := g.promptSquare("\nPiece to move ('x' restarts): ")
		if !ok {
			return g.scanner.Err()
		}
		if cancelled {
			continue
		}

		fl := g.startFlicker(src)
		dst, cancelled, ok := g.promptSquare("")
		fl.halt()
		if !ok {
			return g.scanner.Err()
		}
		if cancelled {
			continue
		}

		state, err := g.engine.TryMove(color, src, dst)
		if err != nil {
			g.notice = rejectionNotice(err)
			continue
		}
		switch state {
		case engine.Check:
			g.notice = "CHECK"
		case engine.Checkmate:
			g.draw()
			fmt.Fprintf(g.out, "\nCHECKMATE! %s wins\n", color)
			return nil
		case engine.Stalemate:
			g.draw()
			fmt.Fprintln(g.out, "\nSTALEMATE")
			return nil
		}
		color = color.Opponent()
	}
}

func (g *Game) draw() {
	fmt.Fprint(g.out, escClearScreen)
	fmt.Fprint(g.out, renderBoard(g.engine.Snapshot(), nil))
	fmt.Fprintln(g.out, capturedLine(engine.ColorWhite, g.engine.Captured(engine.ColorWhite)))
	fmt.Fprintln(g.out, capturedLine(engine.ColorBlack, g.engine.Captured(engine.ColorBlack)))
	if g.notice != "" {
		fmt.Fprintf(g.out, "\n%s\n", g.notice)
		g.notice = ""
	}
}

// promptSquare reads tokens until one parses as a square or the player
// cancels. ok is false once the input is exhausted. The flicker loop prints
// the destination prompt itself, so prompt may be empty.
func (g *Game) promptSquare(prompt string) (text string, cancelled, ok bool) {
	if prompt != "" {
		fmt.Fprint(g.out, prompt)
	}
	for g.scanner.Scan() {
		token := g.scanner.Text()
		if token == cancelToken {
			return "", true, true
		}
		if _, err := engine.ParseSquare(token); err != nil {
			fmt.Fprint(g.out, "Invalid format. Try again: ")
			continue
		}
		return token, false, true
	}
	return "", false, false
}

// mustParse converts text that promptSquare already validated.
func (g *Game) mustParse(text string) engine.Square {
	square, err := engine.ParseSquare(text)
	if err != nil {
		panic(err)
	}
	return square
}

func rejectionNotice(err error) string {
	switch {
	case errors.Is(err, engine.ErrWrongColor):
		return "That piece is not yours. Try again."
	case errors.Is(err, engine.ErrIllegalMove):
		return "Illegal Move! Try again."
	case errors.Is(err, engine.ErrGameOver):
		return "The game is over."
	default:
		return err.Error()
	}
}
