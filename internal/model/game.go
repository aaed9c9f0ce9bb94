package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gofiber/websocket/v2"

	"github.com/Tyler-Burley/Chess-Terminal/internal/engine"
	"github.com/Tyler-Burley/Chess-Terminal/internal/ws"
)

// The connections for a specific game
type GameConnections struct {
	connections map[string]*websocket.Conn // playerID -> connection
	mu          sync.RWMutex
}

func NewGameConnections() *GameConnections {
	return &GameConnections{
		connections: make(map[string]*websocket.Conn),
	}
}

// Game hosts a single match: seats, clocks and connections around one rule
// engine. All chess legality lives in the engine; this layer only maps
// players to colors and fans state out to the clients.
type Game struct {
	ID          string
	mu          sync.Mutex
	engine      *engine.Engine
	toMove      engine.Color
	lastMove    *Move
	white       Player
	black       Player
	connections *GameConnections
	whiteClock  *Clock
	blackClock  *Clock
}

// GameState is the wire form of everything a client renders.
type GameState struct {
	Board           ClientBoard    `json:"board"`
	ToMove          string         `json:"toMove"`
	CapturedByWhite map[string]int `json:"capturedByWhite"`
	CapturedByBlack map[string]int `json:"capturedByBlack"`
	IsCheck         bool           `json:"isCheck"`
	Resolve         *string        `json:"resolve"` // "checkmate" or "stalemate" once concluded
	Winner          *string        `json:"winner"`  // set for checkmate only
	LastMove        *Move          `json:"lastMove"`
	Players         struct {
		White ClientPlayer `json:"white"`
		Black ClientPlayer `json:"black"`
	} `json:"players"`
}

const initialClockTime = 600 * time.Second

func NewGame(id string) *Game {
	return &Game{
		ID:          id,
		engine:      engine.New(),
		toMove:      engine.ColorWhite,
		connections: NewGameConnections(),
		whiteClock:  NewClock(initialClockTime),
		blackClock:  NewClock(initialClockTime),
	}
}

func (g *Game) AddPlayer(playerID string) (engine.Color, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.white.ID == "" {
		g.white = Player{ID: playerID, Color: engine.ColorWhite}
		return engine.ColorWhite, nil
	}
	if g.black.ID == "" {
		g.black = Player{ID: playerID, Color: engine.ColorBlack}
		return engine.ColorBlack, nil
	}
	return engine.ColorNone, errors.New("game is full")
}

func (g *Game) GetState() GameState {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.buildState()
}

func (g *Game) IsPlayerInGame(playerID string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.isPlayerInGame(playerID)
}

func (g *Game) isPlayerInGame(playerID string) bool {
	if g.white.ID != "" && g.white.ID == playerID {
		return true
	}
	if g.black.ID != "" && g.black.ID == playerID {
		return true
	}
	return false
}

func (g *Game) CanSpectate() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.canSpectate()
}

func (g *Game) canSpectate() bool {
	return g.white.ID == "" || g.black.ID == ""
}

// MakeMove plays one turn for playerID. Turn order is enforced here; the
// engine enforces everything about the move itself and stays untouched on
// rejection.
func (g *Game) MakeMove(playerID string, move Move) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	color, ok := g.seatColor(playerID)
	if !ok {
		return errors.New("player not in game")
	}
	if color != g.toMove {
		return errors.New("not your turn")
	}

	if _, err := g.engine.TryMove(color, move.From, move.To); err != nil {
		return err
	}

	moverClock, opponentClock := g.whiteClock, g.blackClock
	if color == engine.ColorBlack {
		moverClock, opponentClock = g.blackClock, g.whiteClock
	}
	moverClock.Stop()
	if status, _ := g.engine.Status(); status == engine.StatusInProgress {
		opponentClock.Start()
	}

	committed := move
	g.lastMove = &committed
	g.toMove = color.Opponent()

	go g.broadcastState()

	return nil
}

func (g *Game) seatColor(playerID string) (engine.Color, bool) {
	switch playerID {
	case "":
		return engine.ColorNone, false
	case g.white.ID:
		return engine.ColorWhite, true
	case g.black.ID:
		return engine.ColorBlack, true
	}
	return engine.ColorNone, false
}

// buildState derives the wire state fresh from the engine. Callers hold g.mu.
func (g *Game) buildState() GameState {
	st := GameState{
		Board:           clientBoard(g.engine.Snapshot()),
		ToMove:          g.toMove.String(),
		CapturedByWhite: clientTally(g.engine.Captured(engine.ColorWhite)),
		CapturedByBlack: clientTally(g.engine.Captured(engine.ColorBlack)),
		LastMove:        g.lastMove,
	}
	st.Players.White = ClientPlayer{
		ID:       g.white.ID,
		Color:    engine.ColorWhite.String(),
		TimeLeft: int(g.whiteClock.GetTimeLeft().Milliseconds() / 100),
	}
	st.Players.Black = ClientPlayer{
		ID:       g.black.ID,
		Color:    engine.ColorBlack.String(),
		TimeLeft: int(g.blackClock.GetTimeLeft().Milliseconds() / 100),
	}

	status, conclusion := g.engine.Status()
	if status == engine.StatusConcluded {
		resolve := conclusion.State.String()
		st.Resolve = &resolve
		st.IsCheck = conclusion.State == engine.Checkmate
		if conclusion.Winner != engine.ColorNone {
			winner := conclusion.Winner.String()
			st.Winner = &winner
		}
		return st
	}
	st.IsCheck = g.engine.State(g.toMove) == engine.Check
	return st
}

func (g *Game) RegisterConnection(playerID string, conn *websocket.Conn) error {
	g.mu.Lock()
	isAuthorized := g.isPlayerInGame(playerID) || g.canSpectate()
	g.mu.Unlock()

	if !isAuthorized {
		return errors.New("not authorized to join this game")
	}

	g.connections.mu.Lock()
	if _, exists := g.connections.connections[playerID]; exists {
		// Keep the healthy connection and reject the new one.
		g.connections.mu.Unlock()
		conn.WriteMessage(
			websocket.CloseMessage,
			websocket.FormatCloseMessage(
				websocket.CloseNormalClosure,
				"Connection already exists",
			),
		)
		conn.Close()
		return nil
	}
	g.connections.connections[playerID] = conn
	g.connections.mu.Unlock()

	go g.broadcastState()
	return nil
}

func (g *Game) UnregisterConnection(playerID string) {
	g.connections.mu.Lock()
	defer g.connections.mu.Unlock()

	delete(g.connections.connections, playerID)
}

func (g *Game) broadcastState() {
	g.mu.Lock()
	state := g.buildState()
	g.mu.Unlock()

	jsonGameState, err := json.Marshal(state)
	if err != nil {
		fmt.Println("Failed to marshal state to JSON", err)
		return
	}

	g.connections.mu.RLock()
	activeConnections := make(map[string]*websocket.Conn, len(g.connections.connections))
	for playerID, conn := range g.connections.connections {
		activeConnections[playerID] = conn
	}
	g.connections.mu.RUnlock()

	for playerID, conn := range activeConnections {
		if err := conn.WriteJSON(ws.Message{
			Type:    ws.MessageTypeGameState,
			Payload: json.RawMessage(jsonGameState),
		}); err != nil {
			fmt.Println("Failed to send state to player", playerID, err)
			g.connections.mu.Lock()
			delete(g.connections.connections, playerID)
			g.connections.mu.Unlock()
		}
	}
}
