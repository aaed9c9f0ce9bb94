package model

import (
	"github.com/gofiber/websocket/v2"

	"github.com/Tyler-Burley/Chess-Terminal/internal/engine"
)

type Player struct {
	ID       string
	Color    engine.Color
	Conn     *websocket.Conn
	TimeLeft int
}

// ClientPlayer is the wire form of a seat.
type ClientPlayer struct {
	ID       string `json:"name"`
	Color    string `json:"color"`
	TimeLeft int    `json:"timeLeft"`
}
