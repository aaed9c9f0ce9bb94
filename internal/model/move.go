package model

// Move is the wire form of a move request: two-character algebraic squares,
// parsed and validated by the engine.
type Move struct {
	From string `json:"from"`
	To   string `json:"to"`
}
