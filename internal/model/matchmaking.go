package model

// MatchFoundEvent tells a queued player which game they were paired into and
// which side they play.
type MatchFoundEvent struct {
	GameID string `json:"gameId"`
	Color  string `json:"color"`
}
