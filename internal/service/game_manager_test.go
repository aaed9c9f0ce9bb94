package service

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/Tyler-Burley/Chess-Terminal/internal/model"
)

func TestCreateAndJoinGame(t *testing.T) {
	gm := NewGameManager()
	if err := gm.CreateGame("g1"); err != nil {
		t.Fatalf("CreateGame: %v", err)
	}
	if err := gm.CreateGame("g1"); err == nil {
		t.Errorf("duplicate game id accepted")
	}

	color, err := gm.AddPlayerToGame("g1", "alice")
	if err != nil || color != "white" {
		t.Fatalf("first join = %q, %v; want white", color, err)
	}
	color, err = gm.AddPlayerToGame("g1", "bob")
	if err != nil || color != "black" {
		t.Fatalf("second join = %q, %v; want black", color, err)
	}
	if _, err := gm.AddPlayerToGame("missing", "carol"); err == nil {
		t.Errorf("join of unknown game accepted")
	}
}

func TestMakeMoveThroughManager(t *testing.T) {
	gm := NewGameManager()
	if err := gm.CreateGame("g1"); err != nil {
		t.Fatalf("CreateGame: %v", err)
	}
	if _, err := gm.AddPlayerToGame("g1", "alice"); err != nil {
		t.Fatalf("AddPlayerToGame: %v", err)
	}
	if _, err := gm.AddPlayerToGame("g1", "bob"); err != nil {
		t.Fatalf("AddPlayerToGame: %v", err)
	}

	if err := gm.MakeMove("missing", "alice", model.Move{From: "e2", To: "e4"}); err == nil {
		t.Errorf("move in unknown game accepted")
	}
	if err := gm.MakeMove("g1", "alice", model.Move{From: "e2", To: "e4"}); err != nil {
		t.Fatalf("MakeMove: %v", err)
	}

	state, err := gm.GetGameState("g1")
	if err != nil {
		t.Fatalf("GetGameState: %v", err)
	}
	if state.ToMove != "black" {
		t.Errorf("toMove = %q, want black", state.ToMove)
	}
	if _, err := gm.GetGameState("missing"); err == nil {
		t.Errorf("state of unknown game returned")
	}
}

func TestMatchmakingPairsPlayers(t *testing.T) {
	gm := NewGameManager()

	chans := map[string]chan string{
		"alice": make(chan string, 1),
		"bob":   make(chan string, 1),
	}
	for _, id := range []string{"alice", "bob"} {
		if err := gm.RegisterMatchmakingChannel(id, chans[id]); err != nil {
			t.Fatalf("RegisterMatchmakingChannel(%s): %v", id, err)
		}
	}
	if err := gm.JoinMatchmaking("alice"); err != nil {
		t.Fatalf("JoinMatchmaking(alice): %v", err)
	}
	if err := gm.JoinMatchmaking("alice"); err == nil {
		t.Errorf("duplicate matchmaking join accepted")
	}
	if err := gm.JoinMatchmaking("bob"); err != nil {
		t.Fatalf("JoinMatchmaking(bob): %v", err)
	}

	events := make(map[string]model.MatchFoundEvent)
	for id, ch := range chans {
		select {
		case payload := <-ch:
			var ev model.MatchFoundEvent
			if err := json.Unmarshal([]byte(payload), &ev); err != nil {
				t.Fatalf("bad match event for %s: %v", id, err)
			}
			events[id] = ev
		case <-time.After(3 * time.Second):
			t.Fatalf("no match event for %s", id)
		}
	}

	if events["alice"].GameID != events["bob"].GameID {
		t.Errorf("players matched into different games: %+v", events)
	}
	if events["alice"].Color == events["bob"].Color {
		t.Errorf("both players got color %q", events["alice"].Color)
	}
	if _, err := gm.GetGameState(events["alice"].GameID); err != nil {
		t.Errorf("matched game not retrievable: %v", err)
	}
}
