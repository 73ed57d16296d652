package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/minaorangina/doubledeck"
	utils "github.com/minaorangina/doubledeck/internal"
)

func newTestServer(store doubledeck.GameStore) *GameServer {
	return NewServer(store, ServerOpts{AccessLog: io.Discard})
}

func newServerWithGame(t *testing.T, gameID string, s doubledeck.State) (*GameServer, doubledeck.GameEngine) {
	t.Helper()

	game := doubledeck.NewTestGameEngine(gameID, s)
	store := doubledeck.NewInMemoryGameStore(0)
	utils.AssertNoError(t, store.AddGame(game))
	t.Cleanup(game.Stop)

	return newTestServer(store), game
}

func mustMakeJson(t *testing.T, input interface{}) []byte {
	t.Helper()

	data, err := json.Marshal(input)
	utils.AssertNoError(t, err)

	return data
}

func newCreateGameRequest(data []byte) *http.Request {
	request, _ := http.NewRequest(http.MethodPost, "/new", bytes.NewBuffer(data))
	return request
}

func newGetGameRequest(gameID string) *http.Request {
	request, _ := http.NewRequest(http.MethodGet, "/game/"+gameID, nil)
	return request
}

func newGameActionRequest(gameID, action string, data []byte) *http.Request {
	request, _ := http.NewRequest(http.MethodPost, "/game/"+gameID+"/"+action, bytes.NewBuffer(data))
	return request
}

// ASSERTIONS

func assertStatus(t *testing.T, got, want int) {
	t.Helper()
	if got != want {
		t.Errorf("got status %d, want %d", got, want)
	}
}

func decodeGameResponse(t *testing.T, body *bytes.Buffer) GameRes {
	t.Helper()

	var got GameRes
	err := json.Unmarshal(body.Bytes(), &got)
	if err != nil {
		t.Fatalf("Could not unmarshal json: %s", err.Error())
	}
	return got
}
