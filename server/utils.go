package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/minaorangina/doubledeck"
	"github.com/minaorangina/doubledeck/deck"
)

func unknownGameIDMsg(unknownID string) string {
	return fmt.Sprintf("unknown game ID '%s'", unknownID)
}

// splitGamePath turns /game/{id}/{action} into its parts. action is empty
// for /game/{id}.
func splitGamePath(path string) (gameID, action string) {
	rest := strings.Trim(strings.TrimPrefix(path, "/game/"), "/")
	parts := strings.SplitN(rest, "/", 2)

	gameID = parts[0]
	if len(parts) == 2 {
		action = parts[1]
	}
	return gameID, action
}

func suitSymbols() []string {
	symbols := make([]string, 0, deck.NumSuits)
	for _, s := range deck.Suits {
		symbols = append(symbols, s.Symbol())
	}
	return symbols
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	bytes, err := json.Marshal(payload)
	if err != nil {
		log.Println(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(bytes)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorRes{Error: msg})
}

func writeEngineError(w http.ResponseWriter, gameID string, err error) {
	if errors.Is(err, doubledeck.ErrEngineStopped) {
		writeError(w, http.StatusNotFound, unknownGameIDMsg(gameID))
		return
	}
	log.Printf("game %s: %v", gameID, err)
	writeError(w, http.StatusInternalServerError, "internal error")
}

func writeParseError(err error, w http.ResponseWriter) {
	if err == io.EOF {
		writeError(w, http.StatusBadRequest, "Missing body")
		return
	}
	writeError(w, http.StatusBadRequest, fmt.Sprintf("could not parse body: %v", err))
}
