package server

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/websocket"
	"github.com/minaorangina/doubledeck"
	"github.com/minaorangina/doubledeck/deck"
	"github.com/minaorangina/doubledeck/protocol"
)

//go:embed static
var staticFiles embed.FS

const homepage = "static/index.html"

// tableLayout is the order the page lays the piles out in. The draw
// button sits in the DRAW slot between 10 and J.
var tableLayout = []string{"A", "2", "3", "4", "5", "6", "7", "8", "9", "10", drawSlot, "J", "Q", "K"}

const drawSlot = "DRAW"

type NewGameReq struct {
	Seed *int64 `json:"seed,omitempty"`
}

type MoveReq struct {
	Pile  string `json:"pile"`
	Index int    `json:"index"`
}

type GameRes struct {
	GameID string                   `json:"game_id"`
	State  protocol.OutboundMessage `json:"state"`
	Error  string                   `json:"error,omitempty"`
}

type ErrorRes struct {
	Error string `json:"error"`
}

// ServerOpts configures a GameServer
type ServerOpts struct {
	AllowedOrigins []string
	// Seed fixes every deal that doesn't ask for its own seed
	Seed *int64
	// IdleTimeout frees a game nobody is connected to after this long.
	// Games are always freed when their last websocket closes.
	IdleTimeout time.Duration
	// AccessLog receives one line per request. Defaults to stdout.
	AccessLog io.Writer
}

// GameServer serves the game page and the API behind it
type GameServer struct {
	store    doubledeck.GameStore
	opts     ServerOpts
	page     *template.Template
	upgrader websocket.Upgrader
	http.Server
}

// NewServer creates a new GameServer
func NewServer(store doubledeck.GameStore, opts ServerOpts) *GameServer {
	if len(opts.AllowedOrigins) == 0 {
		opts.AllowedOrigins = []string{"*"}
	}
	if opts.AccessLog == nil {
		opts.AccessLog = os.Stdout
	}

	s := &GameServer{
		store: store,
		opts:  opts,
		page:  template.Must(template.ParseFS(staticFiles, homepage)),
	}
	s.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     s.checkOrigin,
	}

	assets, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(err)
	}

	router := http.NewServeMux()
	router.Handle("/", http.HandlerFunc(s.HandleHome))
	router.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.FS(assets))))
	router.Handle("/healthz", http.HandlerFunc(s.HandleHealthz))
	router.Handle("/new", http.HandlerFunc(s.HandleNewGame))
	router.Handle("/game/", http.HandlerFunc(s.HandleGame))
	router.Handle("/ws", http.HandlerFunc(s.HandleWS))

	cors := handlers.CORS(
		handlers.AllowedOrigins(opts.AllowedOrigins),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodDelete}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
	)

	s.Handler = handlers.RecoveryHandler(handlers.PrintRecoveryStack(true))(
		handlers.CombinedLoggingHandler(opts.AccessLog, cors(router)),
	)

	return s
}

// ServeHTTP serves http
func (g *GameServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	g.Handler.ServeHTTP(w, r)
}

type slot struct {
	Label string
	Draw  bool
}

func (g *GameServer) HandleHome(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	slots := make([]slot, 0, len(tableLayout))
	for _, label := range tableLayout {
		slots = append(slots, slot{Label: label, Draw: label == drawSlot})
	}

	data := struct {
		Slots []slot
		Suits []string
	}{
		Slots: slots,
		Suits: suitSymbols(),
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := g.page.Execute(w, data); err != nil {
		log.Printf("render %s: %v", homepage, err)
	}
}

func (g *GameServer) HandleHealthz(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("OK"))
}

// HandleNewGame deals a new game
func (g *GameServer) HandleNewGame(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	var data NewGameReq
	err := json.NewDecoder(r.Body).Decode(&data)
	defer r.Body.Close()
	if err != nil && err != io.EOF {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("could not parse body: %v", err))
		return
	}

	game, err := doubledeck.NewGameEngine(doubledeck.GameEngineOpts{
		GameID:      doubledeck.NewID(),
		RNG:         g.rng(data.Seed),
		OnIdle:      g.removeIdleGame,
		IdleTimeout: g.opts.IdleTimeout,
	})
	if err != nil {
		log.Println(err.Error())
		writeError(w, http.StatusInternalServerError, "could not create game")
		return
	}

	if err := g.store.AddGame(game); err != nil {
		game.Stop()
		log.Println(err.Error())
		if errors.Is(err, doubledeck.ErrStoreFull) {
			writeError(w, http.StatusServiceUnavailable, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "could not create game")
		return
	}

	msg, err := game.Snapshot()
	if err != nil {
		log.Println(err.Error())
		writeError(w, http.StatusInternalServerError, "could not read game")
		return
	}

	log.Printf("new game %s", game.ID())
	writeJSON(w, http.StatusCreated, GameRes{GameID: game.ID(), State: msg})
}

// HandleGame routes /game/{id} and /game/{id}/{action}
func (g *GameServer) HandleGame(w http.ResponseWriter, r *http.Request) {
	gameID, action := splitGamePath(r.URL.Path)
	if gameID == "" {
		writeError(w, http.StatusBadRequest, "missing game ID")
		return
	}

	game, ok := g.store.FindGame(gameID)
	if !ok {
		writeError(w, http.StatusNotFound, unknownGameIDMsg(gameID))
		return
	}

	switch {
	case action == "" && r.Method == http.MethodGet:
		g.handleSnapshot(w, game)
	case action == "" && r.Method == http.MethodDelete:
		g.handleDelete(w, gameID)
	case action == "draw" && r.Method == http.MethodPost:
		g.handleDraw(w, game)
	case action == "move" && r.Method == http.MethodPost:
		g.handleMove(w, r, game)
	case action == "restart" && r.Method == http.MethodPost:
		g.handleRestart(w, game)
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func (g *GameServer) handleSnapshot(w http.ResponseWriter, game doubledeck.GameEngine) {
	msg, err := game.Snapshot()
	if err != nil {
		writeEngineError(w, game.ID(), err)
		return
	}
	writeJSON(w, http.StatusOK, GameRes{GameID: game.ID(), State: msg})
}

func (g *GameServer) handleDelete(w http.ResponseWriter, gameID string) {
	if err := g.store.RemoveGame(gameID); err != nil {
		writeError(w, http.StatusNotFound, unknownGameIDMsg(gameID))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (g *GameServer) handleDraw(w http.ResponseWriter, game doubledeck.GameEngine) {
	msg, err := game.Do(doubledeck.DrawAction())
	if errors.Is(err, doubledeck.ErrDrawPileEmpty) {
		writeJSON(w, http.StatusConflict, GameRes{GameID: game.ID(), State: msg, Error: err.Error()})
		return
	}
	if err != nil {
		writeEngineError(w, game.ID(), err)
		return
	}
	writeJSON(w, http.StatusOK, GameRes{GameID: game.ID(), State: msg})
}

// handleMove always answers with the current table. A move the rules don't
// allow is not an error as far as the player is concerned; nothing happens.
func (g *GameServer) handleMove(w http.ResponseWriter, r *http.Request, game doubledeck.GameEngine) {
	var data MoveReq
	err := json.NewDecoder(r.Body).Decode(&data)
	defer r.Body.Close()
	if err != nil {
		writeParseError(err, w)
		return
	}

	action, err := doubledeck.ActionFromMessage(protocol.InboundMessage{
		Command: protocol.Move,
		Pile:    data.Pile,
		Index:   data.Index,
	})
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	msg, err := game.Do(action)
	if errors.Is(err, doubledeck.ErrEngineStopped) {
		writeEngineError(w, game.ID(), err)
		return
	}
	writeJSON(w, http.StatusOK, GameRes{GameID: game.ID(), State: msg})
}

func (g *GameServer) handleRestart(w http.ResponseWriter, game doubledeck.GameEngine) {
	msg, err := game.Do(doubledeck.Action{Cmd: protocol.Restart})
	if err != nil {
		writeEngineError(w, game.ID(), err)
		return
	}
	writeJSON(w, http.StatusOK, GameRes{GameID: game.ID(), State: msg})
}

// HandleWS connects a browser to a game's snapshots
func (g *GameServer) HandleWS(w http.ResponseWriter, r *http.Request) {
	gameID := r.URL.Query().Get("game_id")
	if gameID == "" {
		writeError(w, http.StatusBadRequest, "missing game ID")
		return
	}

	game, ok := g.store.FindGame(gameID)
	if !ok {
		writeError(w, http.StatusNotFound, unknownGameIDMsg(gameID))
		return
	}

	conn, err := g.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// the upgrader has already replied
		log.Println(err)
		return
	}

	player := doubledeck.NewWSPlayer(doubledeck.NewID(), conn, game)
	if err := game.AddPlayer(player); err != nil {
		log.Printf("could not add player to game %s: %v", gameID, err)
		player.Close()
	}
}

func (g *GameServer) rng(seed *int64) deck.RNG {
	if seed != nil {
		return deck.NewRNG(*seed)
	}
	if g.opts.Seed != nil {
		return deck.NewRNG(*g.opts.Seed)
	}
	return deck.NewRandomRNG()
}

func (g *GameServer) removeIdleGame(gameID string) {
	if err := g.store.RemoveGame(gameID); err != nil {
		// already deleted
		return
	}
	log.Printf("game %s idle, removed", gameID)
}

func (g *GameServer) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	for _, allowed := range g.opts.AllowedOrigins {
		if allowed == "*" || strings.EqualFold(allowed, origin) {
			return true
		}
	}
	return false
}
