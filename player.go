package doubledeck

import (
	"encoding/json"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/minaorangina/doubledeck/protocol"
	uuid "github.com/satori/go.uuid"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer.
	maxMessageSize = 512

	// Snapshots queued for a slow connection before it is dropped.
	sendBuffer = 16
)

var (
	ErrPlayerClosed = errors.New("player connection closed")
	ErrSlowPlayer   = errors.New("player is not keeping up")
)

// NewID constructs a game or player ID
func NewID() string {
	return uuid.NewV4().String()
}

// Player is anything that renders a game: a browser tab or a terminal
type Player interface {
	ID() string
	Send(msg protocol.OutboundMessage) error
	Close() error
}

// WSPlayer is a browser connected over a websocket
type WSPlayer struct {
	id     string
	conn   *websocket.Conn
	engine GameEngine
	send   chan protocol.OutboundMessage

	mu     sync.Mutex
	closed bool
}

// NewWSPlayer starts pumping messages between ws and engine. The caller
// still has to register the player with engine.AddPlayer.
func NewWSPlayer(id string, ws *websocket.Conn, engine GameEngine) *WSPlayer {
	player := &WSPlayer{
		id:     id,
		conn:   ws,
		engine: engine,
		send:   make(chan protocol.OutboundMessage, sendBuffer),
	}
	go player.writePump()
	go player.readPump()
	return player
}

func (p *WSPlayer) ID() string {
	return p.id
}

// Send queues msg for the connection without blocking
func (p *WSPlayer) Send(msg protocol.OutboundMessage) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return ErrPlayerClosed
	}

	select {
	case p.send <- msg:
		return nil
	default:
		return ErrSlowPlayer
	}
}

// Close stops the write pump, which closes the connection
func (p *WSPlayer) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.closed {
		p.closed = true
		close(p.send)
	}
	return nil
}

func (p *WSPlayer) readPump() {
	defer func() {
		p.engine.RemovePlayer(p.id)
		p.conn.Close()
	}()

	p.conn.SetReadLimit(maxMessageSize)
	p.conn.SetReadDeadline(time.Now().Add(pongWait))
	p.conn.SetPongHandler(func(string) error {
		p.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, data, err := p.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("player %s: %v", p.id, err)
			}
			return
		}

		var msg protocol.InboundMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			log.Printf("player %s: bad message: %v", p.id, err)
			p.Send(buildErrorMessage(p.engine.ID(), err))
			continue
		}
		if err := p.engine.Receive(msg); err != nil {
			log.Printf("player %s: %v", p.id, err)
			p.Send(buildErrorMessage(p.engine.ID(), err))
		}
	}
}

func (p *WSPlayer) writePump() {
	ticker := time.NewTicker(pingPeriod)

	defer func() {
		ticker.Stop()
		p.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-p.send:
			p.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// The engine closed the channel.
				p.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := p.conn.WriteJSON(msg); err != nil {
				return
			}

		case <-ticker.C:
			p.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := p.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
