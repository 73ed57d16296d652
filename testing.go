package doubledeck

import (
	"sync"

	"github.com/minaorangina/doubledeck/deck"
	"github.com/minaorangina/doubledeck/protocol"
)

// SpyPlayer records every message it is sent
type SpyPlayer struct {
	id       string
	mu       sync.Mutex
	messages []protocol.OutboundMessage
	received chan protocol.OutboundMessage
	closed   bool
	SendErr  error
}

func NewSpyPlayer(id string) *SpyPlayer {
	return &SpyPlayer{id: id, received: make(chan protocol.OutboundMessage, 64)}
}

func (p *SpyPlayer) ID() string {
	return p.id
}

func (p *SpyPlayer) Send(msg protocol.OutboundMessage) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.SendErr != nil {
		return p.SendErr
	}
	p.messages = append(p.messages, msg)
	select {
	case p.received <- msg:
	default:
	}
	return nil
}

func (p *SpyPlayer) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closed = true
	return nil
}

// Received delivers messages in the order they were sent
func (p *SpyPlayer) Received() <-chan protocol.OutboundMessage {
	return p.received
}

func (p *SpyPlayer) Messages() []protocol.OutboundMessage {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]protocol.OutboundMessage{}, p.messages...)
}

func (p *SpyPlayer) Closed() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.closed
}

// NewTestGameEngine builds an engine around a fixed state
func NewTestGameEngine(gameID string, s State) GameEngine {
	ge, err := NewGameEngine(GameEngineOpts{GameID: gameID, State: &s, RNG: deck.NewRNG(1)})
	if err != nil {
		panic(err)
	}
	return ge
}

// AlmostWonState has every card on a foundation except the King of Spades,
// which sits alone on the K pile. Moving it wins the game.
func AlmostWonState() State {
	s := State{}
	for _, suit := range deck.Suits {
		for _, r := range deck.Ranks {
			s.Foundations[suit].Up = append(s.Foundations[suit].Up, deck.Card{Rank: r, Suit: suit})
		}
		for i := len(deck.Ranks) - 1; i >= 0; i-- {
			s.Foundations[suit].Down = append(s.Foundations[suit].Down, deck.Card{Rank: deck.Ranks[i], Suit: suit})
		}
	}

	ks := deck.Card{Rank: deck.King, Suit: deck.Spades}
	s.Foundations[deck.Spades].Up = s.Foundations[deck.Spades].Up[:deck.NumRanks-1]
	s.Piles[deck.King] = []deck.Card{ks}
	return s
}
