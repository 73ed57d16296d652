package doubledeck

import (
	"errors"
	"log"
	"sync"
	"time"

	"github.com/minaorangina/doubledeck/deck"
	"github.com/minaorangina/doubledeck/protocol"
)

var (
	ErrEngineStopped = errors.New("game engine has stopped")
	ErrNoCards       = errors.New("game has no cards")
)

// GameEngine owns the state of one game. Actions are applied one at a time,
// in the order they arrive, and every change is broadcast to the Players
// watching the game.
type GameEngine interface {
	ID() string
	Do(Action) (protocol.OutboundMessage, error)
	Snapshot() (protocol.OutboundMessage, error)
	AddPlayer(Player) error
	RemovePlayer(playerID string)
	Receive(protocol.InboundMessage) error
	Stop()
}

type GameEngineOpts struct {
	GameID string
	RNG    deck.RNG
	State  *State // a fresh game is dealt when nil

	// OnIdle is called once, on its own goroutine, when the last Player
	// leaves or when nobody is watching and nothing has happened for
	// IdleTimeout. A zero IdleTimeout only watches for the last Player.
	OnIdle      func(gameID string)
	IdleTimeout time.Duration
}

type request struct {
	action Action
	reply  chan response
}

type response struct {
	msg protocol.OutboundMessage
	err error
}

type gameEngine struct {
	id           string
	rng          deck.RNG
	state        State
	players      map[string]Player
	registerCh   chan Player
	unregisterCh chan string
	inboundCh    chan request
	quit         chan struct{}
	done         chan struct{}
	stopOnce     sync.Once

	onIdle      func(gameID string)
	idleTimeout time.Duration
	idled       bool
}

// NewGameEngine constructs a GameEngine and starts it listening
func NewGameEngine(opts GameEngineOpts) (*gameEngine, error) {
	if opts.GameID == "" {
		opts.GameID = NewID()
	}
	if opts.RNG == nil {
		opts.RNG = deck.NewRandomRNG()
	}

	var state State
	if opts.State != nil {
		if opts.State.CardCount() == 0 {
			return nil, ErrNoCards
		}
		state = opts.State.Clone()
	} else {
		state = NewGame(opts.RNG)
	}

	engine := &gameEngine{
		id:           opts.GameID,
		rng:          opts.RNG,
		state:        state,
		players:      map[string]Player{},
		registerCh:   make(chan Player),
		unregisterCh: make(chan string),
		inboundCh:    make(chan request),
		quit:         make(chan struct{}),
		done:         make(chan struct{}),
		onIdle:       opts.OnIdle,
		idleTimeout:  opts.IdleTimeout,
	}

	go engine.listen()

	return engine, nil
}

func (ge *gameEngine) ID() string {
	return ge.id
}

// Do applies a and returns the resulting snapshot. Restart deals a new game
// and State just reads the current one.
func (ge *gameEngine) Do(a Action) (protocol.OutboundMessage, error) {
	reply := make(chan response, 1)

	select {
	case ge.inboundCh <- request{action: a, reply: reply}:
	case <-ge.done:
		return protocol.OutboundMessage{}, ErrEngineStopped
	}

	res := <-reply
	return res.msg, res.err
}

func (ge *gameEngine) Snapshot() (protocol.OutboundMessage, error) {
	return ge.Do(Action{Cmd: protocol.State})
}

// AddPlayer subscribes p to the game. p is sent the current state straight away.
func (ge *gameEngine) AddPlayer(p Player) error {
	select {
	case ge.registerCh <- p:
		return nil
	case <-ge.done:
		return ErrEngineStopped
	}
}

func (ge *gameEngine) RemovePlayer(playerID string) {
	select {
	case ge.unregisterCh <- playerID:
	case <-ge.done:
	}
}

// Receive handles a message from a Player. Moves that are not allowed are
// dropped without a word; the only failure players hear about is an empty
// draw pile, which is broadcast. The returned error is for messages that
// could not be understood at all, and is the sender's to deal with.
func (ge *gameEngine) Receive(msg protocol.InboundMessage) error {
	action, err := ActionFromMessage(msg)
	if err != nil {
		return err
	}

	if _, err := ge.Do(action); errors.Is(err, ErrEngineStopped) {
		log.Printf("game %s: %v", ge.id, err)
	}
	return nil
}

// Stop ends the game and disconnects every Player
func (ge *gameEngine) Stop() {
	ge.stopOnce.Do(func() {
		close(ge.quit)
	})
	<-ge.done
}

func (ge *gameEngine) listen() {
	defer close(ge.done)

	var timer *time.Timer
	var idle <-chan time.Time
	if ge.idleTimeout > 0 {
		timer = time.NewTimer(ge.idleTimeout)
		defer timer.Stop()
		idle = timer.C
	}
	touch := func() {
		if timer == nil {
			return
		}
		if !timer.Stop() {
			select {
			case <-timer.C:
			default:
			}
		}
		timer.Reset(ge.idleTimeout)
	}

	for {
		select {
		case p := <-ge.registerCh:
			ge.players[p.ID()] = p
			ge.send(p, BuildStateMessage(ge.id, protocol.State, ge.state))
			touch()

		case id := <-ge.unregisterCh:
			ge.drop(id)

		case req := <-ge.inboundCh:
			msg, err := ge.handle(req.action)
			req.reply <- response{msg: msg, err: err}
			touch()

		case <-idle:
			if len(ge.players) == 0 {
				ge.idle()
			} else {
				timer.Reset(ge.idleTimeout)
			}

		case <-ge.quit:
			ge.idled = true
			for id := range ge.players {
				ge.drop(id)
			}
			return
		}
	}
}

func (ge *gameEngine) handle(a Action) (protocol.OutboundMessage, error) {
	switch a.Cmd {
	case protocol.State:
		return BuildStateMessage(ge.id, protocol.State, ge.state), nil

	case protocol.Restart:
		ge.state = NewGame(ge.rng)
		msg := BuildStateMessage(ge.id, protocol.Restart, ge.state)
		ge.broadcast(msg)
		return msg, nil
	}

	next, err := Apply(ge.state, a)
	if errors.Is(err, ErrDrawPileEmpty) {
		// the status in the message doubles as the end-of-game re-check
		msg := buildDrawEmptyMessage(ge.id, ge.state)
		ge.broadcast(msg)
		return msg, err
	}
	if err != nil {
		return BuildStateMessage(ge.id, protocol.State, ge.state), err
	}

	ge.state = next
	msg := BuildStateMessage(ge.id, a.Cmd, ge.state)
	ge.broadcast(msg)
	return msg, nil
}

func (ge *gameEngine) broadcast(msg protocol.OutboundMessage) {
	for _, p := range ge.players {
		ge.send(p, msg)
	}
}

func (ge *gameEngine) send(p Player, msg protocol.OutboundMessage) {
	if err := p.Send(msg); err != nil {
		log.Printf("game %s: dropping player %s: %v", ge.id, p.ID(), err)
		ge.drop(p.ID())
	}
}

// drop closes and forgets a Player. Losing the last one makes the game idle.
func (ge *gameEngine) drop(id string) {
	p, ok := ge.players[id]
	if !ok {
		return
	}
	delete(ge.players, id)
	if err := p.Close(); err != nil {
		log.Printf("game %s: closing player %s: %v", ge.id, id, err)
	}

	if len(ge.players) == 0 {
		ge.idle()
	}
}

func (ge *gameEngine) idle() {
	if ge.onIdle == nil || ge.idled {
		return
	}
	ge.idled = true
	go ge.onIdle(ge.id)
}
