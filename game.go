package doubledeck

import (
	"errors"
	"fmt"

	"github.com/minaorangina/doubledeck/deck"
	"github.com/minaorangina/doubledeck/protocol"
)

var (
	ErrDrawPileEmpty   = errors.New("draw pile is empty")
	ErrNotEligible     = errors.New("card cannot move to a foundation")
	ErrCardNotPlayable = errors.New("card is not currently playable")
	ErrUnknownPile     = errors.New("unknown pile")
	ErrIndexOutOfRange = errors.New("card index out of range")
	ErrUnknownCommand  = errors.New("unknown command")
)

// Status is the outcome of the end-of-game check
type Status int

const (
	InProgress Status = iota
	Won
	Lost
)

var statusNames = []string{"in_progress", "won", "lost"}

func (s Status) String() string {
	if s < InProgress || s > Lost {
		return ""
	}
	return statusNames[s]
}

// State is everything on the table. Piles are indexed by their label,
// which is the rank printed above them. Active is nil until the first draw.
type State struct {
	Piles       [deck.NumRanks][]deck.Card
	Draw        []deck.Card
	Foundations Foundations
	Active      *deck.Rank
}

// Action is a single user action against a State
type Action struct {
	Cmd   protocol.Cmd
	Pile  deck.Rank
	Index int
}

// DrawAction pops the draw pile
func DrawAction() Action {
	return Action{Cmd: protocol.Draw}
}

// MoveAction moves the card at index in pile to its foundation
func MoveAction(pile deck.Rank, index int) Action {
	return Action{Cmd: protocol.Move, Pile: pile, Index: index}
}

// NewGame shuffles two decks and deals them
func NewGame(rng deck.RNG) State {
	d := deck.NewDouble()
	d.Shuffle(rng)
	return Deal(d)
}

// Apply returns the state that follows a. The input state is never modified;
// when an error is returned the returned state is s unchanged.
func Apply(s State, a Action) (State, error) {
	switch a.Cmd {
	case protocol.Draw:
		return draw(s)
	case protocol.Move:
		return move(s, a.Pile, a.Index)
	default:
		return s, fmt.Errorf("%w: %s", ErrUnknownCommand, a.Cmd)
	}
}

func draw(s State) (State, error) {
	if len(s.Draw) == 0 {
		return s, ErrDrawPileEmpty
	}

	next := s.Clone()
	card := next.Draw[len(next.Draw)-1]
	next.Draw = next.Draw[:len(next.Draw)-1]

	label := card.Rank
	next.Active = &label
	next.Piles[label] = append(next.Piles[label], card)

	return next, nil
}

func move(s State, label deck.Rank, index int) (State, error) {
	if !label.Valid() {
		return s, fmt.Errorf("%w: %d", ErrUnknownPile, label)
	}

	pile := s.Piles[label]
	if index < 0 || index >= len(pile) {
		return s, fmt.Errorf("%w: %s[%d]", ErrIndexOutOfRange, label.Label(), index)
	}
	if !s.playable(label, index) {
		return s, fmt.Errorf("%w: %s[%d]", ErrCardNotPlayable, label.Label(), index)
	}

	next := s.Clone()
	card := pile[index]
	if _, err := next.Foundations.Apply(card); err != nil {
		return s, err
	}
	next.Piles[label] = removeCard(next.Piles[label], index)

	return next, nil
}

// Clone returns a deep copy of the state
func (s State) Clone() State {
	c := State{
		Draw:        cloneCards(s.Draw),
		Foundations: s.Foundations.clone(),
	}
	for i, p := range s.Piles {
		c.Piles[i] = cloneCards(p)
	}
	if s.Active != nil {
		active := *s.Active
		c.Active = &active
	}
	return c
}

// CardCount is the number of cards in piles, the draw pile and foundations
func (s State) CardCount() int {
	n := len(s.Draw) + s.Foundations.CardCount()
	for _, p := range s.Piles {
		n += len(p)
	}
	return n
}

// AllCards lists every card on the table, piles first
func (s State) AllCards() deck.Deck {
	all := make(deck.Deck, 0, s.CardCount())
	for _, p := range s.Piles {
		all = append(all, p...)
	}
	all = append(all, s.Draw...)
	for _, f := range s.Foundations {
		all = append(all, f.Up...)
		all = append(all, f.Down...)
	}
	return all
}
