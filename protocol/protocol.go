package protocol

import (
	"fmt"

	"github.com/minaorangina/doubledeck/deck"
)

// InboundMessage is a message from a Player to the GameEngine
type InboundMessage struct {
	GameID  string `json:"gameID,omitempty"`
	Command Cmd    `json:"command"`
	Pile    string `json:"pile,omitempty"`
	Index   int    `json:"index,omitempty"`
}

// OutboundMessage is a snapshot of a game sent from the GameEngine to its Players
type OutboundMessage struct {
	GameID      string       `json:"gameID"`
	Command     Cmd          `json:"command"`
	Piles       []Pile       `json:"piles"`
	Draw        int          `json:"draw"`
	Foundations []Foundation `json:"foundations"`
	Active      string       `json:"active"`
	Status      string       `json:"status"`
	Message     string       `json:"message,omitempty"`
	Error       string       `json:"error,omitempty"`
}

// Pile is a labelled pile as a renderer sees it.
// Playable holds the indices of the cards that may be moved.
type Pile struct {
	Label    string      `json:"label"`
	Cards    []deck.Card `json:"cards"`
	Playable []int       `json:"playable"`
}

// Foundation holds both runs for a single suit
type Foundation struct {
	Suit deck.Suit   `json:"suit"`
	Up   []deck.Card `json:"up"`
	Down []deck.Card `json:"down"`
}

// Cmd represents a command
type Cmd int

const (
	Null Cmd = iota
	NewGame
	State
	Draw
	Move
	Restart
	DrawEmpty
	Error
)

var CmdNames = map[Cmd]string{
	Null:      "Null",
	NewGame:   "NewGame",
	State:     "State",
	Draw:      "Draw",
	Move:      "Move",
	Restart:   "Restart",
	DrawEmpty: "DrawEmpty",
	Error:     "Error",
}

var NameToCmd = map[string]Cmd{
	"Null":      Null,
	"NewGame":   NewGame,
	"State":     State,
	"Draw":      Draw,
	"Move":      Move,
	"Restart":   Restart,
	"DrawEmpty": DrawEmpty,
	"Error":     Error,
}

func (c Cmd) String() string {
	return CmdNames[c]
}

// MarshalText sends commands over the wire by name
func (c Cmd) MarshalText() ([]byte, error) {
	name, ok := CmdNames[c]
	if !ok {
		return nil, fmt.Errorf("unknown command %d", int(c))
	}
	return []byte(name), nil
}

func (c *Cmd) UnmarshalText(text []byte) error {
	cmd, ok := NameToCmd[string(text)]
	if !ok {
		return fmt.Errorf("unknown command %q", string(text))
	}
	*c = cmd
	return nil
}
