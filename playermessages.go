package doubledeck

import (
	"fmt"

	"github.com/minaorangina/doubledeck/deck"
	"github.com/minaorangina/doubledeck/protocol"
)

// ActionFromMessage turns a message from a Player into an Action
func ActionFromMessage(msg protocol.InboundMessage) (Action, error) {
	switch msg.Command {
	case protocol.Move:
		label, err := deck.ParseRank(msg.Pile)
		if err != nil {
			return Action{}, fmt.Errorf("%w: %q", ErrUnknownPile, msg.Pile)
		}
		return MoveAction(label, msg.Index), nil

	case protocol.Draw, protocol.Restart, protocol.State:
		return Action{Cmd: msg.Command}, nil

	case protocol.NewGame:
		// a new game keeps the session and its players
		return Action{Cmd: protocol.Restart}, nil
	}

	return Action{}, fmt.Errorf("%w: %s", ErrUnknownCommand, msg.Command)
}
