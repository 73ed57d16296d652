package doubledeck

import (
	"github.com/minaorangina/doubledeck/deck"
	"github.com/minaorangina/doubledeck/protocol"
)

// BuildStateMessage projects s into the snapshot renderers work from
func BuildStateMessage(gameID string, cmd protocol.Cmd, s State) protocol.OutboundMessage {
	msg := protocol.OutboundMessage{
		GameID:      gameID,
		Command:     cmd,
		Piles:       make([]protocol.Pile, 0, deck.NumRanks),
		Draw:        len(s.Draw),
		Foundations: make([]protocol.Foundation, 0, deck.NumSuits),
		Status:      s.Status().String(),
	}

	for _, label := range deck.Ranks {
		msg.Piles = append(msg.Piles, protocol.Pile{
			Label:    label.Label(),
			Cards:    nonNil(cloneCards(s.Piles[label])),
			Playable: s.Playable(label),
		})
	}

	for _, suit := range deck.Suits {
		f := s.Foundations[suit]
		msg.Foundations = append(msg.Foundations, protocol.Foundation{
			Suit: suit,
			Up:   nonNil(cloneCards(f.Up)),
			Down: nonNil(cloneCards(f.Down)),
		})
	}

	if s.Active != nil {
		msg.Active = s.Active.Label()
	}

	switch s.Status() {
	case Won:
		msg.Message = wonText
	case Lost:
		msg.Message = lostText
	}

	return msg
}

func buildDrawEmptyMessage(gameID string, s State) protocol.OutboundMessage {
	msg := BuildStateMessage(gameID, protocol.DrawEmpty, s)
	msg.Error = ErrDrawPileEmpty.Error()
	return msg
}

// buildErrorMessage answers a message that could not be understood. It
// carries no table: nothing changed.
func buildErrorMessage(gameID string, err error) protocol.OutboundMessage {
	return protocol.OutboundMessage{
		GameID:  gameID,
		Command: protocol.Error,
		Error:   err.Error(),
	}
}

const (
	wonText  = "Congratulations! You have won by completing all foundations!"
	lostText = "Game over! No valid moves left and the draw pile is empty."
)
