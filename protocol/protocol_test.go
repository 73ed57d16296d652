package protocol

import (
	"encoding/json"
	"testing"

	"github.com/minaorangina/doubledeck/deck"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCmdNames(t *testing.T) {
	require.Equal(t, len(CmdNames), len(NameToCmd))
	for cmd, name := range CmdNames {
		assert.Equal(t, cmd, NameToCmd[name])
		assert.Equal(t, name, cmd.String())
	}
}

func TestInboundMessage(t *testing.T) {
	t.Run("decodes a move", func(t *testing.T) {
		var msg InboundMessage
		err := json.Unmarshal([]byte(`{"command":"Move","pile":"10","index":3}`), &msg)
		require.NoError(t, err)

		assert.Equal(t, Move, msg.Command)
		assert.Equal(t, "10", msg.Pile)
		assert.Equal(t, 3, msg.Index)
	})

	t.Run("rejects unknown commands", func(t *testing.T) {
		var msg InboundMessage
		err := json.Unmarshal([]byte(`{"command":"Undo"}`), &msg)
		assert.Error(t, err)
	})
}

func TestOutboundMessage(t *testing.T) {
	msg := OutboundMessage{
		GameID:  "g1",
		Command: Draw,
		Piles: []Pile{
			{Label: "7", Cards: []deck.Card{{Rank: deck.Seven, Suit: deck.Hearts}}, Playable: []int{0}},
		},
		Draw: 4,
		Foundations: []Foundation{
			{Suit: deck.Clubs, Up: []deck.Card{{Rank: deck.Ace, Suit: deck.Clubs}}, Down: []deck.Card{}},
		},
		Active: "7",
		Status: "in_progress",
	}

	data, err := json.Marshal(msg)
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"gameID": "g1",
		"command": "Draw",
		"piles": [{"label": "7", "cards": ["7♥"], "playable": [0]}],
		"draw": 4,
		"foundations": [{"suit": "♣", "up": ["A♣"], "down": []}],
		"active": "7",
		"status": "in_progress"
	}`, string(data))
}
