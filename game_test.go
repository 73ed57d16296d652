package doubledeck

import (
	"testing"

	"github.com/minaorangina/doubledeck/deck"
	utils "github.com/minaorangina/doubledeck/internal"
	"github.com/minaorangina/doubledeck/protocol"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDraw(t *testing.T) {
	t.Run("moves the top of the draw pile onto its pile and activates it", func(t *testing.T) {
		t.Log("Given a draw pile with 9♣ on top")
		s := State{Draw: cards(t, "4d 9c")}
		s.Piles[deck.Nine] = cards(t, "2h")
		before := s.Clone()

		t.Log("When the player draws")
		next, err := Apply(s, DrawAction())
		utils.AssertNoError(t, err)

		t.Log("Then 9♣ lands on the 9 pile, which becomes active")
		assert.Equal(t, cards(t, "4d"), next.Draw)
		assert.Equal(t, cards(t, "2h 9c"), next.Piles[deck.Nine])
		require.NotNil(t, next.Active)
		utils.AssertEqual(t, *next.Active, deck.Nine)

		t.Log("And the original state is untouched")
		assert.Equal(t, before, s)
	})

	t.Run("empty draw pile", func(t *testing.T) {
		s := State{}
		s.Piles[deck.Two] = cards(t, "5s")

		next, err := Apply(s, DrawAction())
		utils.AssertErrorIs(t, err, ErrDrawPileEmpty)
		assert.Equal(t, s, next)
	})

	t.Run("a later draw moves the active pile", func(t *testing.T) {
		s := State{Draw: cards(t, "Jh 3c")}

		s, err := Apply(s, DrawAction())
		require.NoError(t, err)
		utils.AssertEqual(t, *s.Active, deck.Three)

		s, err = Apply(s, DrawAction())
		require.NoError(t, err)
		utils.AssertEqual(t, *s.Active, deck.Jack)
		assert.Equal(t, []int{0}, s.Playable(deck.Three))
	})
}

func TestApplyMove(t *testing.T) {
	table := func() State {
		s := State{Draw: cards(t, "8h")}
		s.Piles[deck.Four] = cards(t, "Kd 6c As")
		s.Piles[deck.Six] = cards(t, "Ah 3h")
		return s
	}

	t.Run("top card to its foundation", func(t *testing.T) {
		s := table()

		next, err := Apply(s, MoveAction(deck.Four, 2))
		utils.AssertNoError(t, err)

		assert.Equal(t, cards(t, "Kd 6c"), next.Piles[deck.Four])
		assert.Equal(t, cards(t, "As"), next.Foundations[deck.Spades].Up)
		assert.Equal(t, cards(t, "Kd 6c As"), s.Piles[deck.Four], "input must not change")
		assert.Empty(t, s.Foundations[deck.Spades].Up)
		utils.AssertEqual(t, next.CardCount(), s.CardCount())
	})

	t.Run("covered card of an inactive pile", func(t *testing.T) {
		s := table()

		next, err := Apply(s, MoveAction(deck.Four, 0))
		utils.AssertErrorIs(t, err, ErrCardNotPlayable)
		assert.Equal(t, s, next)
	})

	t.Run("covered card of the active pile", func(t *testing.T) {
		s := table()
		s.Active = rankPtr(deck.Four)

		next, err := Apply(s, MoveAction(deck.Four, 0))
		utils.AssertNoError(t, err)

		assert.Equal(t, cards(t, "6c As"), next.Piles[deck.Four])
		assert.Equal(t, cards(t, "Kd"), next.Foundations[deck.Diamonds].Down)
	})

	t.Run("top card that fits no foundation", func(t *testing.T) {
		s := table()

		next, err := Apply(s, MoveAction(deck.Six, 1))
		utils.AssertErrorIs(t, err, ErrNotEligible)
		assert.Equal(t, s, next)
	})

	t.Run("bad coordinates", func(t *testing.T) {
		s := table()

		_, err := Apply(s, MoveAction(deck.Four, 3))
		utils.AssertErrorIs(t, err, ErrIndexOutOfRange)

		_, err = Apply(s, MoveAction(deck.Four, -1))
		utils.AssertErrorIs(t, err, ErrIndexOutOfRange)

		_, err = Apply(s, MoveAction(deck.Seven, 0))
		utils.AssertErrorIs(t, err, ErrIndexOutOfRange)

		_, err = Apply(s, MoveAction(deck.Rank(13), 0))
		utils.AssertErrorIs(t, err, ErrUnknownPile)
	})

	t.Run("emptying a pile", func(t *testing.T) {
		s := State{}
		s.Piles[deck.King] = cards(t, "Kc")

		next, err := Apply(s, MoveAction(deck.King, 0))
		utils.AssertNoError(t, err)
		assert.Empty(t, next.Piles[deck.King])
		assert.Equal(t, []int{}, next.Playable(deck.King))
	})
}

func TestApplyUnknownCommand(t *testing.T) {
	_, err := Apply(State{}, Action{Cmd: protocol.Restart})
	utils.AssertErrorIs(t, err, ErrUnknownCommand)
}

func TestPlayThrough(t *testing.T) {
	t.Log("Given a seeded game")
	s := NewGame(deck.NewRNG(11))
	want := s.AllCards().Count()

	t.Log("When every available move is played until the game ends")
	for steps := 0; s.Status() == InProgress && steps < 10000; steps++ {
		moved := false
		for _, label := range deck.Ranks {
			for _, idx := range s.Playable(label) {
				next, err := Apply(s, MoveAction(label, idx))
				if err == nil {
					s, moved = next, true
					break
				}
			}
			if moved {
				break
			}
		}
		if moved {
			continue
		}

		next, err := Apply(s, DrawAction())
		if err != nil {
			break
		}
		s = next
	}

	t.Log("Then no card has been lost or duplicated")
	assert.Equal(t, want, s.AllCards().Count())
	assert.Empty(t, s.Draw)
}
