package doubledeck

import (
	"testing"

	"github.com/minaorangina/doubledeck/deck"
	utils "github.com/minaorangina/doubledeck/internal"
	"github.com/stretchr/testify/assert"
)

func TestDeal(t *testing.T) {
	t.Run("card matching its pile sends one card to the draw pile", func(t *testing.T) {
		s := Deal(cards(t, "5h 2s 9c 4d"))

		assert.Equal(t, cards(t, "5h"), s.Piles[deck.Ace])
		assert.Equal(t, cards(t, "2s"), s.Piles[deck.Two])
		assert.Equal(t, cards(t, "4d"), s.Piles[deck.Three])
		assert.Equal(t, cards(t, "9c"), s.Draw)
	})

	t.Run("matching rule needs a card left to fire", func(t *testing.T) {
		s := Deal(cards(t, "2s 2s"))

		assert.Equal(t, cards(t, "2s"), s.Piles[deck.Ace])
		assert.Equal(t, cards(t, "2s"), s.Piles[deck.Two])
		assert.Empty(t, s.Draw)
	})

	t.Run("an Ace sends two cards to the draw pile", func(t *testing.T) {
		s := Deal(cards(t, "2c Ah 7c 8c 9c"))

		assert.Equal(t, cards(t, "2c"), s.Piles[deck.Ace])
		assert.Equal(t, cards(t, "Ah"), s.Piles[deck.Two])
		assert.Equal(t, cards(t, "9c"), s.Piles[deck.Three])
		assert.Equal(t, cards(t, "7c 8c"), s.Draw)
	})

	t.Run("an Ace on the A pile sends three", func(t *testing.T) {
		s := Deal(cards(t, "Ah 3c 4c 5c 6c"))

		assert.Equal(t, cards(t, "Ah"), s.Piles[deck.Ace])
		assert.Equal(t, cards(t, "3c 4c 5c"), s.Draw)
		assert.Equal(t, cards(t, "6c"), s.Piles[deck.Two])
	})

	t.Run("an Ace takes what is left when the deck runs short", func(t *testing.T) {
		s := Deal(cards(t, "2c Ah 7c"))

		assert.Equal(t, cards(t, "7c"), s.Draw)
		assert.Empty(t, s.Piles[deck.Three])
	})

	t.Run("full sweep fires the 7, 10 and K rules and wraps around", func(t *testing.T) {
		d := cards(t, "2c 3c 4c 5c 6c 7c 8c 10h 9c 10c Jc 2h Qc Kc Kd 3h 4h 5d")
		s := Deal(d)

		t.Log("Then every pile from A to K got one card on the first sweep")
		want := map[deck.Rank]string{
			deck.Ace:   "2c 5d",
			deck.Two:   "3c",
			deck.Three: "4c",
			deck.Four:  "5c",
			deck.Five:  "6c",
			deck.Six:   "7c",
			deck.Seven: "8c",
			deck.Eight: "9c",
			deck.Nine:  "10c",
			deck.Ten:   "Jc",
			deck.Jack:  "Qc",
			deck.Queen: "Kc",
			deck.King:  "Kd",
		}
		for label, list := range want {
			assert.Equal(t, cards(t, list), s.Piles[label], "pile %s", label.Label())
		}

		t.Log("And the draw pile got one after 7, one after 10 and two after a King on K")
		assert.Equal(t, cards(t, "10h 2h 3h 4h"), s.Draw)
	})

	t.Run("stops mid-sweep when the deck runs out", func(t *testing.T) {
		s := Deal(cards(t, "2c 3c 4c"))

		for _, label := range deck.Ranks[3:] {
			assert.Empty(t, s.Piles[label])
		}
		utils.AssertEqual(t, s.CardCount(), 3)
	})

	t.Run("leaves the deck alone", func(t *testing.T) {
		d := deck.NewDouble()
		d.Shuffle(deck.NewRNG(3))
		before := append(deck.Deck{}, d...)

		Deal(d)

		assert.Equal(t, before, d)
	})

	t.Run("an empty deck deals an empty table", func(t *testing.T) {
		s := Deal(nil)
		utils.AssertEqual(t, s.CardCount(), 0)
		assert.Nil(t, s.Active)
	})
}

func TestDealConservesCards(t *testing.T) {
	want := deck.NewDouble().Count()

	for seed := int64(0); seed < 200; seed++ {
		s := NewGame(deck.NewRNG(seed))

		if got := s.CardCount(); got != deck.DoubleDeckSize {
			t.Fatalf("seed %d: dealt %d cards", seed, got)
		}
		assert.Equal(t, want, s.AllCards().Count(), "seed %d", seed)
		assert.Empty(t, s.Foundations.CardCount())
		assert.Nil(t, s.Active)
	}
}

func TestDealIsDeterministic(t *testing.T) {
	a := NewGame(deck.NewRNG(99))
	b := NewGame(deck.NewRNG(99))
	assert.Equal(t, a, b)

	c := NewGame(deck.NewRNG(100))
	assert.NotEqual(t, a, c)
}

func TestDealMatchesRulesForSeededShuffle(t *testing.T) {
	d := deck.NewDouble()
	d.Shuffle(deck.NewRNG(2024))
	s := Deal(d)

	t.Log("Replaying the deal by hand gives the same table")
	var piles [deck.NumRanks][]deck.Card
	var draw []deck.Card
	i := 0
	next := func() (deck.Card, bool) {
		if i >= len(d) {
			return deck.Card{}, false
		}
		i++
		return d[i-1], true
	}

	for i < len(d) {
		for _, label := range deck.Ranks {
			c, ok := next()
			if !ok {
				break
			}
			piles[label] = append(piles[label], c)

			if label == deck.Seven || label == deck.Ten || label == deck.King {
				if x, ok := next(); ok {
					draw = append(draw, x)
				}
			}
			if c.Rank == deck.Ace {
				for n := 0; n < 2; n++ {
					if x, ok := next(); ok {
						draw = append(draw, x)
					}
				}
			}
			if c.Rank == label {
				if x, ok := next(); ok {
					draw = append(draw, x)
				}
			}
		}
	}

	assert.Equal(t, piles, s.Piles)
	assert.Equal(t, draw, s.Draw)
}
