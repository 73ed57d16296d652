package deck

import (
	"math/rand"
	"time"
)

// RNG is the source of randomness for shuffling
type RNG interface {
	// Intn returns a non-negative random int in [0, n).
	Intn(n int) int
}

// NewRNG returns a deterministic RNG. Two decks shuffled with RNGs built from
// the same seed end up in the same order.
func NewRNG(seed int64) RNG {
	return rand.New(rand.NewSource(seed))
}

// NewRandomRNG returns an RNG seeded from the clock
func NewRandomRNG() RNG {
	return NewRNG(time.Now().UnixNano())
}

// Deck represents a deck of cards
type Deck []Card

// DoubleDeckSize is the number of cards in two full decks
const DoubleDeckSize = 2 * NumSuits * NumRanks

// New creates a 52-card deck, suit by suit, Ace to King
func New() Deck {
	cards := make(Deck, 0, NumSuits*NumRanks)
	for _, suit := range Suits {
		for _, rank := range Ranks {
			cards = append(cards, Card{Rank: rank, Suit: suit})
		}
	}
	return cards
}

// NewDouble creates two 52-card decks, one after the other
func NewDouble() Deck {
	return append(New(), New()...)
}

// Shuffle performs a Fisher-Yates shuffle in place
func (d Deck) Shuffle(rng RNG) {
	for i := len(d) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		d[i], d[j] = d[j], d[i]
	}
}

// Draw removes and returns the card at the front of the deck
func (d *Deck) Draw() (Card, bool) {
	if len(*d) == 0 {
		return Card{}, false
	}
	c := (*d)[0]
	*d = (*d)[1:]
	return c, true
}

// Count tallies how many times each card appears
func (d Deck) Count() map[Card]int {
	counts := make(map[Card]int, len(d))
	for _, c := range d {
		counts[c]++
	}
	return counts
}
