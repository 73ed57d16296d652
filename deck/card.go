package deck

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Card represents a playing card
type Card struct {
	Rank Rank
	Suit Suit
}

// NewCard constructs a card
func NewCard(rank Rank, suit Suit) (Card, error) {
	if !rank.Valid() {
		return Card{}, fmt.Errorf("%w: %d", ErrInvalidRank, rank)
	}
	if !suit.Valid() {
		return Card{}, fmt.Errorf("%w: %d", ErrInvalidSuit, suit)
	}
	return Card{Rank: rank, Suit: suit}, nil
}

// String renders the card the way it appears on the table, e.g. "10♥"
func (c Card) String() string {
	return c.Rank.Label() + c.Suit.Symbol()
}

// Name renders the long form, e.g. "Ten of Hearts"
func (c Card) Name() string {
	return fmt.Sprintf("%s of %s", c.Rank, c.Suit)
}

// ParseCard reads the short form produced by String. The suit may also be
// given as its ASCII initial, so "10h" and "10♥" are the same card.
func ParseCard(s string) (Card, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Card{}, fmt.Errorf("%w: empty card", ErrInvalidRank)
	}

	last, size := utf8.DecodeLastRuneInString(s)
	suit, err := ParseSuit(string(last))
	if err != nil {
		return Card{}, err
	}
	rank, err := ParseRank(s[:len(s)-size])
	if err != nil {
		return Card{}, err
	}

	return Card{Rank: rank, Suit: suit}, nil
}

func (c Card) MarshalText() ([]byte, error) {
	if !c.Rank.Valid() {
		return nil, ErrInvalidRank
	}
	if !c.Suit.Valid() {
		return nil, ErrInvalidSuit
	}
	return []byte(c.String()), nil
}

func (c *Card) UnmarshalText(text []byte) error {
	parsed, err := ParseCard(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
