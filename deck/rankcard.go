package deck

import (
	"errors"
	"fmt"
	"strings"
)

// Rank represents a rank in a deck of cards
type Rank int

const (
	Ace Rank = iota
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

var rankNames = []string{"Ace", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine", "Ten", "Jack", "Queen", "King"}

var rankLabels = []string{"A", "2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K"}

// Ranks lists every rank from Ace to King
var Ranks = []Rank{Ace, Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King}

// NumRanks is the number of ranks in a suit
const NumRanks = 13

// Suit represents a suit in a deck of cards
type Suit int

const (
	Spades Suit = iota
	Hearts
	Diamonds
	Clubs
)

var suitNames = []string{"Spades", "Hearts", "Diamonds", "Clubs"}

var suitSymbols = []string{"♠", "♥", "♦", "♣"}

// Suits lists every suit in deck order
var Suits = []Suit{Spades, Hearts, Diamonds, Clubs}

// NumSuits is the number of suits in a deck
const NumSuits = 4

var (
	ErrInvalidRank = errors.New("invalid rank")
	ErrInvalidSuit = errors.New("invalid suit")
)

// Valid reports whether r is between Ace and King
func (r Rank) Valid() bool {
	return r >= Ace && r <= King
}

// Label is the short form used on pile headers, e.g. "10" or "Q"
func (r Rank) Label() string {
	if !r.Valid() {
		return ""
	}
	return rankLabels[r]
}

func (r Rank) String() string {
	if !r.Valid() {
		return fmt.Sprintf("Rank(%d)", int(r))
	}
	return rankNames[r]
}

// Next returns the rank immediately above r. There is nothing above a King.
func (r Rank) Next() (Rank, bool) {
	if !r.Valid() || r == King {
		return 0, false
	}
	return r + 1, true
}

// Prev returns the rank immediately below r. There is nothing below an Ace.
func (r Rank) Prev() (Rank, bool) {
	if !r.Valid() || r == Ace {
		return 0, false
	}
	return r - 1, true
}

// ParseRank accepts a pile label ("A", "2" ... "10", "J", "Q", "K"), case-insensitively
func ParseRank(s string) (Rank, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	for i, l := range rankLabels {
		if l == s {
			return Rank(i), nil
		}
	}
	if s == "T" {
		return Ten, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidRank, s)
}

// MarshalText encodes a rank as its label
func (r Rank) MarshalText() ([]byte, error) {
	if !r.Valid() {
		return nil, ErrInvalidRank
	}
	return []byte(r.Label()), nil
}

func (r *Rank) UnmarshalText(text []byte) error {
	parsed, err := ParseRank(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// Valid reports whether s is one of the four suits
func (s Suit) Valid() bool {
	return s >= Spades && s <= Clubs
}

// Symbol returns the suit glyph
func (s Suit) Symbol() string {
	if !s.Valid() {
		return "?"
	}
	return suitSymbols[s]
}

func (s Suit) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Suit(%d)", int(s))
	}
	return suitNames[s]
}

// Red reports whether the suit is hearts or diamonds
func (s Suit) Red() bool {
	return s == Hearts || s == Diamonds
}

// ParseSuit accepts a suit glyph or its ASCII initial (S, H, D, C)
func ParseSuit(s string) (Suit, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	for i, sym := range suitSymbols {
		if s == sym || s == suitNames[i][:1] {
			return Suit(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidSuit, s)
}

func (s Suit) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, ErrInvalidSuit
	}
	return []byte(s.Symbol()), nil
}

func (s *Suit) UnmarshalText(text []byte) error {
	parsed, err := ParseSuit(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
