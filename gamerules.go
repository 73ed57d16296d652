package doubledeck

import "github.com/minaorangina/doubledeck/deck"

// Direction says which run of a foundation a card went to
type Direction int

const (
	Up Direction = iota
	Down
)

func (d Direction) String() string {
	if d == Down {
		return "down"
	}
	return "up"
}

// Foundation holds the two runs for one suit: Up is built from Ace to King,
// Down from King to Ace. Matching the suit is the caller's job; use
// Foundations to have it done for you.
type Foundation struct {
	Up   []deck.Card
	Down []deck.Card
}

// Foundations is indexed by deck.Suit
type Foundations [deck.NumSuits]Foundation

// Eligible reports whether c can extend either run
func (f Foundation) Eligible(c deck.Card) bool {
	_, ok := f.match(c)
	return ok
}

// Apply adds c to the first run it fits, checking Up before Down.
// It returns ErrNotEligible and leaves f alone if c fits neither.
func (f *Foundation) Apply(c deck.Card) (Direction, error) {
	dir, ok := f.match(c)
	if !ok {
		return 0, ErrNotEligible
	}

	if dir == Up {
		f.Up = append(f.Up, c)
	} else {
		f.Down = append(f.Down, c)
	}
	return dir, nil
}

// Complete reports whether both runs hold a full suit
func (f Foundation) Complete() bool {
	return len(f.Up) == deck.NumRanks && len(f.Down) == deck.NumRanks
}

func (f Foundation) match(c deck.Card) (Direction, bool) {
	if len(f.Up) == 0 {
		if c.Rank == deck.Ace {
			return Up, true
		}
	} else if next, ok := f.Up[len(f.Up)-1].Rank.Next(); ok && next == c.Rank {
		return Up, true
	}

	if len(f.Down) == 0 {
		if c.Rank == deck.King {
			return Down, true
		}
	} else if prev, ok := f.Down[len(f.Down)-1].Rank.Prev(); ok && prev == c.Rank {
		return Down, true
	}

	return 0, false
}

// Eligible reports whether c can go onto its suit's foundation
func (fs Foundations) Eligible(c deck.Card) bool {
	if !c.Suit.Valid() {
		return false
	}
	return fs[c.Suit].Eligible(c)
}

// Apply moves c onto its suit's foundation
func (fs *Foundations) Apply(c deck.Card) (Direction, error) {
	if !c.Suit.Valid() {
		return 0, ErrNotEligible
	}
	return fs[c.Suit].Apply(c)
}

// Complete reports whether every foundation is complete
func (fs Foundations) Complete() bool {
	for _, f := range fs {
		if !f.Complete() {
			return false
		}
	}
	return true
}

func (fs Foundations) CardCount() int {
	n := 0
	for _, f := range fs {
		n += len(f.Up) + len(f.Down)
	}
	return n
}

func (fs Foundations) clone() Foundations {
	var c Foundations
	for i, f := range fs {
		c[i] = Foundation{Up: cloneCards(f.Up), Down: cloneCards(f.Down)}
	}
	return c
}

// Playable lists the indices of the cards in a pile that may be moved:
// every card of the active pile, otherwise only the last one.
func (s State) Playable(label deck.Rank) []int {
	if !label.Valid() {
		return []int{}
	}

	pile := s.Piles[label]
	if len(pile) == 0 {
		return []int{}
	}
	if s.isActive(label) {
		indices := make([]int, len(pile))
		for i := range pile {
			indices[i] = i
		}
		return indices
	}
	return []int{len(pile) - 1}
}

func (s State) playable(label deck.Rank, index int) bool {
	return s.isActive(label) || index == len(s.Piles[label])-1
}

func (s State) isActive(label deck.Rank) bool {
	return s.Active != nil && *s.Active == label
}

// Status checks for the end of the game. The game is won when every
// foundation is complete, and lost when the draw pile is empty and no card
// left in any pile, covered or not, can go to a foundation.
func (s State) Status() Status {
	if s.Foundations.Complete() {
		return Won
	}
	if len(s.Draw) > 0 {
		return InProgress
	}
	for _, pile := range s.Piles {
		for _, c := range pile {
			if s.Foundations.Eligible(c) {
				return InProgress
			}
		}
	}
	return Lost
}
