package doubledeck

import (
	"strings"
	"testing"

	"github.com/minaorangina/doubledeck/deck"
)

// cards parses a space-separated list such as "A♠ 10h Qd"
func cards(t *testing.T, list string) []deck.Card {
	t.Helper()

	out := []deck.Card{}
	for _, field := range strings.Fields(list) {
		c, err := deck.ParseCard(field)
		if err != nil {
			t.Fatalf("bad card %q: %v", field, err)
		}
		out = append(out, c)
	}
	return out
}

func card(t *testing.T, s string) deck.Card {
	t.Helper()
	return cards(t, s)[0]
}

func rankPtr(r deck.Rank) *deck.Rank {
	return &r
}
