package doubledeck

import "github.com/minaorangina/doubledeck/deck"

func cloneCards(cards []deck.Card) []deck.Card {
	if cards == nil {
		return nil
	}
	return append([]deck.Card{}, cards...)
}

func removeCard(cards []deck.Card, idx int) []deck.Card {
	return append(cards[:idx], cards[idx+1:]...)
}

// nonNil keeps empty card lists from serialising as null
func nonNil(cards []deck.Card) []deck.Card {
	if cards == nil {
		return []deck.Card{}
	}
	return cards
}
