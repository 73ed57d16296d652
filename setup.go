package doubledeck

import "github.com/minaorangina/doubledeck/deck"

// piles that send an extra card to the draw pile every time they are dealt to
var drawAfter = map[deck.Rank]bool{
	deck.Seven: true,
	deck.Ten:   true,
	deck.King:  true,
}

// Deal lays out d, front first, sweeping the piles from A to K until the deck
// runs out. After each card lands on a pile, extra cards go to the draw pile:
//   - one if the pile is 7, 10 or K
//   - two if the card is an Ace
//   - one if the card matches its pile
//
// The rules add up. d is not modified.
func Deal(d deck.Deck) State {
	remaining := append(deck.Deck(nil), d...)
	s := State{}

	for len(remaining) > 0 {
		for _, label := range deck.Ranks {
			card, ok := remaining.Draw()
			if !ok {
				return s
			}
			s.Piles[label] = append(s.Piles[label], card)

			extra := 0
			if drawAfter[label] {
				extra++
			}
			if card.Rank == deck.Ace {
				extra += 2
			}
			if card.Rank == label {
				extra++
			}

			for i := 0; i < extra; i++ {
				c, ok := remaining.Draw()
				if !ok {
					break
				}
				s.Draw = append(s.Draw, c)
			}
		}
	}

	return s
}
