package deck

import rand "math/rand/v2"

// Deck is an ordered sequence of cards. The top of the deck is the end
// of the slice, so drawing is a pop from the back. Decks are values:
// every operation returns a new Deck and leaves its input untouched,
// which lets round state be threaded through pure functions and
// compared across transitions.
type Deck []Card

// New creates a standard 52-card deck in suit-then-rank order.
func New() Deck {
	d := make(Deck, 0, 52)
	for suit := Spades; suit <= Clubs; suit++ {
		for rank := Two; rank <= Ace; rank++ {
			d = append(d, NewCard(suit, rank))
		}
	}
	return d
}

// Shuffle returns a uniformly random permutation of d using the
// Fisher-Yates algorithm. The receiver is not modified.
func (d Deck) Shuffle(rng *rand.Rand) Deck {
	shuffled := make(Deck, len(d))
	copy(shuffled, d)
	for i := len(shuffled) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}
	return shuffled
}

// Draw removes the top card and returns it with the remaining deck.
// The returned deck aliases d's backing array but never overlaps the
// drawn card, so the input deck still reads the same afterwards.
// Draw on an empty deck returns ok=false.
func (d Deck) Draw() (Card, Deck, bool) {
	if len(d) == 0 {
		return Card{}, d, false
	}
	return d[len(d)-1], d[:len(d)-1], true
}

// Remaining returns the number of cards left in the deck.
func (d Deck) Remaining() int {
	return len(d)
}
