package game

import "github.com/lox/blackjack-cli/internal/deck"

// HandValue is the evaluated total of a hand. Soft is true while at
// least one Ace is still counted as 11.
type HandValue struct {
	Total int
	Soft  bool
}

// Evaluate computes a hand's blackjack value. Aces start at 11 and are
// demoted to 1 one at a time while the total exceeds 21. Totals are
// always re-derived from the cards; nothing is cached. An empty hand
// evaluates to {0, false}.
func Evaluate(cards []deck.Card) HandValue {
	total := 0
	aces := 0
	for _, c := range cards {
		total += c.Value()
		if c.IsAce() {
			aces++
		}
	}
	for total > 21 && aces > 0 {
		total -= 10
		aces--
	}
	return HandValue{Total: total, Soft: aces > 0}
}

// IsBlackjack returns true for a natural: exactly two cards totalling
// 21. Any 21 made with three or more cards is not a blackjack and pays
// even money.
func IsBlackjack(cards []deck.Card) bool {
	return len(cards) == 2 && Evaluate(cards).Total == 21
}
