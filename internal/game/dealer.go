package game

import "github.com/lox/blackjack-cli/internal/deck"

// DealerDone reports whether the dealer must stop drawing. The dealer
// stands on all 17s including soft 17; a bust total is >= 17 as well,
// so it terminates the same loop.
func DealerDone(r Round) bool {
	return Evaluate(r.DealerHand).Total >= 17
}

// DealerDraw draws exactly one card into the dealer's hand and nothing
// else, so the caller can observe each intermediate state for pacing.
// Loop `for !DealerDone(r) { r = DealerDraw(r) }` once the player side
// is fully resolved.
func DealerDraw(r Round) Round {
	var c deck.Card
	c, r.Deck, _ = r.Deck.Draw()
	r.DealerHand = append(cloneCards(r.DealerHand), c)
	return r
}
