package game

import "github.com/lox/blackjack-cli/internal/deck"

// SplitHit draws one card into the active split hand only. The hand
// busts past 21, stands automatically at exactly 21, and otherwise
// stays in play. The inactive hand is never touched.
func SplitHit(r Round) Round {
	hands := cloneSplitHands(r.SplitHands)
	active := &hands[r.ActiveHand]

	var c deck.Card
	c, r.Deck, _ = r.Deck.Draw()
	active.Cards = append(cloneCards(active.Cards), c)

	switch total := Evaluate(active.Cards).Total; {
	case total > 21:
		active.Status = HandBust
	case total == 21:
		active.Status = HandStand
	}

	r.SplitHands = hands
	return advanceSplit(r)
}

// SplitStand marks the active split hand as standing.
func SplitStand(r Round) Round {
	hands := cloneSplitHands(r.SplitHands)
	hands[r.ActiveHand].Status = HandStand
	r.SplitHands = hands
	return advanceSplit(r)
}

// advanceSplit runs after every split action: once no hand is still
// playing the round moves to the dealer's turn, otherwise the active
// pointer advances to the next hand that is.
func advanceSplit(r Round) Round {
	for i, h := range r.SplitHands {
		if h.Status == HandPlaying {
			r.ActiveHand = i
			return r
		}
	}
	r.Phase = PhaseDealerTurn
	return r
}

// cloneSplitHands copies the split pair so transitions never write
// into a prior round's hands.
func cloneSplitHands(hands []SplitHand) []SplitHand {
	out := make([]SplitHand, len(hands))
	copy(out, hands)
	return out
}
