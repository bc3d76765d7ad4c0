package game

import "github.com/lox/blackjack-cli/internal/deck"

// Action identifies one player decision the engine can apply.
type Action int

const (
	ActionHit Action = iota
	ActionStand
	ActionDouble
	ActionSplit
	ActionSplitHit
	ActionSplitStand
	ActionQuit
)

// String returns the string representation of an action
func (a Action) String() string {
	switch a {
	case ActionHit:
		return "hit"
	case ActionStand:
		return "stand"
	case ActionDouble:
		return "double"
	case ActionSplit:
		return "split"
	case ActionSplitHit:
		return "hit"
	case ActionSplitStand:
		return "stand"
	case ActionQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// AvailableActions derives the legal actions for the current state.
// Legality is never stored; it is recomputed from the round each time.
// During an active split only the split-scoped actions are offered,
// addressed to the hand at ActiveHand. Quit is always available.
func AvailableActions(r Round) []Action {
	var actions []Action
	if r.Phase == PhasePlaying {
		if r.IsSplit() {
			actions = append(actions, ActionSplitHit, ActionSplitStand)
		} else {
			if Evaluate(r.PlayerHand).Total < 21 {
				actions = append(actions, ActionHit)
			}
			actions = append(actions, ActionStand)
			if len(r.PlayerHand) == 2 && r.Chips >= r.Bet {
				actions = append(actions, ActionDouble)
				if r.PlayerHand[0].Rank == r.PlayerHand[1].Rank {
					actions = append(actions, ActionSplit)
				}
			}
		}
	}
	return append(actions, ActionQuit)
}

// Hit draws the top card into the player's hand. Busting ends the
// round immediately; drawing to exactly 21 auto-stands into the
// dealer's turn; anything else stays in the playing phase.
func Hit(r Round) Round {
	var c deck.Card
	c, r.Deck, _ = r.Deck.Draw()
	r.PlayerHand = append(cloneCards(r.PlayerHand), c)

	switch total := Evaluate(r.PlayerHand).Total; {
	case total > 21:
		r.Phase = PhaseResult
		r.Result = Result{Outcome: OutcomeBust, ChipChange: -r.Bet}
		r.Stats.HandsPlayed++
		r.Stats.HandsLost++
	case total == 21:
		r.Phase = PhaseDealerTurn
	}
	return r
}

// Stand passes play to the dealer with no other change.
func Stand(r Round) Round {
	r.Phase = PhaseDealerTurn
	return r
}

// Double doubles the wager, deducts the additional stake and draws
// exactly one card. The hand then stands regardless of its total;
// only a bust short-circuits past the dealer's turn.
//
// Precondition: two-card hand and Chips >= Bet.
func Double(r Round) Round {
	r.Chips -= r.Bet
	r.Bet *= 2

	var c deck.Card
	c, r.Deck, _ = r.Deck.Draw()
	r.PlayerHand = append(cloneCards(r.PlayerHand), c)

	if Evaluate(r.PlayerHand).Total > 21 {
		r.Phase = PhaseResult
		r.Result = Result{Outcome: OutcomeBust, ChipChange: -r.Bet}
		r.Stats.HandsPlayed++
		r.Stats.HandsLost++
	} else {
		r.Phase = PhaseDealerTurn
	}
	return r
}

// Split separates a matched pair into two hands, each seeded with one
// of the original cards plus one fresh draw, each staked with a bet
// equal to the original wager. Split aces receive their one card and
// stand immediately, sending the round straight to the dealer's turn.
//
// Precondition: two-card hand of equal rank and Chips >= Bet.
func Split(r Round) Round {
	r.Chips -= r.Bet

	first := []deck.Card{r.PlayerHand[0]}
	second := []deck.Card{r.PlayerHand[1]}

	var c deck.Card
	c, r.Deck, _ = r.Deck.Draw()
	first = append(first, c)
	c, r.Deck, _ = r.Deck.Draw()
	second = append(second, c)

	r.SplitHands = []SplitHand{
		{Cards: first, Bet: r.Bet},
		{Cards: second, Bet: r.Bet},
	}
	r.ActiveHand = 0

	// Split aces get exactly one card each, no further hitting.
	if r.PlayerHand[0].IsAce() {
		r.SplitHands[0].Status = HandStand
		r.SplitHands[1].Status = HandStand
		r.Phase = PhaseDealerTurn
	}
	return r
}
