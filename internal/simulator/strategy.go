package simulator

import (
	"github.com/lox/blackjack-cli/internal/deck"
	"github.com/lox/blackjack-cli/internal/game"
)

// BasicStrategy is a fixed-policy player used by the simulator. It is
// a simplified basic strategy chart: split aces and eights, double on
// hard ten and eleven, stand on stiff totals against a weak dealer
// upcard, otherwise hit to seventeen.
type BasicStrategy struct{}

// Decide picks one of the actions the engine currently offers. It only
// ever returns an action present in AvailableActions.
func (BasicStrategy) Decide(r game.Round) game.Action {
	actions := game.AvailableActions(r)

	if r.IsSplit() {
		if wantsHit(game.Evaluate(r.SplitHands[r.ActiveHand].Cards), dealerUpcard(r)) {
			return game.ActionSplitHit
		}
		return game.ActionSplitStand
	}

	hv := game.Evaluate(r.PlayerHand)

	if offered(actions, game.ActionSplit) && shouldSplit(r) {
		return game.ActionSplit
	}
	if offered(actions, game.ActionDouble) && !hv.Soft && (hv.Total == 10 || hv.Total == 11) {
		return game.ActionDouble
	}
	if offered(actions, game.ActionHit) && wantsHit(hv, dealerUpcard(r)) {
		return game.ActionHit
	}
	return game.ActionStand
}

// wantsHit applies the hit/stand half of the chart: always hit below
// twelve, hit stiff totals only against a strong upcard, hit soft
// seventeens, stand on everything else.
func wantsHit(hv game.HandValue, upcard int) bool {
	switch {
	case hv.Total >= 18:
		return false
	case hv.Soft:
		return hv.Total <= 17
	case hv.Total >= 17:
		return false
	case hv.Total >= 12:
		return upcard >= 7 // includes ten-value cards and the ace
	default:
		return true
	}
}

func shouldSplit(r game.Round) bool {
	return r.PlayerHand[0].Rank == deck.Eight || r.PlayerHand[0].IsAce()
}

func dealerUpcard(r game.Round) int {
	if len(r.DealerHand) == 0 {
		return 0
	}
	return r.DealerHand[0].Value()
}

func offered(actions []game.Action, want game.Action) bool {
	for _, a := range actions {
		if a == want {
			return true
		}
	}
	return false
}
