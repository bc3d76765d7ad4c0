package game

import "math"

// BlackjackPayout computes the 3:2 winnings on a natural, rounding
// half up for odd bets (a 45-chip payout on a 30-chip bet).
func BlackjackPayout(bet int) int {
	return int(math.Round(float64(bet) * 1.5))
}

// ResolveNaturals checks both two-card hands for a natural immediately
// after the deal, before any player action. With no natural on either
// side the state is returned unchanged, including slice identity, so
// callers can detect the no-op. Any natural ends the round on the
// spot: both naturals push, a player natural pays 3:2, a dealer
// natural collects the already-deducted stake.
func ResolveNaturals(r Round) Round {
	player := IsBlackjack(r.PlayerHand)
	dealer := IsBlackjack(r.DealerHand)
	if !player && !dealer {
		return r
	}

	switch {
	case player && dealer:
		r.Chips += r.Bet
		r.Result = Result{Outcome: OutcomePush, ChipChange: 0}
		r.Stats.HandsPushed++
	case player:
		payout := BlackjackPayout(r.Bet)
		r.Chips += r.Bet + payout
		r.Result = Result{Outcome: OutcomeBlackjack, ChipChange: payout}
		r.Stats.HandsWon++
		r.Stats.Blackjacks++
	default:
		r.Result = Result{Outcome: OutcomeLose, ChipChange: -r.Bet}
		r.Stats.HandsLost++
	}
	r.Stats.HandsPlayed++
	r.Phase = PhaseResult
	return updatePeak(r)
}

// Settle compares the finished player side against the dealer and
// applies payouts once dealer automation has completed. Split rounds
// settle each hand independently against the one dealer hand and
// report the aggregate chip movement as a single split outcome.
func Settle(r Round) Round {
	if r.IsSplit() {
		return settleSplit(r)
	}

	outcome := compareHands(Evaluate(r.PlayerHand).Total, Evaluate(r.DealerHand).Total)
	switch outcome {
	case OutcomeWin:
		r.Chips += 2 * r.Bet
		r.Result = Result{Outcome: OutcomeWin, ChipChange: r.Bet}
		r.Stats.HandsWon++
	case OutcomePush:
		r.Chips += r.Bet
		r.Result = Result{Outcome: OutcomePush, ChipChange: 0}
		r.Stats.HandsPushed++
	default:
		r.Result = Result{Outcome: OutcomeLose, ChipChange: -r.Bet}
		r.Stats.HandsLost++
	}
	r.Stats.HandsPlayed++
	r.Phase = PhaseResult
	return updatePeak(r)
}

func settleSplit(r Round) Round {
	dealerTotal := Evaluate(r.DealerHand).Total
	hands := cloneSplitHands(r.SplitHands)
	change := 0

	for i := range hands {
		h := &hands[i]
		if h.Status == HandBust {
			// A busted hand loses even when the dealer busts too.
			h.Outcome = OutcomeLose
		} else {
			h.Outcome = compareHands(Evaluate(h.Cards).Total, dealerTotal)
		}

		switch h.Outcome {
		case OutcomeWin:
			r.Chips += 2 * h.Bet
			change += h.Bet
			r.Stats.HandsWon++
		case OutcomePush:
			r.Chips += h.Bet
			r.Stats.HandsPushed++
		default:
			change -= h.Bet
			r.Stats.HandsLost++
		}
		r.Stats.HandsPlayed++
	}

	r.SplitHands = hands
	r.Result = Result{Outcome: OutcomeSplit, ChipChange: change}
	r.Phase = PhaseResult
	return updatePeak(r)
}

// compareHands applies the core settlement rule for a non-busted
// player total: dealer bust or a higher total wins, a lower total
// loses, equal totals push.
func compareHands(playerTotal, dealerTotal int) Outcome {
	switch {
	case dealerTotal > 21 || playerTotal > dealerTotal:
		return OutcomeWin
	case playerTotal < dealerTotal:
		return OutcomeLose
	default:
		return OutcomePush
	}
}

func updatePeak(r Round) Round {
	if r.Chips > r.Stats.PeakChips {
		r.Stats.PeakChips = r.Chips
	}
	return r
}
