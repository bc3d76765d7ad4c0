package game

import (
	"reflect"
	"testing"

	"github.com/lox/blackjack-cli/internal/deck"
)

// dealtRound builds a round right after the initial deal: bet placed,
// both sides holding two cards.
func dealtRound(player, dealer []deck.Card, bet, chips int) Round {
	r := NewSession()
	r.Chips = chips
	r.Bet = bet
	r.Phase = PhasePlaying
	r.PlayerHand = player
	r.DealerHand = dealer
	return r
}

func TestBlackjackPayout(t *testing.T) {
	tests := []struct {
		bet  int
		want int
	}{
		{bet: 100, want: 150},
		{bet: 30, want: 45},
		{bet: 25, want: 38}, // 37.5 rounds half up
		{bet: 10, want: 15},
	}
	for _, tt := range tests {
		if got := BlackjackPayout(tt.bet); got != tt.want {
			t.Errorf("BlackjackPayout(%d) = %d, want %d", tt.bet, got, tt.want)
		}
	}
}

func TestResolveNaturals(t *testing.T) {
	t.Run("no natural is an identity", func(t *testing.T) {
		r := dealtRound(
			[]deck.Card{card(deck.King, deck.Spades), card(deck.Nine, deck.Hearts)},
			[]deck.Card{card(deck.Eight, deck.Clubs), card(deck.Nine, deck.Diamonds)},
			100, 900,
		)
		got := ResolveNaturals(r)

		if !reflect.DeepEqual(got, r) {
			t.Errorf("state changed with no natural present:\n got %+v\nwant %+v", got, r)
		}
		// Identity, not just equality: the hand slices must be the same.
		if &got.PlayerHand[0] != &r.PlayerHand[0] {
			t.Error("player hand was copied on the identity path")
		}
	})

	t.Run("player natural pays three to two", func(t *testing.T) {
		r := dealtRound(
			[]deck.Card{card(deck.Ace, deck.Spades), card(deck.King, deck.Hearts)},
			[]deck.Card{card(deck.Eight, deck.Clubs), card(deck.Nine, deck.Diamonds)},
			100, 900,
		)
		got := ResolveNaturals(r)

		if got.Result.Outcome != OutcomeBlackjack {
			t.Errorf("outcome = %v, want blackjack", got.Result.Outcome)
		}
		if got.Result.ChipChange != 150 {
			t.Errorf("chip change = %d, want +150", got.Result.ChipChange)
		}
		if got.Chips != 1150 { // 900 + stake 100 + payout 150
			t.Errorf("chips = %d, want 1150", got.Chips)
		}
		if got.Phase != PhaseResult {
			t.Errorf("phase = %v, want result", got.Phase)
		}
		s := got.Stats
		if s.HandsPlayed != 1 || s.HandsWon != 1 || s.Blackjacks != 1 {
			t.Errorf("stats = %+v", s)
		}
		if s.PeakChips != 1150 {
			t.Errorf("peak chips = %d, want 1150", s.PeakChips)
		}
	})

	t.Run("both naturals push", func(t *testing.T) {
		r := dealtRound(
			[]deck.Card{card(deck.Ace, deck.Spades), card(deck.King, deck.Hearts)},
			[]deck.Card{card(deck.Ace, deck.Clubs), card(deck.Queen, deck.Diamonds)},
			100, 900,
		)
		got := ResolveNaturals(r)

		if got.Result.Outcome != OutcomePush || got.Result.ChipChange != 0 {
			t.Errorf("result = %+v, want push with no change", got.Result)
		}
		if got.Chips != 1000 {
			t.Errorf("chips = %d, want 1000 (stake returned)", got.Chips)
		}
		if got.Stats.HandsPushed != 1 || got.Stats.HandsPlayed != 1 {
			t.Errorf("stats = %+v", got.Stats)
		}
	})

	t.Run("dealer natural collects the stake", func(t *testing.T) {
		r := dealtRound(
			[]deck.Card{card(deck.King, deck.Spades), card(deck.Nine, deck.Hearts)},
			[]deck.Card{card(deck.Ace, deck.Clubs), card(deck.Queen, deck.Diamonds)},
			100, 900,
		)
		got := ResolveNaturals(r)

		if got.Result.Outcome != OutcomeLose || got.Result.ChipChange != -100 {
			t.Errorf("result = %+v, want lose -100", got.Result)
		}
		if got.Chips != 900 {
			t.Errorf("chips = %d, want 900", got.Chips)
		}
		if got.Stats.HandsLost != 1 || got.Stats.HandsPlayed != 1 {
			t.Errorf("stats = %+v", got.Stats)
		}
	})
}

func TestSettle(t *testing.T) {
	tests := []struct {
		name       string
		player     []deck.Card
		dealer     []deck.Card
		outcome    Outcome
		chipChange int
		chips      int // after settlement, starting from 900 with bet 100
	}{
		{
			name:       "player outdraws dealer",
			player:     []deck.Card{card(deck.King, deck.Spades), card(deck.Queen, deck.Hearts)},
			dealer:     []deck.Card{card(deck.Ten, deck.Clubs), card(deck.Eight, deck.Diamonds)},
			outcome:    OutcomeWin,
			chipChange: 100,
			chips:      1100,
		},
		{
			name:       "dealer outdraws player",
			player:     []deck.Card{card(deck.King, deck.Spades), card(deck.Eight, deck.Hearts)},
			dealer:     []deck.Card{card(deck.Ten, deck.Clubs), card(deck.Nine, deck.Diamonds)},
			outcome:    OutcomeLose,
			chipChange: -100,
			chips:      900,
		},
		{
			name:       "equal totals push",
			player:     []deck.Card{card(deck.King, deck.Spades), card(deck.Nine, deck.Hearts)},
			dealer:     []deck.Card{card(deck.Ten, deck.Clubs), card(deck.Nine, deck.Diamonds)},
			outcome:    OutcomePush,
			chipChange: 0,
			chips:      1000,
		},
		{
			name:       "dealer bust is a win",
			player:     []deck.Card{card(deck.King, deck.Spades), card(deck.Five, deck.Hearts)},
			dealer:     []deck.Card{card(deck.Ten, deck.Clubs), card(deck.Six, deck.Diamonds), card(deck.Nine, deck.Spades)},
			outcome:    OutcomeWin,
			chipChange: 100,
			chips:      1100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := dealtRound(tt.player, tt.dealer, 100, 900)
			r.Phase = PhaseDealerTurn
			got := Settle(r)

			if got.Result.Outcome != tt.outcome {
				t.Errorf("outcome = %v, want %v", got.Result.Outcome, tt.outcome)
			}
			if got.Result.ChipChange != tt.chipChange {
				t.Errorf("chip change = %d, want %d", got.Result.ChipChange, tt.chipChange)
			}
			if got.Chips != tt.chips {
				t.Errorf("chips = %d, want %d", got.Chips, tt.chips)
			}
			if got.Phase != PhaseResult {
				t.Errorf("phase = %v, want result", got.Phase)
			}
			if got.Stats.HandsPlayed != 1 {
				t.Errorf("hands played = %d, want 1", got.Stats.HandsPlayed)
			}
		})
	}
}

func TestSettleSplit(t *testing.T) {
	buildSplit := func(h0, h1 []deck.Card, s0, s1 HandStatus, dealer []deck.Card) Round {
		r := NewSession()
		r.Chips = 800 // 1000 - two stakes of 100
		r.Bet = 100
		r.Phase = PhaseDealerTurn
		r.DealerHand = dealer
		r.SplitHands = []SplitHand{
			{Cards: h0, Bet: 100, Status: s0},
			{Cards: h1, Bet: 100, Status: s1},
		}
		return r
	}

	t.Run("one win one loss nets to zero", func(t *testing.T) {
		got := Settle(buildSplit(
			[]deck.Card{card(deck.Eight, deck.Spades), card(deck.King, deck.Clubs)},  // 18
			[]deck.Card{card(deck.Eight, deck.Hearts), card(deck.Six, deck.Hearts)},  // 14
			HandStand, HandStand,
			[]deck.Card{card(deck.Ten, deck.Clubs), card(deck.Seven, deck.Diamonds)}, // 17
		))

		if got.Result.Outcome != OutcomeSplit {
			t.Errorf("outcome = %v, want split", got.Result.Outcome)
		}
		if got.Result.ChipChange != 0 {
			t.Errorf("chip change = %d, want 0", got.Result.ChipChange)
		}
		if got.Chips != 1000 {
			t.Errorf("chips = %d, want 1000", got.Chips)
		}
		s := got.Stats
		if s.HandsPlayed != 2 || s.HandsWon != 1 || s.HandsLost != 1 {
			t.Errorf("stats = %+v", s)
		}
		if got.SplitHands[0].Outcome != OutcomeWin || got.SplitHands[1].Outcome != OutcomeLose {
			t.Errorf("hand outcomes = %v/%v", got.SplitHands[0].Outcome, got.SplitHands[1].Outcome)
		}
	})

	t.Run("busted hand loses even when dealer busts", func(t *testing.T) {
		got := Settle(buildSplit(
			[]deck.Card{card(deck.Eight, deck.Spades), card(deck.King, deck.Clubs), card(deck.Nine, deck.Hearts)}, // 27
			[]deck.Card{card(deck.Eight, deck.Hearts), card(deck.Nine, deck.Diamonds)},                            // 17
			HandBust, HandStand,
			[]deck.Card{card(deck.Ten, deck.Clubs), card(deck.Six, deck.Diamonds), card(deck.King, deck.Spades)},  // 26, bust
		))

		if got.SplitHands[0].Outcome != OutcomeLose {
			t.Errorf("busted hand outcome = %v, want lose", got.SplitHands[0].Outcome)
		}
		if got.SplitHands[1].Outcome != OutcomeWin {
			t.Errorf("standing hand outcome = %v, want win vs dealer bust", got.SplitHands[1].Outcome)
		}
		if got.Result.ChipChange != 0 {
			t.Errorf("chip change = %d, want 0 (one win, one loss)", got.Result.ChipChange)
		}
	})

	t.Run("double win updates peak chips", func(t *testing.T) {
		got := Settle(buildSplit(
			[]deck.Card{card(deck.Eight, deck.Spades), card(deck.King, deck.Clubs)},  // 18
			[]deck.Card{card(deck.Eight, deck.Hearts), card(deck.Jack, deck.Hearts)}, // 18
			HandStand, HandStand,
			[]deck.Card{card(deck.Ten, deck.Clubs), card(deck.Seven, deck.Diamonds)}, // 17
		))

		if got.Chips != 1200 {
			t.Errorf("chips = %d, want 1200", got.Chips)
		}
		if got.Stats.PeakChips != 1200 {
			t.Errorf("peak chips = %d, want 1200", got.Stats.PeakChips)
		}
		if got.Result.ChipChange != 200 {
			t.Errorf("chip change = %d, want +200", got.Result.ChipChange)
		}
	})
}
