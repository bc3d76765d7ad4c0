package game

import (
	"fmt"
	"strconv"
	"strings"
)

// BetError reports a rejected wager. It is the engine's only
// recoverable error surface: the caller shows Reason and re-prompts.
type BetError struct {
	Amount int
	Reason string
}

func (e *BetError) Error() string {
	return e.Reason
}

// ParseBet converts user input into a wager amount. Non-numeric,
// fractional and out-of-range text is rejected here so PlaceBet only
// ever sees a well-formed integer.
func ParseBet(input string) (int, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return 0, &BetError{Reason: "enter a bet amount"}
	}
	amount, err := strconv.Atoi(s)
	if err != nil {
		return 0, &BetError{Reason: fmt.Sprintf("%q is not a whole number", s)}
	}
	return amount, nil
}

// PlaceBet validates a wager against the table limits and bankroll.
// On success the bet is deducted from chips and the round advances to
// the playing phase; everything else passes through unchanged. On
// failure the input state is returned as-is alongside a *BetError.
func PlaceBet(r Round, amount int) (Round, error) {
	switch {
	case amount <= 0:
		return r, &BetError{Amount: amount, Reason: "bet must be a positive amount"}
	case amount < MinBet:
		return r, &BetError{Amount: amount, Reason: fmt.Sprintf("minimum bet is %d", MinBet)}
	case amount > MaxBet:
		return r, &BetError{Amount: amount, Reason: fmt.Sprintf("maximum bet is %d", MaxBet)}
	case amount > r.Chips:
		return r, &BetError{Amount: amount, Reason: fmt.Sprintf("bet exceeds your %d chips", r.Chips)}
	}

	r.Chips -= amount
	r.Bet = amount
	r.Phase = PhasePlaying
	return r, nil
}
