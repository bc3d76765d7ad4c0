// Package game implements the core blackjack round engine.
//
// The main type is Round, an immutable value describing one player's
// session: bankroll, current bet, deck remainder, hands, phase and
// cumulative statistics. Every operation is a pure function from one
// Round to the next; the input value is never mutated, so a caller can
// hold prior states for comparison, replay or redraw without any
// synchronisation.
//
// # Basic Usage
//
// Create a session and drive it through one round:
//
//	r := game.NewSession()
//	r = game.StartRound(r)
//	r, err := game.PlaceBet(r, 100)
//	r = game.Deal(r, rng)
//	r = game.ResolveNaturals(r)
//	// Player actions while r.Phase == game.PhasePlaying...
//	r = game.Hit(r)
//	r = game.Stand(r)
//	// Dealer automation once the player side is resolved:
//	for !game.DealerDone(r) {
//	    r = game.DealerDraw(r)
//	}
//	r = game.Settle(r)
//	r = game.CheckGameOver(r)
//
// # Deterministic Testing
//
// All randomness enters through the *rand.Rand passed to Deal, so a
// fixed seed replays an identical session:
//
//	rng := randutil.New(42)
//	r = game.Deal(r, rng)
//
// # Preconditions
//
// Action functions (Hit, Stand, Double, Split, SplitHit, SplitStand)
// assume the caller consulted AvailableActions first. Calling an action
// that AvailableActions would not have offered is a contract violation;
// the engine does not defend against it. Bet validation is the one
// recoverable error surface and is reported through *BetError.
package game
