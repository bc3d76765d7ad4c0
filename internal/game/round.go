package game

import (
	rand "math/rand/v2"

	"github.com/lox/blackjack-cli/internal/deck"
)

// House parameters. The bankroll and table limits are fixed; the
// reshuffle threshold guarantees a full round can always be dealt
// without exhausting the shoe.
const (
	StartingChips      = 1000
	MinBet             = 10
	MaxBet             = 500
	reshuffleThreshold = 15
)

// Phase identifies where a round is in its lifecycle.
type Phase int

const (
	PhaseWelcome Phase = iota
	PhaseBetting
	PhasePlaying
	PhaseDealerTurn
	PhaseResult
	PhaseGameOver
)

// String returns the string representation of a phase
func (p Phase) String() string {
	switch p {
	case PhaseWelcome:
		return "welcome"
	case PhaseBetting:
		return "betting"
	case PhasePlaying:
		return "playing"
	case PhaseDealerTurn:
		return "dealerTurn"
	case PhaseResult:
		return "result"
	case PhaseGameOver:
		return "gameOver"
	default:
		return "unknown"
	}
}

// Outcome classifies how a hand (or a whole round) ended.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeWin
	OutcomeLose
	OutcomePush
	OutcomeBlackjack
	OutcomeBust
	OutcomeSplit // aggregate outcome of a split round
)

// String returns the string representation of an outcome
func (o Outcome) String() string {
	switch o {
	case OutcomeWin:
		return "win"
	case OutcomeLose:
		return "lose"
	case OutcomePush:
		return "push"
	case OutcomeBlackjack:
		return "blackjack"
	case OutcomeBust:
		return "bust"
	case OutcomeSplit:
		return "split"
	default:
		return "none"
	}
}

// Result records the terminal outcome of a round and the net chip
// movement relative to chips before the bet was placed.
type Result struct {
	Outcome    Outcome
	ChipChange int
}

// HandStatus tracks the sub-state of one split hand.
type HandStatus int

const (
	HandPlaying HandStatus = iota
	HandStand
	HandBust
)

// String returns the string representation of a hand status
func (s HandStatus) String() string {
	switch s {
	case HandPlaying:
		return "playing"
	case HandStand:
		return "stand"
	case HandBust:
		return "bust"
	default:
		return "unknown"
	}
}

// SplitHand is one of the two hands created by splitting a pair. Each
// carries an independent bet equal to the original wager and is played
// and settled on its own.
type SplitHand struct {
	Cards   []deck.Card
	Bet     int
	Status  HandStatus
	Outcome Outcome // set at settlement
}

// Stats holds cumulative session counters, updated only at settlement
// points and never decremented.
type Stats struct {
	HandsPlayed int
	HandsWon    int
	HandsLost   int
	HandsPushed int
	Blackjacks  int
	PeakChips   int
}

// Round is the aggregate state of a blackjack session. SplitHands is
// nil unless a split has occurred this round; PlayerHand is
// authoritative only when SplitHands is nil.
type Round struct {
	Deck       deck.Deck
	PlayerHand []deck.Card
	DealerHand []deck.Card
	SplitHands []SplitHand
	ActiveHand int
	Chips      int
	Bet        int
	Phase      Phase
	Result     Result
	Reshuffled bool
	Stats      Stats
}

// IsSplit returns true if this round has been split into two hands.
func (r Round) IsSplit() bool {
	return r.SplitHands != nil
}

// NewSession creates the initial state for a fresh session: full
// bankroll, no deck yet, welcome phase.
func NewSession() Round {
	return Round{
		Chips: StartingChips,
		Phase: PhaseWelcome,
		Stats: Stats{PeakChips: StartingChips},
	}
}

// StartRound moves a session into the betting phase, clearing all
// per-round state while preserving chips, deck and statistics.
func StartRound(r Round) Round {
	r.PlayerHand = nil
	r.DealerHand = nil
	r.SplitHands = nil
	r.ActiveHand = 0
	r.Bet = 0
	r.Result = Result{}
	r.Reshuffled = false
	r.Phase = PhaseBetting
	return r
}

// Deal replaces the deck with a freshly shuffled one when it has run
// low, then deals two cards each to player and dealer, alternating.
// Reshuffled is set only for the one deal a replacement affects.
func Deal(r Round, rng *rand.Rand) Round {
	r.Reshuffled = false
	if r.Deck.Remaining() < reshuffleThreshold {
		r.Deck = deck.New().Shuffle(rng)
		r.Reshuffled = true
	}

	var c deck.Card
	player := make([]deck.Card, 0, 2)
	dealer := make([]deck.Card, 0, 2)
	for i := 0; i < 2; i++ {
		c, r.Deck, _ = r.Deck.Draw()
		player = append(player, c)
		c, r.Deck, _ = r.Deck.Draw()
		dealer = append(dealer, c)
	}
	r.PlayerHand = player
	r.DealerHand = dealer
	return r
}

// CheckGameOver transitions to the game-over phase when the bankroll
// can no longer cover the minimum bet. Applied by the caller after
// every settlement.
func CheckGameOver(r Round) Round {
	if r.Chips < MinBet {
		r.Phase = PhaseGameOver
	}
	return r
}

// cloneCards copies a hand so transitions never alias the input
// round's card slices.
func cloneCards(cards []deck.Card) []deck.Card {
	out := make([]deck.Card, len(cards), len(cards)+1)
	copy(out, cards)
	return out
}
