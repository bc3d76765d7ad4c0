// Package simulator plays automated blackjack sessions against the
// round engine and aggregates the results. It exists to measure the
// house edge of the fixed strategy and to soak-test the engine across
// millions of state transitions.
package simulator

import (
	"context"
	"fmt"
	"runtime"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/lox/blackjack-cli/internal/game"
	"github.com/lox/blackjack-cli/internal/randutil"
	"github.com/lox/blackjack-cli/internal/statistics"
)

// Config holds configuration for a simulation run
type Config struct {
	Sessions int   // number of independent sessions to play
	Rounds   int   // maximum rounds per session
	Bet      int   // flat bet per round
	Seed     int64 // base seed; session i derives seed+i
	Workers  int   // concurrent workers, defaults to GOMAXPROCS
	Logger   *log.Logger
}

// Simulator runs blackjack session simulations
type Simulator struct {
	config Config
}

// New creates a new simulator with the given configuration
func New(config Config) *Simulator {
	if config.Workers <= 0 {
		config.Workers = runtime.GOMAXPROCS(0)
	}
	if config.Bet < game.MinBet {
		config.Bet = game.MinBet
	}
	if config.Bet > game.MaxBet {
		config.Bet = game.MaxBet
	}
	return &Simulator{config: config}
}

// Run executes the simulation and returns aggregate statistics.
// Sessions are distributed across workers; each session has its own
// seed derived from the base seed, so results are independent of the
// worker count and reproducible for a given configuration.
func (s *Simulator) Run(ctx context.Context) (*statistics.Statistics, error) {
	sessionsPerWorker := s.config.Sessions / s.config.Workers
	remainder := s.config.Sessions % s.config.Workers

	g, ctx := errgroup.WithContext(ctx)
	results := make(chan *statistics.Statistics, s.config.Workers)

	next := 0
	for w := 0; w < s.config.Workers; w++ {
		count := sessionsPerWorker
		if w < remainder {
			count++
		}
		first := next
		next += count

		g.Go(func() error {
			stats := &statistics.Statistics{}
			for i := first; i < first+count; i++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				stats.Add(s.playSession(s.config.Seed + int64(i)))
			}
			select {
			case results <- stats:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("simulation failed: %w", err)
	}
	close(results)

	total := &statistics.Statistics{}
	for stats := range results {
		total.Merge(stats)
	}
	return total, nil
}

// playSession runs one full session: flat-betting the configured
// amount every round until the round limit or the bankroll drops below
// the table minimum.
func (s *Simulator) playSession(seed int64) statistics.SessionResult {
	rng := randutil.New(seed)
	strategy := BasicStrategy{}

	r := game.NewSession()
	rounds := 0

	for rounds < s.config.Rounds {
		r = game.StartRound(r)

		bet := s.config.Bet
		if bet > r.Chips {
			bet = r.Chips
		}
		next, err := game.PlaceBet(r, bet)
		if err != nil {
			break // bankroll below the minimum
		}
		r = next

		r = game.Deal(r, rng)
		r = game.ResolveNaturals(r)

		for r.Phase == game.PhasePlaying {
			switch strategy.Decide(r) {
			case game.ActionHit:
				r = game.Hit(r)
			case game.ActionDouble:
				r = game.Double(r)
			case game.ActionSplit:
				r = game.Split(r)
			case game.ActionSplitHit:
				r = game.SplitHit(r)
			case game.ActionSplitStand:
				r = game.SplitStand(r)
			default:
				r = game.Stand(r)
			}
		}

		if r.Phase == game.PhaseDealerTurn {
			for !game.DealerDone(r) {
				r = game.DealerDraw(r)
			}
			r = game.Settle(r)
		}

		rounds++
		r = game.CheckGameOver(r)
		if r.Phase == game.PhaseGameOver {
			break
		}
	}

	if s.config.Logger != nil {
		s.config.Logger.Debug("session complete",
			"seed", seed, "rounds", rounds, "chips", r.Chips)
	}

	return statistics.SessionResult{
		NetChips:    r.Chips - game.StartingChips,
		Rounds:      rounds,
		HandsWon:    r.Stats.HandsWon,
		HandsLost:   r.Stats.HandsLost,
		HandsPushed: r.Stats.HandsPushed,
		Blackjacks:  r.Stats.Blackjacks,
		PeakChips:   r.Stats.PeakChips,
		BustedOut:   r.Phase == game.PhaseGameOver,
		Seed:        seed,
	}
}
