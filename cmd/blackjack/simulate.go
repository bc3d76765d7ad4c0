package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"

	"github.com/lox/blackjack-cli/internal/randutil"
	"github.com/lox/blackjack-cli/internal/simulator"
)

// SimulateCmd runs automated sessions and reports aggregate statistics
type SimulateCmd struct {
	Sessions int   `default:"10000" help:"Number of sessions to simulate"`
	Rounds   int   `default:"100" help:"Maximum rounds per session"`
	Bet      int   `default:"10" help:"Flat bet per round"`
	Seed     int64 `default:"0" help:"Base RNG seed (0 for random)"`
	Workers  int   `default:"0" help:"Concurrent workers (0 for GOMAXPROCS)"`
	Debug    bool  `help:"Enable debug logging"`
}

func (c *SimulateCmd) Run() error {
	level := log.InfoLevel
	if c.Debug {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{Level: level})

	seed := c.Seed
	if seed == 0 {
		seed = randutil.Seed()
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	fmt.Printf("Simulating %d sessions of up to %d rounds, %d per round (seed %d)\n\n",
		c.Sessions, c.Rounds, c.Bet, seed)

	start := time.Now()
	stats, err := simulator.New(simulator.Config{
		Sessions: c.Sessions,
		Rounds:   c.Rounds,
		Bet:      c.Bet,
		Seed:     seed,
		Workers:  c.Workers,
		Logger:   logger,
	}).Run(ctx)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	lo, hi := stats.ConfidenceInterval95()
	perRound := 0.0
	if stats.Rounds > 0 {
		perRound = stats.SumNet / float64(stats.Rounds)
	}

	fmt.Printf("Sessions:      %d (%d rounds, %d hands settled) in %s\n",
		stats.Sessions, stats.Rounds, stats.HandsSettled(), elapsed.Round(time.Millisecond))
	fmt.Printf("Net/session:   %.2f chips (median %.0f, stddev %.1f)\n",
		stats.Mean(), stats.Median(), stats.StdDev())
	fmt.Printf("95%% CI:        [%.2f, %.2f] chips/session\n", lo, hi)
	fmt.Printf("Edge:          %.4f chips/round at a %d flat bet\n", perRound, c.Bet)
	fmt.Printf("Hands:         %.1f%% won, %.1f%% pushed, %.1f%% lost\n",
		100*stats.WinRate(),
		100*float64(stats.HandsPushed)/float64(max(stats.HandsSettled(), 1)),
		100*float64(stats.HandsLost)/float64(max(stats.HandsSettled(), 1)))
	fmt.Printf("Blackjacks:    %.2f%% of hands\n", 100*stats.BlackjackRate())
	fmt.Printf("Busted out:    %.1f%% of sessions (best peak %d chips)\n",
		100*stats.BustOutRate(), stats.MaxPeak)
	return nil
}
