// Package statistics aggregates results across simulated blackjack
// sessions for the simulate command's report.
package statistics

import (
	"math"
	"sort"
)

// SessionResult is the outcome of one simulated session.
type SessionResult struct {
	NetChips    int // final chips minus starting chips
	Rounds      int // rounds played before stopping
	HandsWon    int
	HandsLost   int
	HandsPushed int
	Blackjacks  int
	PeakChips   int
	BustedOut   bool  // session ended below the minimum bet
	Seed        int64 // per-session seed, for replay
}

// Statistics tracks aggregate results across many sessions.
type Statistics struct {
	Sessions int
	SumNet   float64
	SumNet2  float64   // sum of squares for variance calculation
	Values   []float64 // all net results, for median/percentiles

	Rounds      int
	HandsWon    int
	HandsLost   int
	HandsPushed int
	Blackjacks  int
	BustedOut   int
	MaxPeak     int
}

// Add incorporates a session result into the statistics.
func (s *Statistics) Add(result SessionResult) {
	net := float64(result.NetChips)
	s.Sessions++
	s.SumNet += net
	s.SumNet2 += net * net
	s.Values = append(s.Values, net)

	s.Rounds += result.Rounds
	s.HandsWon += result.HandsWon
	s.HandsLost += result.HandsLost
	s.HandsPushed += result.HandsPushed
	s.Blackjacks += result.Blackjacks
	if result.BustedOut {
		s.BustedOut++
	}
	if result.PeakChips > s.MaxPeak {
		s.MaxPeak = result.PeakChips
	}
}

// Merge folds another statistics value into this one. Used to combine
// per-worker results after a concurrent run.
func (s *Statistics) Merge(other *Statistics) {
	s.Sessions += other.Sessions
	s.SumNet += other.SumNet
	s.SumNet2 += other.SumNet2
	s.Values = append(s.Values, other.Values...)
	s.Rounds += other.Rounds
	s.HandsWon += other.HandsWon
	s.HandsLost += other.HandsLost
	s.HandsPushed += other.HandsPushed
	s.Blackjacks += other.Blackjacks
	s.BustedOut += other.BustedOut
	if other.MaxPeak > s.MaxPeak {
		s.MaxPeak = other.MaxPeak
	}
}

// Mean returns the mean net chips per session.
func (s *Statistics) Mean() float64 {
	if s.Sessions == 0 {
		return 0
	}
	return s.SumNet / float64(s.Sessions)
}

// Variance returns the sample variance of session results.
func (s *Statistics) Variance() float64 {
	if s.Sessions < 2 {
		return 0
	}
	mean := s.Mean()
	return (s.SumNet2 - float64(s.Sessions)*mean*mean) / float64(s.Sessions-1)
}

// StdDev returns the sample standard deviation of session results.
func (s *Statistics) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean.
func (s *Statistics) StdError() float64 {
	if s.Sessions == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Sessions))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean
func (s *Statistics) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}

// Median returns the median net result across sessions.
func (s *Statistics) Median() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)

	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return sorted[n/2]
}

// HandsSettled returns the total number of settled hands. Split rounds
// settle two hands, so this can exceed Rounds.
func (s *Statistics) HandsSettled() int {
	return s.HandsWon + s.HandsLost + s.HandsPushed
}

// WinRate returns the fraction of settled hands the player won.
func (s *Statistics) WinRate() float64 {
	settled := s.HandsSettled()
	if settled == 0 {
		return 0
	}
	return float64(s.HandsWon) / float64(settled)
}

// BlackjackRate returns naturals per settled hand.
func (s *Statistics) BlackjackRate() float64 {
	settled := s.HandsSettled()
	if settled == 0 {
		return 0
	}
	return float64(s.Blackjacks) / float64(settled)
}

// BustOutRate returns the fraction of sessions that ended with the
// bankroll below the minimum bet.
func (s *Statistics) BustOutRate() float64 {
	if s.Sessions == 0 {
		return 0
	}
	return float64(s.BustedOut) / float64(s.Sessions)
}
