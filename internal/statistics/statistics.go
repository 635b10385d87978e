// Package statistics aggregates match outcomes across a repeated run.
package statistics

import (
	"fmt"
	"math"
)

// MatchResult is the outcome of one match from bot A's perspective.
type MatchResult struct {
	MatchID string
	AWon    bool
	Failed  bool // match aborted (crash, timeout); excluded from the rate
}

// RunStats tracks win counts over a repeated run.
type RunStats struct {
	Matches int
	AWins   int
	BWins   int
	Failed  int
}

// Record folds one match result in.
func (s *RunStats) Record(r MatchResult) {
	s.Matches++
	switch {
	case r.Failed:
		s.Failed++
	case r.AWon:
		s.AWins++
	default:
		s.BWins++
	}
}

// Completed returns the number of matches that produced a result.
func (s *RunStats) Completed() int {
	return s.AWins + s.BWins
}

// WinRate returns bot A's win rate over completed matches, 0..1.
func (s *RunStats) WinRate() float64 {
	completed := s.Completed()
	if completed == 0 {
		return 0
	}
	return float64(s.AWins) / float64(completed)
}

// ConfidenceInterval returns the 95% interval around the win rate.
func (s *RunStats) ConfidenceInterval() (lower, upper float64) {
	n := float64(s.Completed())
	if n == 0 {
		return 0, 0
	}
	rate := s.WinRate()
	margin := 1.96 * math.Sqrt(rate*(1-rate)/n)
	return math.Max(0, rate-margin), math.Min(1, rate+margin)
}

// Summary renders a one-line report.
func (s *RunStats) Summary() string {
	lower, upper := s.ConfidenceInterval()
	return fmt.Sprintf("%d matches: A %d, B %d, failed %d (A win rate %.1f%%, 95%% CI %.1f%%-%.1f%%)",
		s.Matches, s.AWins, s.BWins, s.Failed,
		s.WinRate()*100, lower*100, upper*100)
}
