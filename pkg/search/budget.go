package search

import "time"

// Budget is a soft wall-clock limit, checked only between iterative-
// deepening iterations (spec §5: the search never suspends mid-tree). It has
// no hard limit: there is no background timer forcibly halting a running
// iteration, since the single-threaded search has nowhere to be pre-empted
// from safely.
//
// Grounded on the teacher's TimeControl.Limits soft/hard split, adapted
// from a goroutine-cancellation scheme to a poll-between-iterations one.
type Budget struct {
	start time.Time
	soft  time.Duration
}

// NewBudget returns a budget with the given soft wall-clock limit. A
// non-positive limit means unlimited (bounded only by Options.DepthLimit).
func NewBudget(soft time.Duration) Budget {
	return Budget{start: time.Now(), soft: soft}
}

// Expired reports whether the soft limit has elapsed since the budget was
// created. Checked once per completed iterative-deepening depth.
func (b Budget) Expired() bool {
	return b.soft > 0 && time.Since(b.start) >= b.soft
}

func (b Budget) Elapsed() time.Duration {
	return time.Since(b.start)
}
