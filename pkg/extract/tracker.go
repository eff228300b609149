package extract

import "github.com/praetorian-inc/schematic/pkg/types"

// Tracker remembers which numbers have already been counted.
// Numbers are tracked by identity, so two runs with the same value stay distinct.
type Tracker struct {
	seen map[types.NumberID]bool
}

// NewTracker creates an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{seen: make(map[types.NumberID]bool)}
}

// Mark records id as counted and reports whether it was new.
func (t *Tracker) Mark(id types.NumberID) bool {
	if t.seen[id] {
		return false
	}
	t.seen[id] = true
	return true
}

// Len returns the number of counted numbers.
func (t *Tracker) Len() int {
	return len(t.seen)
}
