package domain

import (
	m "github.com/mouse-blink/fretwise/internal/model"
)

// Counter walks every fingering of a layout as a mixed-radix number, one
// digit per string. Each digit runs Muted, Open, FirstFret .. LastFret and
// the last string is the least significant digit.
//
// The fingering returned by Current is reused between calls to Next; clone
// it before keeping it.
type Counter struct {
	layout  m.InstrumentLayout
	current m.Fingering
	fixed   int // leading strings held constant
	done    bool
}

// NewCounter returns a counter positioned at the all-muted fingering.
func NewCounter(layout m.InstrumentLayout) *Counter {
	return &Counter{
		layout:  layout,
		current: m.NewFingering(len(layout)),
	}
}

// newPartitionCounter returns a counter whose leading strings are pinned to
// prefix; only the remaining strings are advanced.
func newPartitionCounter(layout m.InstrumentLayout, prefix ...m.StringState) *Counter {
	c := NewCounter(layout)
	copy(c.current, prefix)
	c.fixed = len(prefix)

	return c
}

// Current returns the working fingering.
func (c *Counter) Current() m.Fingering {
	return c.current
}

// Next advances to the following fingering. It returns false once every
// combination has been produced, leaving the counter all-muted again.
func (c *Counter) Next() bool {
	if c.done {
		return false
	}

	for i := len(c.current) - 1; i >= c.fixed; i-- {
		if advanceString(c.layout[i], &c.current[i]) {
			return true
		}
	}

	c.done = true

	return false
}

// advanceString increments one digit and reports false when it wrapped back
// to Muted, which carries into the previous string.
func advanceString(sl m.StringLayout, s *m.StringState) bool {
	switch {
	case s.IsMuted():
		*s = m.Open
	case s.IsOpen():
		*s = m.Fret(sl.FirstFret)
	case int(*s) < sl.LastFret:
		*s++
	default:
		*s = m.Muted

		return false
	}

	return true
}

// stringStates lists the digit values of one string in counting order.
func stringStates(sl m.StringLayout) []m.StringState {
	states := make([]m.StringState, 0, sl.FretCount()+2)
	states = append(states, m.Muted, m.Open)

	for fret := sl.FirstFret; fret <= sl.LastFret; fret++ {
		states = append(states, m.Fret(fret))
	}

	return states
}

// CountCombinations returns the size of the search space for layout:
// the product over strings of (LastFret - FirstFret + 3).
func CountCombinations(layout m.InstrumentLayout) int {
	total := 1
	for _, sl := range layout {
		total *= sl.FretCount() + 2
	}

	return total
}

// Enumerate calls visit for every fingering of layout in counting order,
// starting with all-muted. The fingering passed to visit is reused; visit
// must clone it to keep it. Returning false from visit stops early.
func Enumerate(layout m.InstrumentLayout, visit func(m.Fingering) bool) {
	counter := NewCounter(layout)

	for {
		if !visit(counter.Current()) {
			return
		}

		if !counter.Next() {
			return
		}
	}
}
