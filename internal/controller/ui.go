// Package controller provides output adapters for displaying scales, chords and fingerings.
package controller

import (
	m "github.com/mouse-blink/fretwise/internal/model"
)

// UI defines how results are presented to the user.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	DisplayScale(base m.Pitch, name string, scale m.Scale) error
	DisplayChord(name string, chord m.Chord) error
	// DisplayFingerings shows at most limit fingerings; limit <= 0 shows all.
	DisplayFingerings(result m.SearchResult, limit int) error
	DisplayInstruments(instruments []m.Instrument) error
}

// limitFingerings trims fingerings to limit entries when limit is positive.
func limitFingerings(fingerings []m.Fingering, limit int) []m.Fingering {
	if limit > 0 && len(fingerings) > limit {
		return fingerings[:limit]
	}

	return fingerings
}

func pitchList(pitches []m.Pitch) string {
	return m.Chord(pitches).String()
}

func describeLayout(layout m.InstrumentLayout) string {
	tuning := make([]m.Pitch, 0, len(layout))
	for _, sl := range layout {
		tuning = append(tuning, sl.Open)
	}

	return pitchList(tuning)
}
