package model

import (
	"strconv"
	"strings"
)

// StringState is how one string is played: Muted, Open, or a fret number >= 1.
type StringState int

// Special string states. Any positive value is a fret number.
const (
	Muted StringState = -1
	Open  StringState = 0
)

// Fret returns the state for fretting at n.
func Fret(n int) StringState {
	return StringState(n)
}

// IsMuted reports whether the string is not played.
func (s StringState) IsMuted() bool { return s == Muted }

// IsOpen reports whether the string is played unfretted.
func (s StringState) IsOpen() bool { return s == Open }

// IsFretted reports whether the string is held at a fret.
func (s StringState) IsFretted() bool { return s > 0 }

// String returns "x" for muted strings and the fret number otherwise.
func (s StringState) String() string {
	if s.IsMuted() {
		return "x"
	}

	return strconv.Itoa(int(s))
}

// Fingering assigns a state to every string of a layout, in layout order.
type Fingering []StringState

// NewFingering returns an all-muted fingering for n strings.
func NewFingering(n int) Fingering {
	f := make(Fingering, n)
	for i := range f {
		f[i] = Muted
	}

	return f
}

// Clone returns a copy that does not share storage with f.
func (f Fingering) Clone() Fingering {
	out := make(Fingering, len(f))
	copy(out, f)

	return out
}

// PlayedCount returns the number of strings that are not muted.
func (f Fingering) PlayedCount() int {
	count := 0

	for _, s := range f {
		if !s.IsMuted() {
			count++
		}
	}

	return count
}

// SoundingPitch resolves the pitch of state s on string sl.
// The second result is false for a muted string.
func SoundingPitch(sl StringLayout, s StringState) (Pitch, bool) {
	if s.IsMuted() {
		return 0, false
	}

	return sl.Open.AddSemitones(int(s)), true
}

// Pitches returns the sounding pitches of the played strings, low string first.
// The layout must have one entry per string of f.
func (f Fingering) Pitches(layout InstrumentLayout) []Pitch {
	pitches := make([]Pitch, 0, len(f))

	for i, s := range f {
		if p, ok := SoundingPitch(layout[i], s); ok {
			pitches = append(pitches, p)
		}
	}

	return pitches
}

// String renders the fingering as space-separated states, e.g. "x 0 2 3 x".
func (f Fingering) String() string {
	parts := make([]string, 0, len(f))
	for _, s := range f {
		parts = append(parts, s.String())
	}

	return strings.Join(parts, " ")
}

