// Package model defines the music theory and instrument data structures.
package model

import (
	"errors"
	"fmt"
	"strings"
)

// PitchClassCount is the number of equal-tempered pitch classes in an octave.
const PitchClassCount = 12

// ErrUnknownPitch is returned when a pitch name cannot be parsed.
var ErrUnknownPitch = errors.New("unknown pitch")

// Pitch is one of the 12 pitch classes, always kept in [0,11].
type Pitch int

// The 12 pitch classes, starting from A.
const (
	A Pitch = iota
	ASharp
	B
	C
	CSharp
	D
	DSharp
	E
	F
	FSharp
	G
	GSharp
)

var pitchNames = [PitchClassCount]string{"A", "A#", "B", "C", "C#", "D", "D#", "E", "F", "F#", "G", "G#"}

// AllPitches lists the pitch classes in ascending order from A.
var AllPitches = []Pitch{A, ASharp, B, C, CSharp, D, DSharp, E, F, FSharp, G, GSharp}

// AddSemitones returns the pitch n semitones above p. Negative n moves down.
func (p Pitch) AddSemitones(n int) Pitch {
	v := (int(p) + n) % PitchClassCount
	if v < 0 {
		v += PitchClassCount
	}

	return Pitch(v)
}

// String returns the sharp spelling of the pitch.
func (p Pitch) String() string {
	if p < 0 || int(p) >= PitchClassCount {
		return fmt.Sprintf("Pitch(%d)", int(p))
	}

	return pitchNames[p]
}

// SemitonesAboveC returns the distance from the C at or below p.
func (p Pitch) SemitonesAboveC() int {
	return int(p.AddSemitones(-int(C)))
}

// ParsePitch parses a pitch name such as "C", "c#", "Db" or "F♯".
func ParsePitch(name string) (Pitch, error) {
	s := strings.TrimSpace(name)
	if s == "" {
		return 0, fmt.Errorf("%w: empty name", ErrUnknownPitch)
	}

	letter := strings.ToUpper(s[:1])

	var base Pitch

	found := false

	for i, n := range pitchNames {
		if n == letter {
			base = Pitch(i)
			found = true

			break
		}
	}

	if !found {
		return 0, fmt.Errorf("%w: %q", ErrUnknownPitch, name)
	}

	offset := 0

	for _, r := range s[1:] {
		switch r {
		case '#', '♯':
			offset++
		case 'b', '♭':
			offset--
		default:
			return 0, fmt.Errorf("%w: %q", ErrUnknownPitch, name)
		}
	}

	return base.AddSemitones(offset), nil
}
