package model

import "strings"

// ChordShape lists 1-indexed scale degrees, e.g. {1, 3, 5}.
// Degrees above 8 denote extended tones and wrap back into the scale.
type ChordShape []int

// Chord is an ordered list of pitches. Duplicates are kept.
type Chord []Pitch

// Predefined chord shapes.
var (
	TriadShape      = ChordShape{1, 3, 5}
	PowerShape      = ChordShape{1, 5}
	SeventhShape    = ChordShape{1, 3, 5, 7}
	NinthShape      = ChordShape{1, 3, 5, 7, 9}
	EleventhShape   = ChordShape{1, 3, 5, 7, 9, 11}
	ThirteenthShape = ChordShape{1, 3, 5, 7, 9, 13}
)

// ChordShapes maps shape names to shapes.
var ChordShapes = map[string]ChordShape{
	"triad":      TriadShape,
	"power":      PowerShape,
	"seventh":    SeventhShape,
	"ninth":      NinthShape,
	"eleventh":   EleventhShape,
	"thirteenth": ThirteenthShape,
}

// Contains reports whether p is one of the chord's pitches.
func (c Chord) Contains(p Pitch) bool {
	for _, cp := range c {
		if cp == p {
			return true
		}
	}

	return false
}

// String joins the pitch names with spaces.
func (c Chord) String() string {
	names := make([]string, 0, len(c))
	for _, p := range c {
		names = append(names, p.String())
	}

	return strings.Join(names, " ")
}
