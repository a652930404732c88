package model

// Step is the size of a scale interval in semitones.
type Step int

// Step sizes.
const (
	Half  Step = 1
	Whole Step = 2
)

// ScaleDegrees is the number of notes in a scale including the octave.
const ScaleDegrees = 8

// ScalePattern holds the semitone gaps between the 8 notes of a scale.
type ScalePattern [ScaleDegrees - 1]Step

// Scale is an octave-inclusive sequence of pitches; degree 1 is index 0.
type Scale [ScaleDegrees]Pitch

// Predefined scale patterns.
var (
	MajorPattern         = ScalePattern{Whole, Whole, Half, Whole, Whole, Whole, Half}
	MinorPattern         = ScalePattern{Whole, Half, Whole, Whole, Half, Whole, Whole}
	DorianPattern        = ScalePattern{Whole, Half, Whole, Whole, Whole, Half, Whole}
	PhrygianPattern      = ScalePattern{Half, Whole, Whole, Whole, Half, Whole, Whole}
	LydianPattern        = ScalePattern{Whole, Whole, Whole, Half, Whole, Whole, Half}
	MixolydianPattern    = ScalePattern{Whole, Whole, Half, Whole, Whole, Half, Whole}
	LocrianPattern       = ScalePattern{Half, Whole, Whole, Half, Whole, Whole, Whole}
	HarmonicMinorPattern = ScalePattern{Whole, Half, Whole, Whole, Half, Whole + Half, Half}
)

// ScalePatterns maps pattern names to patterns.
var ScalePatterns = map[string]ScalePattern{
	"major":          MajorPattern,
	"minor":          MinorPattern,
	"ionian":         MajorPattern,
	"aeolian":        MinorPattern,
	"dorian":         DorianPattern,
	"phrygian":       PhrygianPattern,
	"lydian":         LydianPattern,
	"mixolydian":     MixolydianPattern,
	"locrian":        LocrianPattern,
	"harmonic-minor": HarmonicMinorPattern,
}
