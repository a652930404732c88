package domain

import (
	"errors"
	"fmt"

	m "github.com/mouse-blink/fretwise/internal/model"
)

// ErrInvalidDegree is returned for chord shapes containing a degree below 1.
var ErrInvalidDegree = errors.New("invalid scale degree")

// ErrUnknownScale is returned when a scale pattern name is not registered.
var ErrUnknownScale = errors.New("unknown scale pattern")

// ErrUnknownShape is returned when a chord shape name is not registered.
var ErrUnknownShape = errors.New("unknown chord shape")

// MakeScale builds the 8-note scale starting at base.
func MakeScale(base m.Pitch, pattern m.ScalePattern) m.Scale {
	var scale m.Scale

	scale[0] = base
	for i := 1; i < m.ScaleDegrees; i++ {
		scale[i] = scale[i-1].AddSemitones(int(pattern[i-1]))
	}

	return scale
}

// MakeChord picks the pitches named by shape out of scale.
// Degrees 1..8 map to index d-1; higher degrees wrap to index d mod 8.
func MakeChord(scale m.Scale, shape m.ChordShape) (m.Chord, error) {
	chord := make(m.Chord, 0, len(shape))

	for _, degree := range shape {
		idx, err := degreeIndex(degree)
		if err != nil {
			return nil, err
		}

		chord = append(chord, scale[idx])
	}

	return chord, nil
}

func degreeIndex(degree int) (int, error) {
	if degree < 1 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidDegree, degree)
	}

	if degree <= m.ScaleDegrees {
		return degree - 1, nil
	}

	return degree % m.ScaleDegrees, nil
}

// LookupScalePattern returns the registered pattern called name.
func LookupScalePattern(name string) (m.ScalePattern, error) {
	pattern, ok := m.ScalePatterns[name]
	if !ok {
		return m.ScalePattern{}, fmt.Errorf("%w: %q", ErrUnknownScale, name)
	}

	return pattern, nil
}

// LookupChordShape returns the registered shape called name.
func LookupChordShape(name string) (m.ChordShape, error) {
	shape, ok := m.ChordShapes[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownShape, name)
	}

	return shape, nil
}
