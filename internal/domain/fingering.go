package domain

import (
	"context"
	"errors"
	"fmt"

	m "github.com/mouse-blink/fretwise/internal/model"
)

// MaxFingerDistance bounds the fret distance a hand can cover. A fingering is
// playable while (maxFret-minFret)^2 < MaxFingerDistance^2.
const MaxFingerDistance = 4

// ErrMismatchedLayout is returned when a fingering and a layout disagree on
// the number of strings.
var ErrMismatchedLayout = errors.New("fingering does not match layout")

// ErrInvalidLayout is returned for layouts whose fret ranges cannot be counted.
var ErrInvalidLayout = errors.New("invalid instrument layout")

// cancelCheckInterval is how many fingerings collect visits between context checks.
const cancelCheckInterval = 1 << 12

// ValidateLayout checks that every string has FirstFret >= 1 and
// LastFret >= FirstFret, which the counter needs to terminate.
func ValidateLayout(layout m.InstrumentLayout) error {
	for i, sl := range layout {
		if sl.FirstFret < 1 || sl.LastFret < sl.FirstFret {
			return fmt.Errorf("%w: string %d has fret range %d..%d", ErrInvalidLayout, i+1, sl.FirstFret, sl.LastFret)
		}
	}

	return nil
}

// FingeringSpan returns the lowest and highest fretted positions. ok is false
// when no string is fretted.
func FingeringSpan(f m.Fingering) (minFret, maxFret int, ok bool) {
	for _, s := range f {
		if !s.IsFretted() {
			continue
		}

		fret := int(s)
		if !ok {
			minFret, maxFret, ok = fret, fret, true

			continue
		}

		minFret = min(minFret, fret)
		maxFret = max(maxFret, fret)
	}

	return minFret, maxFret, ok
}

// IsPlayable applies the span constraint.
func IsPlayable(f m.Fingering) bool {
	lo, hi, ok := FingeringSpan(f)
	if !ok {
		return true
	}

	d := hi - lo

	return d*d < MaxFingerDistance*MaxFingerDistance
}

// IsValid reports whether f is playable and every played string sounds a
// pitch of chord. Muted strings are ignored.
func IsValid(chord m.Chord, layout m.InstrumentLayout, f m.Fingering) (bool, error) {
	if len(f) != len(layout) {
		return false, fmt.Errorf("%w: %d states for %d strings", ErrMismatchedLayout, len(f), len(layout))
	}

	if !IsPlayable(f) {
		return false, nil
	}

	for i, s := range f {
		p, played := m.SoundingPitch(layout[i], s)
		if !played {
			continue
		}

		if !chord.Contains(p) {
			return false, nil
		}
	}

	return true, nil
}

// FindAllFingeringsForChord returns every valid fingering of chord on layout
// with at least minNoteCount played strings, in counting order.
func FindAllFingeringsForChord(chord m.Chord, layout m.InstrumentLayout, minNoteCount int) ([]m.Fingering, error) {
	if err := ValidateLayout(layout); err != nil {
		return nil, err
	}

	return collect(context.Background(), chord, layout, minNoteCount, NewCounter(layout))
}

// collect drains counter and keeps clones of the accepted fingerings. It stops
// with ctx.Err() once ctx is done.
func collect(ctx context.Context, chord m.Chord, layout m.InstrumentLayout, minNoteCount int, counter *Counter) ([]m.Fingering, error) {
	var found []m.Fingering

	for step := 1; ; step++ {
		if step%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		f := counter.Current()

		ok, err := IsValid(chord, layout, f)
		if err != nil {
			return nil, err
		}

		if ok && f.PlayedCount() >= minNoteCount {
			found = append(found, f.Clone())
		}

		if !counter.Next() {
			return found, nil
		}
	}
}
