package adapter

import (
	"errors"
	"fmt"
	"io"
	"os"

	m "github.com/mouse-blink/fretwise/internal/model"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

const (
	ticksPerQuarter = 480
	barTicks        = 4 * ticksPerQuarter
	strumTicks      = 24
	exportChannel   = 0
	exportVelocity  = 90
	exportTempo     = 90.0
)

// ErrNoteOutOfRange is returned when a fingering sounds outside MIDI keys 0..127.
var ErrNoteOutOfRange = errors.New("note outside MIDI range")

// MIDIExporter writes fingering search results as Standard MIDI Files.
type MIDIExporter interface {
	Export(path m.Path, result m.SearchResult) error
	Write(w io.Writer, result m.SearchResult) error
}

type midiExporter struct{}

// NewMIDIExporter constructs a MIDIExporter.
func NewMIDIExporter() MIDIExporter {
	return &midiExporter{}
}

// Export creates path and writes result into it.
func (e *midiExporter) Export(path m.Path, result m.SearchResult) error {
	f, err := os.Create(string(path))
	if err != nil {
		return fmt.Errorf("failed to create midi file: %w", err)
	}

	if err := e.Write(f, result); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

// Write renders every fingering as one strummed bar, low string first.
func (e *midiExporter) Write(w io.Writer, result m.SearchResult) error {
	s := smf.New()
	s.TimeFormat = smf.MetricTicks(ticksPerQuarter)

	var tr smf.Track

	tr.Add(0, smf.MetaTrackSequenceName(fmt.Sprintf("%s %s %s on %s",
		result.Base, result.ScaleName, result.ShapeName, result.Instrument.Name)))
	tr.Add(0, smf.MetaMeter(4, 4))
	tr.Add(0, smf.MetaTempo(exportTempo))

	for _, f := range result.Fingerings {
		keys, err := fingeringKeys(result.Instrument.Layout, f)
		if err != nil {
			return err
		}

		addStrum(&tr, keys)
	}

	tr.Close(0)

	if err := s.Add(tr); err != nil {
		return fmt.Errorf("failed to add midi track: %w", err)
	}

	if _, err := s.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write midi: %w", err)
	}

	return nil
}

// addStrum appends one bar: staggered note-ons, then all note-offs at the bar end.
// A fingering with no played strings becomes a bar of rest.
func addStrum(tr *smf.Track, keys []uint8) {
	if len(keys) == 0 {
		tr.Add(barTicks, smf.MetaText("rest"))
		return
	}

	var elapsed uint32

	for i, key := range keys {
		var delta uint32
		if i > 0 {
			delta = strumTicks
		}

		tr.Add(delta, midi.NoteOn(exportChannel, key, exportVelocity))
		elapsed += delta
	}

	for i, key := range keys {
		var delta uint32
		if i == 0 {
			delta = barTicks - elapsed
		}

		tr.Add(delta, midi.NoteOff(exportChannel, key))
	}
}

// fingeringKeys converts the played strings of f to MIDI key numbers.
func fingeringKeys(layout m.InstrumentLayout, f m.Fingering) ([]uint8, error) {
	if len(f) != len(layout) {
		return nil, fmt.Errorf("fingering %s has %d strings, instrument has %d", f, len(f), len(layout))
	}

	keys := make([]uint8, 0, len(f))

	for i, state := range f {
		if state.IsMuted() {
			continue
		}

		sl := layout[i]
		key := 12*(sl.Octave+1) + sl.Open.SemitonesAboveC() + int(state)

		if key < 0 || key > 127 {
			return nil, fmt.Errorf("%w: string %d fret %s gives %d", ErrNoteOutOfRange, i+1, state, key)
		}

		keys = append(keys, uint8(key))
	}

	return keys, nil
}
