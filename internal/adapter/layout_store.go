// Package adapter connects the domain to instrument files and MIDI output.
package adapter

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	m "github.com/mouse-blink/fretwise/internal/model"
	"gopkg.in/yaml.v3"
)

//go:embed instruments/builtin.yaml
var builtinLayouts []byte

// ErrUnknownInstrument is returned when no layout is registered under a name.
var ErrUnknownInstrument = errors.New("unknown instrument")

// ErrInvalidLayout is returned for layout files that fail validation.
var ErrInvalidLayout = errors.New("invalid instrument layout")

// LayoutStore provides named instrument layouts.
type LayoutStore interface {
	List() ([]m.Instrument, error)
	Get(name string) (m.Instrument, error)
}

type layoutFile struct {
	Instruments []instrumentEntry `yaml:"instruments"`
}

type instrumentEntry struct {
	Name    string        `yaml:"name"`
	Strings []stringEntry `yaml:"strings"`
}

type stringEntry struct {
	Open   string `yaml:"open"`
	Octave int    `yaml:"octave"`
	First  int    `yaml:"first"`
	Last   int    `yaml:"last"`
}

type layoutStore struct {
	instruments map[string]m.Instrument
}

// NewLayoutStore loads the built-in instruments and then each extra file or
// directory in order. Later definitions replace earlier ones with the same name.
func NewLayoutStore(extra ...m.Path) (LayoutStore, error) {
	store := &layoutStore{instruments: make(map[string]m.Instrument)}

	if err := store.load(bytes.NewReader(builtinLayouts), "builtin"); err != nil {
		return nil, err
	}

	for _, root := range extra {
		paths, err := expandLayoutPath(root)
		if err != nil {
			return nil, err
		}

		for _, path := range paths {
			if err := store.loadFile(path); err != nil {
				return nil, err
			}
		}
	}

	return store, nil
}

func (s *layoutStore) loadFile(path m.Path) error {
	f, err := os.Open(string(path))
	if err != nil {
		return fmt.Errorf("failed to open layout file: %w", err)
	}
	defer f.Close()

	return s.load(f, string(path))
}

func (s *layoutStore) load(r io.Reader, origin string) error {
	var file layoutFile

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("failed to decode %s: %w", origin, err)
	}

	for _, entry := range file.Instruments {
		inst, err := entry.toInstrument()
		if err != nil {
			return fmt.Errorf("%s: %w", origin, err)
		}

		s.instruments[inst.Name] = inst
	}

	return nil
}

func (e instrumentEntry) toInstrument() (m.Instrument, error) {
	if e.Name == "" {
		return m.Instrument{}, fmt.Errorf("%w: missing name", ErrInvalidLayout)
	}

	layout := make(m.InstrumentLayout, 0, len(e.Strings))

	for i, se := range e.Strings {
		open, err := m.ParsePitch(se.Open)
		if err != nil {
			return m.Instrument{}, fmt.Errorf("%w: %s string %d: %w", ErrInvalidLayout, e.Name, i+1, err)
		}

		if se.First < 1 || se.Last < se.First {
			return m.Instrument{}, fmt.Errorf("%w: %s string %d: fret range %d..%d", ErrInvalidLayout, e.Name, i+1, se.First, se.Last)
		}

		layout = append(layout, m.StringLayout{
			Open:      open,
			Octave:    se.Octave,
			FirstFret: se.First,
			LastFret:  se.Last,
		})
	}

	return m.Instrument{Name: e.Name, Layout: layout}, nil
}

func (s *layoutStore) List() ([]m.Instrument, error) {
	out := make([]m.Instrument, 0, len(s.instruments))
	for _, inst := range s.instruments {
		out = append(out, inst)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })

	return out, nil
}

func (s *layoutStore) Get(name string) (m.Instrument, error) {
	inst, ok := s.instruments[name]
	if !ok {
		return m.Instrument{}, fmt.Errorf("%w: %q", ErrUnknownInstrument, name)
	}

	return inst, nil
}
