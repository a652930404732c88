package domain

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mouse-blink/fretwise/internal/adapter"
	"github.com/mouse-blink/fretwise/internal/controller"
	m "github.com/mouse-blink/fretwise/internal/model"
)

// ScaleArgs selects a scale by base note and pattern name.
type ScaleArgs struct {
	Base    string
	Pattern string
}

// ChordArgs selects a chord shape within a scale.
type ChordArgs struct {
	ScaleArgs
	Shape string
}

// FindArgs describes a fingering search and how to present it.
type FindArgs struct {
	ChordArgs
	Instrument   string
	MinNoteCount int
	Limit        int
	MIDIOut      m.Path
}

// Workflow defines the user-facing operations of the tool.
type Workflow interface {
	Scale(args ScaleArgs) error
	Chord(args ChordArgs) error
	Find(ctx context.Context, args FindArgs) error
	Search(ctx context.Context, args FindArgs) (m.SearchResult, error)
	Instruments() error
}

type workflow struct {
	store    adapter.LayoutStore
	exporter adapter.MIDIExporter
	ui       controller.UI
	finder   Finder
	logger   *slog.Logger
}

// NewWorkflow creates a new Workflow instance with the provided adapters.
func NewWorkflow(
	store adapter.LayoutStore,
	exporter adapter.MIDIExporter,
	ui controller.UI,
	finder Finder,
	logger *slog.Logger,
) Workflow {
	if logger == nil {
		logger = slog.Default()
	}

	return &workflow{
		store:    store,
		exporter: exporter,
		ui:       ui,
		finder:   finder,
		logger:   logger,
	}
}

func (w *workflow) Scale(args ScaleArgs) error {
	base, scale, err := resolveScale(args)
	if err != nil {
		return err
	}

	return w.ui.DisplayScale(base, args.Pattern, scale)
}

func (w *workflow) Chord(args ChordArgs) error {
	_, _, chord, err := resolveChord(args)
	if err != nil {
		return err
	}

	return w.ui.DisplayChord(args.Shape, chord)
}

func (w *workflow) Find(ctx context.Context, args FindArgs) error {
	result, err := w.Search(ctx, args)
	if err != nil {
		return err
	}

	if args.MIDIOut != "" {
		if err := w.exporter.Export(args.MIDIOut, result); err != nil {
			return fmt.Errorf("failed to export midi: %w", err)
		}

		w.logger.Info("exported fingerings", "path", args.MIDIOut, "count", len(result.Fingerings))
	}

	return w.ui.DisplayFingerings(result, args.Limit)
}

func (w *workflow) Search(ctx context.Context, args FindArgs) (m.SearchResult, error) {
	base, scale, chord, err := resolveChord(args.ChordArgs)
	if err != nil {
		return m.SearchResult{}, err
	}

	inst, err := w.store.Get(args.Instrument)
	if err != nil {
		return m.SearchResult{}, err
	}

	minNotes := max(args.MinNoteCount, 0)

	w.logger.Debug("searching fingerings",
		"chord", chord.String(),
		"instrument", inst.Name,
		"min_notes", minNotes,
	)

	fingerings, err := w.finder.Find(ctx, FindRequest{
		Chord:        chord,
		Layout:       inst.Layout,
		MinNoteCount: minNotes,
	})
	if err != nil {
		return m.SearchResult{}, fmt.Errorf("failed to find fingerings: %w", err)
	}

	return m.SearchResult{
		Base:         base,
		ScaleName:    args.Pattern,
		Scale:        scale,
		ShapeName:    args.Shape,
		Chord:        chord,
		Instrument:   inst,
		MinNoteCount: minNotes,
		Combinations: CountCombinations(inst.Layout),
		Fingerings:   fingerings,
	}, nil
}

func (w *workflow) Instruments() error {
	instruments, err := w.store.List()
	if err != nil {
		return fmt.Errorf("failed to list instruments: %w", err)
	}

	return w.ui.DisplayInstruments(instruments)
}

func resolveScale(args ScaleArgs) (m.Pitch, m.Scale, error) {
	base, err := m.ParsePitch(args.Base)
	if err != nil {
		return 0, m.Scale{}, err
	}

	pattern, err := LookupScalePattern(args.Pattern)
	if err != nil {
		return 0, m.Scale{}, err
	}

	return base, MakeScale(base, pattern), nil
}

func resolveChord(args ChordArgs) (m.Pitch, m.Scale, m.Chord, error) {
	base, scale, err := resolveScale(args.ScaleArgs)
	if err != nil {
		return 0, m.Scale{}, nil, err
	}

	shape, err := LookupChordShape(args.Shape)
	if err != nil {
		return 0, m.Scale{}, nil, err
	}

	chord, err := MakeChord(scale, shape)
	if err != nil {
		return 0, m.Scale{}, nil, err
	}

	return base, scale, chord, nil
}
