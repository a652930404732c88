package domain

import (
	"context"
	"log/slog"
	"time"

	m "github.com/mouse-blink/fretwise/internal/model"
	"golang.org/x/sync/errgroup"
)

// FindRequest describes one fingering search.
type FindRequest struct {
	Chord        m.Chord
	Layout       m.InstrumentLayout
	MinNoteCount int
}

// Finder searches for chord fingerings.
type Finder interface {
	Find(ctx context.Context, req FindRequest) ([]m.Fingering, error)
}

type finder struct {
	threads int
	logger  *slog.Logger
}

// NewFinder returns a Finder that splits the search by the state of the
// first string and runs up to threads partitions at once. Results are in the
// same order as FindAllFingeringsForChord.
func NewFinder(threads int, logger *slog.Logger) Finder {
	if threads <= 0 {
		threads = 1
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &finder{threads: threads, logger: logger}
}

func (f *finder) Find(ctx context.Context, req FindRequest) ([]m.Fingering, error) {
	if err := ValidateLayout(req.Layout); err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := time.Now()

	var (
		found []m.Fingering
		err   error
	)

	if f.threads == 1 || len(req.Layout) == 0 {
		found, err = collect(ctx, req.Chord, req.Layout, req.MinNoteCount, NewCounter(req.Layout))
	} else {
		found, err = f.findPartitioned(ctx, req)
	}

	if err != nil {
		return nil, err
	}

	f.logger.Debug("fingering search finished",
		"strings", len(req.Layout),
		"combinations", CountCombinations(req.Layout),
		"found", len(found),
		"threads", f.threads,
		"elapsed", time.Since(start),
	)

	return found, nil
}

func (f *finder) findPartitioned(ctx context.Context, req FindRequest) ([]m.Fingering, error) {
	firstStates := stringStates(req.Layout[0])
	partitions := make([][]m.Fingering, len(firstStates))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(f.threads)

	for i, state := range firstStates {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			counter := newPartitionCounter(req.Layout, state)

			found, err := collect(ctx, req.Chord, req.Layout, req.MinNoteCount, counter)
			if err != nil {
				return err
			}

			partitions[i] = found

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []m.Fingering
	for _, p := range partitions {
		all = append(all, p...)
	}

	return all, nil
}
