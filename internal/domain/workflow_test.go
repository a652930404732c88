package domain_test

import (
	"context"
	"errors"
	"testing"

	"github.com/mouse-blink/fretwise/internal/adapter"
	adaptermocks "github.com/mouse-blink/fretwise/internal/adapter/mocks"
	controllermocks "github.com/mouse-blink/fretwise/internal/controller/mocks"
	"github.com/mouse-blink/fretwise/internal/domain"
	domainmocks "github.com/mouse-blink/fretwise/internal/domain/mocks"
	m "github.com/mouse-blink/fretwise/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type workflowMocks struct {
	store    *adaptermocks.MockLayoutStore
	exporter *adaptermocks.MockMIDIExporter
	ui       *controllermocks.MockUI
	finder   *domainmocks.MockFinder
}

func newTestWorkflow(t *testing.T) (domain.Workflow, workflowMocks) {
	t.Helper()

	mocks := workflowMocks{
		store:    adaptermocks.NewMockLayoutStore(t),
		exporter: adaptermocks.NewMockMIDIExporter(t),
		ui:       controllermocks.NewMockUI(t),
		finder:   domainmocks.NewMockFinder(t),
	}

	wf := domain.NewWorkflow(mocks.store, mocks.exporter, mocks.ui, mocks.finder, nil)

	return wf, mocks
}

var banjo = m.Instrument{Name: "banjo", Layout: m.BanjoLayout}

func cMajorFindArgs() domain.FindArgs {
	return domain.FindArgs{
		ChordArgs: domain.ChordArgs{
			ScaleArgs: domain.ScaleArgs{Base: "C", Pattern: "major"},
			Shape:     "triad",
		},
		Instrument:   "banjo",
		MinNoteCount: 3,
	}
}

func TestWorkflow_Scale(t *testing.T) {
	wf, mocks := newTestWorkflow(t)

	want := m.Scale{m.C, m.D, m.E, m.F, m.G, m.A, m.B, m.C}
	mocks.ui.On("DisplayScale", m.C, "major", want).Return(nil)

	require.NoError(t, wf.Scale(domain.ScaleArgs{Base: "C", Pattern: "major"}))
}

func TestWorkflow_Scale_Errors(t *testing.T) {
	wf, _ := newTestWorkflow(t)

	err := wf.Scale(domain.ScaleArgs{Base: "H", Pattern: "major"})
	require.ErrorIs(t, err, m.ErrUnknownPitch)

	err = wf.Scale(domain.ScaleArgs{Base: "C", Pattern: "bebop"})
	require.ErrorIs(t, err, domain.ErrUnknownScale)
}

func TestWorkflow_Chord(t *testing.T) {
	wf, mocks := newTestWorkflow(t)

	mocks.ui.On("DisplayChord", "seventh", m.Chord{m.A, m.C, m.E, m.G}).Return(nil)

	require.NoError(t, wf.Chord(domain.ChordArgs{
		ScaleArgs: domain.ScaleArgs{Base: "A", Pattern: "minor"},
		Shape:     "seventh",
	}))
}

func TestWorkflow_Chord_UnknownShape(t *testing.T) {
	wf, _ := newTestWorkflow(t)

	err := wf.Chord(domain.ChordArgs{
		ScaleArgs: domain.ScaleArgs{Base: "A", Pattern: "minor"},
		Shape:     "sus2",
	})
	require.ErrorIs(t, err, domain.ErrUnknownShape)
}

func TestWorkflow_Search(t *testing.T) {
	wf, mocks := newTestWorkflow(t)

	found := []m.Fingering{{m.Muted, m.Fret(2), m.Open, m.Fret(1), m.Fret(2)}}

	mocks.store.On("Get", "banjo").Return(banjo, nil)
	mocks.finder.On("Find", mock.Anything, domain.FindRequest{
		Chord:        m.Chord{m.C, m.E, m.G},
		Layout:       m.BanjoLayout,
		MinNoteCount: 3,
	}).Return(found, nil)

	result, err := wf.Search(context.Background(), cMajorFindArgs())
	require.NoError(t, err)

	assert.Equal(t, m.C, result.Base)
	assert.Equal(t, "major", result.ScaleName)
	assert.Equal(t, "triad", result.ShapeName)
	assert.Equal(t, m.Chord{m.C, m.E, m.G}, result.Chord)
	assert.Equal(t, banjo, result.Instrument)
	assert.Equal(t, domain.CountCombinations(m.BanjoLayout), result.Combinations)
	assert.Equal(t, found, result.Fingerings)
}

func TestWorkflow_Search_NegativeMinNotes(t *testing.T) {
	wf, mocks := newTestWorkflow(t)

	args := cMajorFindArgs()
	args.MinNoteCount = -2

	mocks.store.On("Get", "banjo").Return(banjo, nil)
	mocks.finder.On("Find", mock.Anything, mock.MatchedBy(func(req domain.FindRequest) bool {
		return req.MinNoteCount == 0
	})).Return([]m.Fingering{}, nil)

	result, err := wf.Search(context.Background(), args)
	require.NoError(t, err)
	assert.Equal(t, 0, result.MinNoteCount)
}

func TestWorkflow_Search_UnknownInstrument(t *testing.T) {
	wf, mocks := newTestWorkflow(t)

	mocks.store.On("Get", "banjo").Return(m.Instrument{}, adapter.ErrUnknownInstrument)

	_, err := wf.Search(context.Background(), cMajorFindArgs())
	require.ErrorIs(t, err, adapter.ErrUnknownInstrument)
}

func TestWorkflow_Search_FinderError(t *testing.T) {
	wf, mocks := newTestWorkflow(t)

	mocks.store.On("Get", "banjo").Return(banjo, nil)
	mocks.finder.On("Find", mock.Anything, mock.Anything).Return(nil, context.Canceled)

	_, err := wf.Search(context.Background(), cMajorFindArgs())
	require.ErrorIs(t, err, context.Canceled)
	assert.Contains(t, err.Error(), "failed to find fingerings")
}

func TestWorkflow_Find_DisplaysAndExports(t *testing.T) {
	wf, mocks := newTestWorkflow(t)

	args := cMajorFindArgs()
	args.Limit = 5
	args.MIDIOut = "chords.mid"

	mocks.store.On("Get", "banjo").Return(banjo, nil)
	mocks.finder.On("Find", mock.Anything, mock.Anything).Return([]m.Fingering{{m.Open, m.Muted, m.Open, m.Muted, m.Muted}}, nil)
	mocks.exporter.On("Export", m.Path("chords.mid"), mock.AnythingOfType("model.SearchResult")).Return(nil)
	mocks.ui.On("DisplayFingerings", mock.AnythingOfType("model.SearchResult"), 5).Return(nil)

	require.NoError(t, wf.Find(context.Background(), args))
}

func TestWorkflow_Find_ExportError(t *testing.T) {
	wf, mocks := newTestWorkflow(t)

	args := cMajorFindArgs()
	args.MIDIOut = "/nope/chords.mid"

	mocks.store.On("Get", "banjo").Return(banjo, nil)
	mocks.finder.On("Find", mock.Anything, mock.Anything).Return([]m.Fingering{}, nil)
	mocks.exporter.On("Export", m.Path("/nope/chords.mid"), mock.Anything).Return(errors.New("disk full"))

	err := wf.Find(context.Background(), args)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to export midi")
}

func TestWorkflow_Find_NoExportWithoutPath(t *testing.T) {
	wf, mocks := newTestWorkflow(t)

	mocks.store.On("Get", "banjo").Return(banjo, nil)
	mocks.finder.On("Find", mock.Anything, mock.Anything).Return([]m.Fingering{}, nil)
	mocks.ui.On("DisplayFingerings", mock.Anything, 0).Return(nil)

	require.NoError(t, wf.Find(context.Background(), cMajorFindArgs()))
	mocks.exporter.AssertNotCalled(t, "Export", mock.Anything, mock.Anything)
}

func TestWorkflow_Instruments(t *testing.T) {
	wf, mocks := newTestWorkflow(t)

	list := []m.Instrument{banjo}
	mocks.store.On("List").Return(list, nil)
	mocks.ui.On("DisplayInstruments", list).Return(nil)

	require.NoError(t, wf.Instruments())
}

func TestWorkflow_Instruments_Error(t *testing.T) {
	wf, mocks := newTestWorkflow(t)

	mocks.store.On("List").Return(nil, errors.New("boom"))

	err := wf.Instruments()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to list instruments")
}

func TestWorkflow_EndToEnd(t *testing.T) {
	store, err := adapter.NewLayoutStore()
	require.NoError(t, err)

	ui := controllermocks.NewMockUI(t)
	wf := domain.NewWorkflow(store, adapter.NewMIDIExporter(), ui, domain.NewFinder(2, nil), nil)

	result, err := wf.Search(context.Background(), cMajorFindArgs())
	require.NoError(t, err)
	require.NotEmpty(t, result.Fingerings)

	want, err := domain.FindAllFingeringsForChord(m.Chord{3, 7, 10}, m.BanjoLayout, 3)
	require.NoError(t, err)
	assert.Equal(t, want, result.Fingerings)
}
