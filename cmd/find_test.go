package cmd

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/fretwise/internal/domain"
	domainmocks "github.com/mouse-blink/fretwise/internal/domain/mocks"
	m "github.com/mouse-blink/fretwise/internal/model"
)

func TestFindCmd_Defaults(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	useWorkflow(t, mockWorkflow)

	mockWorkflow.On("Find", mock.Anything, domain.FindArgs{
		ChordArgs: domain.ChordArgs{
			ScaleArgs: domain.ScaleArgs{Base: "C", Pattern: "major"},
			Shape:     "triad",
		},
		Instrument:   "banjo",
		MinNoteCount: 3,
	}).Return(nil)

	require.NoError(t, newTestRootCmd(t, "find").Execute())
}

func TestFindCmd_AllFlags(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	useWorkflow(t, mockWorkflow)

	mockWorkflow.On("Find", mock.Anything, mock.MatchedBy(func(args domain.FindArgs) bool {
		return args.Base == "G" &&
			args.Shape == "power" &&
			args.Instrument == "ukulele" &&
			args.MinNoteCount == 2 &&
			args.Limit == 5 &&
			args.MIDIOut == m.Path("g5.mid")
	})).Return(nil)

	err := newTestRootCmd(t,
		"find", "-b", "G", "-c", "power", "-i", "ukulele",
		"-n", "2", "--limit", "5", "--midi", "g5.mid",
	).Execute()
	require.NoError(t, err)
}

func TestFindCmd_InvalidMinNotes(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	useWorkflow(t, mockWorkflow)

	require.Error(t, newTestRootCmd(t, "find", "-n", "three").Execute())
}

func TestListCmd_Alias(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	useWorkflow(t, mockWorkflow)

	mockWorkflow.On("Instruments").Return(nil).Twice()

	require.NoError(t, newTestRootCmd(t, "instruments").Execute())
	require.NoError(t, newTestRootCmd(t, "list").Execute())
}
