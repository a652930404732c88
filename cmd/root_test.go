package cmd

import (
	"bytes"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainmocks "github.com/mouse-blink/fretwise/internal/domain/mocks"
)

func newTestRootCmd(t *testing.T, args ...string) *cobra.Command {
	t.Helper()

	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)

	return cmd
}

func useWorkflow(t *testing.T, w *domainmocks.MockWorkflow) {
	t.Helper()

	originalWorkflow := workflow
	workflow = w

	t.Cleanup(func() { workflow = originalWorkflow })
}

func TestRootCmd_HasSubcommands(t *testing.T) {
	cmd := newRootCmd()

	for _, name := range []string{"scale", "chord", "find", "instruments", "serve"} {
		sub, _, err := cmd.Find([]string{name})
		require.NoError(t, err, name)
		assert.Equal(t, name, sub.Name())
	}
}

func TestRootCmd_NoArgsShowsHelp(t *testing.T) {
	out := &bytes.Buffer{}
	cmd := newRootCmd()
	cmd.SetOut(out)
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "fingering")
}

func TestRootCmd_WorkflowErrorIsReturned(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	useWorkflow(t, mockWorkflow)

	mockWorkflow.On("Instruments").Return(errors.New("boom"))

	err := newTestRootCmd(t, "instruments").Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
}

func TestConfigure_LayoutsFlagRebuildsStore(t *testing.T) {
	originalStore, originalWorkflow := store, workflow
	t.Cleanup(func() {
		store, workflow = originalStore, originalWorkflow
		layoutsFlag = nil
	})

	path := filepath.Join(t.TempDir(), "extra.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`instruments:
  - name: dulcimer
    strings:
      - {open: D, octave: 3, first: 1, last: 10}
      - {open: A, octave: 3, first: 1, last: 10}
`), 0o600))

	layoutsFlag = []string{path}
	require.NoError(t, configure(nil, nil))

	inst, err := store.Get("dulcimer")
	require.NoError(t, err)
	assert.Len(t, inst.Layout, 2)
	assert.NotSame(t, originalWorkflow, workflow)
}

func TestConfigure_BadLayoutsFile(t *testing.T) {
	originalStore := store
	t.Cleanup(func() {
		store = originalStore
		layoutsFlag = nil
	})

	layoutsFlag = []string{filepath.Join(t.TempDir(), "missing.yaml")}
	require.Error(t, configure(nil, nil))
}

func TestNewLogger_Levels(t *testing.T) {
	assert.False(t, newLogger(levelFor(false)).Enabled(t.Context(), slog.LevelDebug))
	assert.True(t, newLogger(levelFor(true)).Enabled(t.Context(), slog.LevelDebug))
}

func TestConfigure_DebugLevelDoesNotStick(t *testing.T) {
	t.Cleanup(func() {
		debugFlag = false
		logLevel.Set(slog.LevelInfo)
	})

	debugFlag = true
	require.NoError(t, configure(nil, nil))
	assert.True(t, logger.Enabled(t.Context(), slog.LevelDebug))

	debugFlag = false
	require.NoError(t, configure(nil, nil))
	assert.False(t, logger.Enabled(t.Context(), slog.LevelDebug))
}
