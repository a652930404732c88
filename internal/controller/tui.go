package controller

import (
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	m "github.com/mouse-blink/fretwise/internal/model"
)

var (
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	accentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	boxStyle    = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("6")).
			Padding(0, 1)
)

// TUI implements UI using lipgloss styling and a Bubble Tea browser for
// fingering lists that do not fit on screen.
type TUI struct {
	output io.Writer
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// DisplayScale prints the scale degrees in a box.
func (t *TUI) DisplayScale(base m.Pitch, name string, scale m.Scale) error {
	degrees := make([]string, 0, len(scale))
	for i, p := range scale {
		degrees = append(degrees, fmt.Sprintf("%s %s", dimStyle.Render(fmt.Sprintf("%d", i+1)), accentStyle.Render(p.String())))
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(fmt.Sprintf("%s %s", base, name)),
		strings.Join(degrees, "  "),
	)

	return t.print(boxStyle.Render(body))
}

// DisplayChord prints the chord pitches.
func (t *TUI) DisplayChord(name string, chord m.Chord) error {
	return t.print(fmt.Sprintf("%s %s", titleStyle.Render(name), accentStyle.Render(chord.String())))
}

// DisplayFingerings prints short lists directly and opens an interactive,
// filterable list otherwise.
func (t *TUI) DisplayFingerings(result m.SearchResult, limit int) error {
	model := newFingeringModel(result, limit)

	if width, height, ok := terminalSize(t.output); ok {
		model = model.resize(width, height)
	}

	if !model.needsPagination() {
		return t.print(model.staticView())
	}

	program := tea.NewProgram(model, tea.WithOutput(t.output), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return err
	}

	return nil
}

// DisplayInstruments prints one line per instrument.
func (t *TUI) DisplayInstruments(instruments []m.Instrument) error {
	if len(instruments) == 0 {
		return t.print("  📭 No instruments found")
	}

	lines := make([]string, 0, len(instruments)+1)
	lines = append(lines, titleStyle.Render("Instruments"))

	for _, inst := range instruments {
		lines = append(lines, fmt.Sprintf("%-10s %s %s",
			inst.Name,
			dimStyle.Render(fmt.Sprintf("%d strings", len(inst.Layout))),
			accentStyle.Render(describeLayout(inst.Layout)),
		))
	}

	return t.print(boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...)))
}

func (t *TUI) print(s string) error {
	_, err := fmt.Fprintln(t.output, s)
	return err
}
