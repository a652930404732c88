package controller

import (
	"bytes"
	"fmt"
	"strconv"

	m "github.com/mouse-blink/fretwise/internal/model"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// SimpleUI renders plain tables through the cobra command's output.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayScale prints one row per scale degree.
func (s *SimpleUI) DisplayScale(base m.Pitch, name string, scale m.Scale) error {
	s.printf("%s %s\n", base, name)

	table, buf := newTable([]string{"Degree", "Pitch"})
	for i, p := range scale {
		table.Append([]string{strconv.Itoa(i + 1), p.String()})
	}

	table.Render()
	s.printf("\n%s", buf.String())

	return nil
}

// DisplayChord prints the chord pitches on one line.
func (s *SimpleUI) DisplayChord(name string, chord m.Chord) error {
	s.printf("%s: %s\n", name, chord)

	return nil
}

// DisplayFingerings prints a table of fingerings with their sounding pitches.
func (s *SimpleUI) DisplayFingerings(result m.SearchResult, limit int) error {
	s.printf("%s %s %s [%s] on %s\n", result.Base, result.ScaleName, result.ShapeName, result.Chord, result.Instrument.Name)

	if len(result.Fingerings) == 0 {
		s.printf("No fingerings found\n")
		return nil
	}

	shown := limitFingerings(result.Fingerings, limit)

	table, buf := newTable([]string{"#", "Fingering", "Pitches", "Notes"})
	for i, f := range shown {
		table.Append([]string{
			strconv.Itoa(i + 1),
			f.String(),
			pitchList(f.Pitches(result.Instrument.Layout)),
			strconv.Itoa(f.PlayedCount()),
		})
	}

	table.SetFooter([]string{
		"",
		fmt.Sprintf("Showing %d", len(shown)),
		fmt.Sprintf("of %d", len(result.Fingerings)),
		fmt.Sprintf("%d searched", result.Combinations),
	})

	table.Render()
	s.printf("\n%s", buf.String())

	return nil
}

// DisplayInstruments prints the known instrument layouts.
func (s *SimpleUI) DisplayInstruments(instruments []m.Instrument) error {
	if len(instruments) == 0 {
		s.printf("No instruments found\n")
		return nil
	}

	table, buf := newTable([]string{"Name", "Strings", "Tuning"})
	for _, inst := range instruments {
		table.Append([]string{inst.Name, strconv.Itoa(len(inst.Layout)), describeLayout(inst.Layout)})
	}

	table.Render()
	s.printf("\n%s", buf.String())

	return nil
}

func newTable(header []string) (*tablewriter.Table, *bytes.Buffer) {
	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetHeader(header)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)

	return table, &buf
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
