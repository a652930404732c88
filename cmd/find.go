package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/fretwise/internal/domain"
	m "github.com/mouse-blink/fretwise/internal/model"
)

const findLongDescription = `Find every fingering of a chord on an instrument.

Each string is tried muted, open and at every fret in its range. A fingering
is kept when all played strings sound chord tones, the fretted positions span
fewer than 4 frets, and at least --min-notes strings are played.

Examples:
  fretwise find -b C -s major -c triad -i banjo
  fretwise find -b A -s minor -c seventh -i guitar -n 4 --limit 20
  fretwise find -b G -c power -i ukulele --midi g5.mid`

var findFlags chordFlags
var findInstrumentFlag string
var findMinNotesFlag int
var findLimitFlag int
var findMIDIFlag string

func newFindCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "find",
		Short: "Find chord fingerings on an instrument",
		Long:  findLongDescription,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return workflow.Find(cmd.Context(), domain.FindArgs{
				ChordArgs:    findFlags.chordArgs(),
				Instrument:   findInstrumentFlag,
				MinNoteCount: findMinNotesFlag,
				Limit:        findLimitFlag,
				MIDIOut:      m.Path(findMIDIFlag),
			})
		},
	}
	findFlags.addChordFlags(cmd)
	cmd.Flags().StringVarP(&findInstrumentFlag, "instrument", "i", "banjo", "instrument layout name (see 'fretwise instruments')")
	cmd.Flags().IntVarP(&findMinNotesFlag, "min-notes", "n", 3, "minimum number of played strings")
	cmd.Flags().IntVarP(&findLimitFlag, "limit", "l", 0, "show at most this many fingerings (0 shows all)")
	cmd.Flags().StringVar(&findMIDIFlag, "midi", "", "also write the fingerings to this MIDI file")

	return cmd
}
