package cmd

import (
	"github.com/spf13/cobra"
)

var scaleFlags chordFlags
var chordCmdFlags chordFlags

func newScaleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scale",
		Short: "Show the notes of a scale",
		Long:  "Show the eight degrees of a scale, octave included, built from a base note and a pattern.",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return workflow.Scale(scaleFlags.scaleArgs())
		},
	}
	scaleFlags.addScaleFlags(cmd)

	return cmd
}

func newChordCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chord",
		Short: "Show the notes of a chord",
		Long: `Show the pitches of a chord built from scale degrees.
Degrees above 8 wrap back into the scale, so a ninth adds the second degree.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return workflow.Chord(chordCmdFlags.chordArgs())
		},
	}
	chordCmdFlags.addChordFlags(cmd)

	return cmd
}
