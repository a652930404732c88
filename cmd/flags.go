package cmd

import (
	"github.com/mouse-blink/fretwise/internal/domain"
	"github.com/spf13/cobra"
)

// chordFlags holds the flags shared by the scale, chord and find commands.
type chordFlags struct {
	base    string
	pattern string
	shape   string
}

func (f *chordFlags) addScaleFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.base, "base", "b", "C", "base note of the scale, e.g. C, F#, Bb")
	cmd.Flags().StringVarP(&f.pattern, "scale", "s", "major", "scale pattern: major, minor, dorian, phrygian, lydian, mixolydian, locrian, harmonic-minor")
}

func (f *chordFlags) addChordFlags(cmd *cobra.Command) {
	f.addScaleFlags(cmd)
	cmd.Flags().StringVarP(&f.shape, "shape", "c", "triad", "chord shape: triad, power, seventh, ninth, eleventh, thirteenth")
}

func (f *chordFlags) scaleArgs() domain.ScaleArgs {
	return domain.ScaleArgs{Base: f.base, Pattern: f.pattern}
}

func (f *chordFlags) chordArgs() domain.ChordArgs {
	return domain.ChordArgs{ScaleArgs: f.scaleArgs(), Shape: f.shape}
}
