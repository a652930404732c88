package model

// StringLayout describes one physical string: its open pitch, the octave of
// that open note (scientific pitch notation, used for MIDI export only) and
// the inclusive range of playable frets. Frets start at 1.
type StringLayout struct {
	Open      Pitch
	Octave    int
	FirstFret int
	LastFret  int
}

// FretCount returns the number of playable fret positions on the string.
func (s StringLayout) FretCount() int {
	return s.LastFret - s.FirstFret + 1
}

// InstrumentLayout is the ordered set of strings of an instrument.
type InstrumentLayout []StringLayout

// Instrument is a named layout.
type Instrument struct {
	Name   string
	Layout InstrumentLayout
}

// BanjoLayout is a 5-string banjo in open G. The short fifth string starts
// at the sixth fret.
var BanjoLayout = InstrumentLayout{
	{Open: G, Octave: 4, FirstFret: 6, LastFret: 12},
	{Open: D, Octave: 3, FirstFret: 1, LastFret: 12},
	{Open: G, Octave: 3, FirstFret: 1, LastFret: 12},
	{Open: B, Octave: 3, FirstFret: 1, LastFret: 12},
	{Open: D, Octave: 4, FirstFret: 1, LastFret: 12},
}
