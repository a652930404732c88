package model

// Path represents a file system path.
type Path string

// SearchResult is the outcome of one fingering search together with the
// scale and chord it was derived from.
type SearchResult struct {
	Base         Pitch
	ScaleName    string
	Scale        Scale
	ShapeName    string
	Chord        Chord
	Instrument   Instrument
	MinNoteCount int
	Combinations int
	Fingerings   []Fingering
}
