package server

import (
	"github.com/mouse-blink/fretwise/internal/domain"
	m "github.com/mouse-blink/fretwise/internal/model"
)

type errorResponse struct {
	Error string `json:"error"`
}

type stringResponse struct {
	Open   string `json:"open"`
	Octave int    `json:"octave"`
	First  int    `json:"first"`
	Last   int    `json:"last"`
}

type instrumentResponse struct {
	Name    string           `json:"name"`
	Strings []stringResponse `json:"strings"`
}

func newInstrumentResponse(inst m.Instrument) instrumentResponse {
	strings := make([]stringResponse, 0, len(inst.Layout))
	for _, sl := range inst.Layout {
		strings = append(strings, stringResponse{
			Open:   sl.Open.String(),
			Octave: sl.Octave,
			First:  sl.FirstFret,
			Last:   sl.LastFret,
		})
	}

	return instrumentResponse{Name: inst.Name, Strings: strings}
}

type scaleResponse struct {
	Base    string   `json:"base"`
	Pattern string   `json:"pattern"`
	Scale   []string `json:"scale"`
}

type fingeringsRequest struct {
	Base       string `json:"base"`
	Scale      string `json:"scale"`
	Shape      string `json:"shape"`
	Instrument string `json:"instrument"`
	MinNotes   int    `json:"min_notes"`
	Limit      int    `json:"limit"`
}

func (req fingeringsRequest) findArgs() domain.FindArgs {
	return domain.FindArgs{
		ChordArgs: domain.ChordArgs{
			ScaleArgs: domain.ScaleArgs{Base: req.Base, Pattern: req.Scale},
			Shape:     req.Shape,
		},
		Instrument:   req.Instrument,
		MinNoteCount: req.MinNotes,
	}
}

type fingeringResponse struct {
	Display string   `json:"display"`
	States  []int    `json:"states"`
	Pitches []string `json:"pitches"`
}

type fingeringsResponse struct {
	Instrument   string              `json:"instrument"`
	Scale        []string            `json:"scale"`
	Chord        []string            `json:"chord"`
	MinNotes     int                 `json:"min_notes"`
	Combinations int                 `json:"combinations"`
	Total        int                 `json:"total"`
	Fingerings   []fingeringResponse `json:"fingerings"`
}

func newFingeringsResponse(result m.SearchResult, limit int) fingeringsResponse {
	shown := result.Fingerings
	if limit > 0 && len(shown) > limit {
		shown = shown[:limit]
	}

	fingerings := make([]fingeringResponse, 0, len(shown))
	for _, f := range shown {
		states := make([]int, 0, len(f))
		for _, s := range f {
			states = append(states, int(s))
		}

		fingerings = append(fingerings, fingeringResponse{
			Display: f.String(),
			States:  states,
			Pitches: pitchNames(f.Pitches(result.Instrument.Layout)),
		})
	}

	return fingeringsResponse{
		Instrument:   result.Instrument.Name,
		Scale:        pitchNames(result.Scale[:]),
		Chord:        pitchNames(result.Chord),
		MinNotes:     result.MinNoteCount,
		Combinations: result.Combinations,
		Total:        len(result.Fingerings),
		Fingerings:   fingerings,
	}
}

func pitchNames(pitches []m.Pitch) []string {
	names := make([]string, 0, len(pitches))
	for _, p := range pitches {
		names = append(names, p.String())
	}

	return names
}
