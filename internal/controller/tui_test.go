package controller

import (
	"bytes"
	"strings"
	"testing"

	m "github.com/mouse-blink/fretwise/internal/model"
)

func TestTUI_DisplayScale(t *testing.T) {
	var buf bytes.Buffer

	if err := NewTUI(&buf).DisplayScale(m.A, "minor", m.Scale{m.A, m.B, m.C, m.D, m.E, m.F, m.G, m.A}); err != nil {
		t.Fatalf("DisplayScale() error = %v", err)
	}

	assertContainsAll(t, buf.String(), "A minor", "F")
}

func TestTUI_DisplayChord(t *testing.T) {
	var buf bytes.Buffer

	if err := NewTUI(&buf).DisplayChord("power", m.Chord{m.C, m.G}); err != nil {
		t.Fatalf("DisplayChord() error = %v", err)
	}

	assertContainsAll(t, buf.String(), "power", "C G")
}

func TestTUI_DisplayFingerings_StaticWhenNotATerminal(t *testing.T) {
	var buf bytes.Buffer

	if err := NewTUI(&buf).DisplayFingerings(sampleResult(), 0); err != nil {
		t.Fatalf("DisplayFingerings() error = %v", err)
	}

	assertContainsAll(t, buf.String(), "C major triad on banjo", "x 2 0 1 2", "E G C E")
}

func TestTUI_DisplayInstruments(t *testing.T) {
	var buf bytes.Buffer

	if err := NewTUI(&buf).DisplayInstruments([]m.Instrument{{Name: "ukulele", Layout: m.InstrumentLayout{
		{Open: m.G, FirstFret: 1, LastFret: 12},
		{Open: m.C, FirstFret: 1, LastFret: 12},
	}}}); err != nil {
		t.Fatalf("DisplayInstruments() error = %v", err)
	}

	assertContainsAll(t, buf.String(), "ukulele", "2 strings", "G C")

	buf.Reset()

	if err := NewTUI(&buf).DisplayInstruments(nil); err != nil {
		t.Fatalf("DisplayInstruments() error = %v", err)
	}

	if !strings.Contains(buf.String(), "No instruments found") {
		t.Fatalf("missing empty message: %q", buf.String())
	}
}
