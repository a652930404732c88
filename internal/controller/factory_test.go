package controller

import (
	"bytes"
	"os"
	"testing"

	"github.com/spf13/cobra"
)

func TestNewUI_TTYMode(t *testing.T) {
	cmd := &cobra.Command{}
	cmd.SetOut(&bytes.Buffer{})

	ui := NewUI(cmd, true)

	if _, ok := ui.(*TUI); !ok {
		t.Errorf("NewUI(true) returned %T, want *TUI", ui)
	}
}

func TestNewUI_NonTTYMode(t *testing.T) {
	cmd := &cobra.Command{}
	cmd.SetOut(&bytes.Buffer{})

	ui := NewUI(cmd, false)

	if _, ok := ui.(*SimpleUI); !ok {
		t.Errorf("NewUI(false) returned %T, want *SimpleUI", ui)
	}
}

func TestIsTTY_NonFileWriter(t *testing.T) {
	if IsTTY(&bytes.Buffer{}) {
		t.Fatalf("IsTTY(buffer) = true, want false")
	}
}

func TestIsTTY_RegularFile(t *testing.T) {
	file, err := os.CreateTemp(t.TempDir(), "fretwise-tty")
	if err != nil {
		t.Fatalf("CreateTemp error: %v", err)
	}
	defer file.Close()

	if IsTTY(file) {
		t.Fatalf("IsTTY(regular file) = true, want false")
	}
}

func TestTerminalSize_NotATerminal(t *testing.T) {
	if _, _, ok := terminalSize(&bytes.Buffer{}); ok {
		t.Fatalf("terminalSize(buffer) ok = true, want false")
	}
}
