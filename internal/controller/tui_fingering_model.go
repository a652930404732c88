package controller

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	m "github.com/mouse-blink/fretwise/internal/model"
)

// reserved rows: title (2), summary (2), border and header (3), footer (1)
const fingeringChromeHeight = 8

// fingeringItem is one row of the fingering list.
type fingeringItem struct {
	index     int
	fingering string
	pitches   string
}

func (f fingeringItem) FilterValue() string {
	return f.fingering + " " + f.pitches
}

type fingeringDelegate struct{}

func (d fingeringDelegate) Height() int                             { return 1 }
func (d fingeringDelegate) Spacing() int                            { return 0 }
func (d fingeringDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d fingeringDelegate) Render(w io.Writer, lm list.Model, index int, item list.Item) {
	row, ok := item.(fingeringItem)
	if !ok {
		return
	}

	indexStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Width(6).Align(lipgloss.Right)
	shapeStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true).Width(22)
	pitchStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("14"))

	if index == lm.Index() {
		selected := lipgloss.Color("6")
		indexStyle = indexStyle.Foreground(lipgloss.Color("0")).Background(selected)
		shapeStyle = shapeStyle.Foreground(lipgloss.Color("0")).Background(selected)
		pitchStyle = pitchStyle.Foreground(lipgloss.Color("0")).Background(selected)
	}

	width := lm.Width() - 30

	line := fmt.Sprintf("%s  %s%s",
		indexStyle.Render(fmt.Sprintf("%d", row.index)),
		shapeStyle.Render(row.fingering),
		pitchStyle.Render(truncateToWidth(row.pitches, width)),
	)
	_, _ = fmt.Fprint(w, line)
}

// fingeringModel browses a fingering search result.
type fingeringModel struct {
	result   m.SearchResult
	items    []list.Item
	list     list.Model
	width    int
	height   int
	quitting bool
}

func newFingeringModel(result m.SearchResult, limit int) fingeringModel {
	shown := limitFingerings(result.Fingerings, limit)

	items := make([]list.Item, 0, len(shown))
	for i, f := range shown {
		items = append(items, fingeringItem{
			index:     i + 1,
			fingering: f.String(),
			pitches:   pitchList(f.Pitches(result.Instrument.Layout)),
		})
	}

	l := list.New(items, fingeringDelegate{}, 80, 20)
	l.SetShowPagination(false)
	l.SetShowFilter(true)
	l.SetShowHelp(false)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.FilterInput.Placeholder = "Filter by fret or pitch…"

	return fingeringModel{result: result, items: items, list: l}
}

func (fm fingeringModel) resize(width, height int) fingeringModel {
	fm.width = width
	fm.height = height

	listHeight := height - fingeringChromeHeight
	if listHeight < 5 {
		listHeight = 5
	}

	fm.list.SetSize(max(width-4, 20), listHeight)

	return fm
}

// needsPagination reports whether the list is taller than the terminal.
func (fm fingeringModel) needsPagination() bool {
	if fm.height == 0 {
		return false
	}

	return len(fm.items) > fm.height-fingeringChromeHeight
}

func (fm fingeringModel) Init() tea.Cmd {
	return nil
}

func (fm fingeringModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return fm.resize(msg.Width, msg.Height), nil

	case tea.KeyMsg:
		if fm.list.FilterState() != list.Filtering {
			switch msg.String() {
			case "q", "esc":
				fm.quitting = true
				return fm, tea.Quit
			}
		}

		if msg.Type == tea.KeyCtrlC {
			fm.quitting = true
			return fm, tea.Quit
		}
	}

	var cmd tea.Cmd

	fm.list, cmd = fm.list.Update(msg)

	return fm, cmd
}

func (fm fingeringModel) View() string {
	if fm.quitting {
		return ""
	}

	footer := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Align(lipgloss.Center).
		Width(fm.width).
		Render("↑/k up • ↓/j down • / filter • q quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		fm.header(),
		boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, fm.columnHeaders(), fm.list.View())),
		footer,
	)
}

// staticView renders every row without the interactive list.
func (fm fingeringModel) staticView() string {
	if len(fm.items) == 0 {
		return fm.header() + "\n  📭 No fingerings found"
	}

	rows := make([]string, 0, len(fm.items)+1)
	rows = append(rows, fm.columnHeaders())

	for _, it := range fm.items {
		row, _ := it.(fingeringItem)
		rows = append(rows, fmt.Sprintf("%6d  %-22s%s", row.index, row.fingering, row.pitches))
	}

	return lipgloss.JoinVertical(lipgloss.Left, fm.header(), boxStyle.Render(strings.Join(rows, "\n")))
}

func (fm fingeringModel) header() string {
	r := fm.result

	title := titleStyle.Render(fmt.Sprintf("🎸 %s %s %s on %s", r.Base, r.ScaleName, r.ShapeName, r.Instrument.Name))
	summary := fmt.Sprintf("Chord: %s   Fingerings: %s of %s   Searched: %s",
		accentStyle.Render(r.Chord.String()),
		accentStyle.Render(fmt.Sprintf("%d", len(fm.items))),
		accentStyle.Render(fmt.Sprintf("%d", len(r.Fingerings))),
		accentStyle.Render(fmt.Sprintf("%d", r.Combinations)),
	)

	return lipgloss.JoinVertical(lipgloss.Left, title, summary, "")
}

func (fm fingeringModel) columnHeaders() string {
	return dimStyle.Render(fmt.Sprintf("%6s  %-22s%s", "#", "Fingering", "Pitches"))
}

func truncateToWidth(text string, width int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	const ellipsis = "…"

	if width <= 1 {
		return ellipsis
	}

	maxWidth := width - lipgloss.Width(ellipsis)
	currentWidth := 0

	result := make([]rune, 0, len(text))
	for _, r := range text {
		rWidth := lipgloss.Width(string(r))
		if currentWidth+rWidth > maxWidth {
			break
		}

		result = append(result, r)
		currentWidth += rWidth
	}

	return string(result) + ellipsis
}
