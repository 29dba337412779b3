package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	qsearch "github.com/poiesic/qsearch"
	"github.com/poiesic/qsearch/classical"
	"github.com/poiesic/qsearch/core"
	"github.com/poiesic/qsearch/grover"
)

func typeRunes(m Model, text string) Model {
	for _, r := range text {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = next.(Model)
	}
	return m
}

func TestUpdate_TypingEditsInput(t *testing.T) {
	m := typeRunes(New(nil), "cherry")
	assert.Equal(t, "cherry", m.input)
	assert.Equal(t, 6, m.cursor)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	m = next.(Model)
	assert.Equal(t, "cherr", m.input)

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m = next.(Model)
	m = typeRunes(m, "x")
	assert.Equal(t, "cherxr", m.input)
}

func TestUpdate_EnterStartsSearch(t *testing.T) {
	m := typeRunes(New(nil), "cherry")

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)
	require.NotNil(t, cmd)
	assert.True(t, m.searching)
	assert.Equal(t, "cherry", m.target)
	assert.Empty(t, m.input)
}

func TestUpdate_EnterIgnoresBlankInput(t *testing.T) {
	m := typeRunes(New(nil), "   ")

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)
	assert.Nil(t, cmd)
	assert.False(t, m.searching)
}

func TestUpdate_EscQuits(t *testing.T) {
	_, cmd := New(nil).Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func sampleReport() *qsearch.SearchReport {
	return &qsearch.SearchReport{
		Result: &grover.Result{
			Found:      true,
			Item:       "cherry",
			Index:      2,
			Qubits:     3,
			SpaceSize:  8,
			Iterations: 2,
			Counts:     map[string]int{"010": 940, "000": 30, "111": 30},
		},
		Record:    &core.Record{Title: "cherry", URL: "https://c.example"},
		Elapsed:   120 * time.Microsecond,
		Classical: classical.Baseline{Index: 2, Found: true, Elapsed: time.Microsecond},
	}
}

func TestView_RendersReport(t *testing.T) {
	m := New(nil)
	next, _ := m.Update(searchDoneMsg{target: "cherry", report: sampleReport()})
	view := next.(Model).View()

	assert.Contains(t, view, "found: cherry (index 2)")
	assert.Contains(t, view, "https://c.example")
	assert.Contains(t, view, "qubits: 3   states: 8   iterations: 2")
	assert.Contains(t, view, "010 ")
	assert.Contains(t, view, "recent:")
}

func TestView_RendersError(t *testing.T) {
	m := New(nil)
	next, _ := m.Update(searchDoneMsg{target: "x", err: errors.New("boom")})
	view := next.(Model).View()

	assert.Contains(t, view, "error: boom")
}

func TestHistogram(t *testing.T) {
	counts := map[string]int{"010": 900, "000": 50, "111": 50, "001": 0}

	out := histogram(counts, 3, 30)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 3)

	// Most frequent first, ties by label.
	assert.True(t, strings.HasPrefix(lines[0], "010 "))
	assert.True(t, strings.HasPrefix(lines[1], "000 "))
	assert.True(t, strings.HasPrefix(lines[2], "111 "))

	// Tallest bar uses the full width, nonzero counts get at least one mark.
	assert.Contains(t, lines[0], strings.Repeat("#", 30))
	assert.Contains(t, lines[1], "#")
}

func TestHistogram_Empty(t *testing.T) {
	assert.Empty(t, histogram(nil, 8, 30))
}
