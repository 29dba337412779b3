// Package tui provides an interactive terminal dashboard for running
// searches against the crawled record database.
package tui

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	qsearch "github.com/poiesic/qsearch"
	"github.com/poiesic/qsearch/grover"
)

const (
	separatorWidth = 60
	histogramBars  = 8
	histogramWidth = 30
)

type searchDoneMsg struct {
	target string
	report *qsearch.SearchReport
	err    error
}

// Model is the bubbletea model for the search dashboard. It reads a target
// from the prompt, runs the search off the update loop, and renders the
// outcome with a measurement histogram.
type Model struct {
	db     *qsearch.Database
	shots  int
	seed   int64
	seeded bool

	input     string
	cursor    int
	searching bool

	target  string
	report  *qsearch.SearchReport
	err     error
	history []string
}

// Option configures a Model.
type Option func(*Model)

// WithShots sets the number of measurement shots per search.
func WithShots(shots int) Option {
	return func(m *Model) {
		m.shots = shots
	}
}

// WithSeed fixes the sampler seed for reproducible sessions.
func WithSeed(seed int64) Option {
	return func(m *Model) {
		m.seed = seed
		m.seeded = true
	}
}

// New creates a dashboard over the given database.
func New(db *qsearch.Database, opts ...Option) Model {
	m := Model{
		db:    db,
		shots: grover.DefaultShots,
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Run starts the dashboard and blocks until the user quits.
func Run(db *qsearch.Database, opts ...Option) error {
	_, err := tea.NewProgram(New(db, opts...)).Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch v := msg.(type) {

	case tea.KeyMsg:
		switch v.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit

		case tea.KeyEnter:
			text := strings.TrimSpace(m.input)
			if text == "" || m.searching {
				return m, nil
			}
			m.input = ""
			m.cursor = 0
			m.target = text
			m.searching = true
			return m, m.runSearch(text)

		case tea.KeyBackspace:
			if m.cursor > 0 {
				m.input = m.input[:m.cursor-1] + m.input[m.cursor:]
				m.cursor--
			}
			return m, nil

		case tea.KeyLeft:
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case tea.KeyRight:
			if m.cursor < len(m.input) {
				m.cursor++
			}
			return m, nil

		default:
			m.input = m.input[:m.cursor] + v.String() + m.input[m.cursor:]
			m.cursor += len(v.String())
			return m, nil
		}

	case searchDoneMsg:
		m.searching = false
		m.target = v.target
		m.report = v.report
		m.err = v.err
		m.history = append(m.history, v.target)
		if len(m.history) > 5 {
			m.history = m.history[len(m.history)-5:]
		}
		return m, nil

	default:
		return m, nil
	}
}

func (m Model) runSearch(target string) tea.Cmd {
	db, shots, seed, seeded := m.db, m.shots, m.seed, m.seeded
	return func() tea.Msg {
		opts := []grover.Option{grover.WithShots(shots)}
		if seeded {
			opts = append(opts, grover.WithSeed(seed))
		}
		report, err := db.Search(context.Background(), target, opts...)
		return searchDoneMsg{target: target, report: report, err: err}
	}
}
