package tui

import (
	"fmt"
	"sort"
	"strings"

	qsearch "github.com/poiesic/qsearch"
)

func (m Model) View() string {
	var b strings.Builder

	b.WriteString("qsearch | amplitude amplification over crawled records\n")
	b.WriteString(strings.Repeat("-", separatorWidth) + "\n")

	switch {
	case m.searching:
		b.WriteString("searching for \"" + m.target + "\"...\n")
	case m.err != nil:
		b.WriteString("error: " + m.err.Error() + "\n")
	case m.report != nil:
		writeReport(&b, m.target, m.report)
	default:
		b.WriteString("type a target title and press enter\n")
	}
	b.WriteString(strings.Repeat("-", separatorWidth) + "\n")

	if len(m.history) > 0 {
		b.WriteString("recent:\n")
		for _, target := range m.history {
			b.WriteString("   " + target + "\n")
		}
		b.WriteString(strings.Repeat("-", separatorWidth) + "\n")
	}

	cursor := m.cursor
	if cursor > len(m.input) {
		cursor = len(m.input)
	}
	b.WriteString("target:\n> " + m.input[:cursor] + "_" + m.input[cursor:] + "\n")
	b.WriteString(strings.Repeat("-", separatorWidth) + "\n")
	b.WriteString("enter searches, esc quits\n")

	return b.String()
}

func writeReport(b *strings.Builder, target string, report *qsearch.SearchReport) {
	if report.Found {
		b.WriteString(fmt.Sprintf("found: %s (index %d)\n", report.Item, report.Index))
		if report.Fuzzy {
			b.WriteString(fmt.Sprintf("   substring match for \"%s\"\n", target))
		}
		if report.Record != nil {
			b.WriteString("   " + report.Record.URL + "\n")
		}
	} else {
		b.WriteString(fmt.Sprintf("no result for \"%s\": majority landed outside the database\n", target))
	}

	b.WriteString(fmt.Sprintf("qubits: %d   states: %d   iterations: %d\n",
		report.Qubits, report.SpaceSize, report.Iterations))
	b.WriteString(fmt.Sprintf("simulated: %s   linear scan: %s\n",
		report.Elapsed, report.Classical.Elapsed))
	b.WriteString("\n")
	b.WriteString(histogram(report.Counts, histogramBars, histogramWidth))
}

// histogram renders the most frequent basis labels as text bars, scaled so
// the tallest bar has the given width. Ties order by label.
func histogram(counts map[string]int, bars, width int) string {
	type bucket struct {
		label string
		count int
	}

	buckets := make([]bucket, 0, len(counts))
	for label, count := range counts {
		buckets = append(buckets, bucket{label, count})
	}
	sort.Slice(buckets, func(i, j int) bool {
		if buckets[i].count != buckets[j].count {
			return buckets[i].count > buckets[j].count
		}
		return buckets[i].label < buckets[j].label
	})
	if len(buckets) > bars {
		buckets = buckets[:bars]
	}
	if len(buckets) == 0 {
		return ""
	}

	max := buckets[0].count
	var b strings.Builder
	for _, bk := range buckets {
		bar := 0
		if max > 0 {
			bar = bk.count * width / max
		}
		if bar == 0 && bk.count > 0 {
			bar = 1
		}
		b.WriteString(fmt.Sprintf("%s %s %d\n", bk.label, strings.Repeat("#", bar), bk.count))
	}
	return b.String()
}
