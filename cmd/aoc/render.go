package main

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/fyrsmithlabs/aoc/internal/puzzle"
)

var (
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("51")).
			Bold(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("45"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("231")).
			Bold(true)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	okStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("46")).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)
)

// renderResults writes one line per result. Answers go to out; the
// structured log keeps the detail.
func renderResults(out io.Writer, results []puzzle.Result) {
	lastYear := 0
	for _, r := range results {
		if r.Key.Year != lastYear {
			fmt.Fprintln(out, headerStyle.Render(fmt.Sprintf("Advent of Code %d", r.Key.Year)))
			lastYear = r.Key.Year
		}

		label := labelStyle.Render(fmt.Sprintf("day %02d part %d", r.Key.Day, r.Key.Part))
		switch {
		case r.Err != nil && errors.Is(r.Err, puzzle.ErrAnswerMismatch):
			fmt.Fprintf(out, "  %s  %s  %s\n", label,
				valueStyle.Width(16).Render(fmt.Sprint(r.Value)),
				errorStyle.Render("✗ "+r.Err.Error()))
		case r.Err != nil:
			fmt.Fprintf(out, "  %s  %s\n", label, errorStyle.Render("error: "+r.Err.Error()))
		default:
			status := dimStyle.Render(formatDuration(r.Duration))
			if r.Checked {
				status = okStyle.Render("✓") + " " + status
			}
			fmt.Fprintf(out, "  %s  %s  %s\n", label, valueStyle.Width(16).Render(fmt.Sprint(r.Value)), status)
		}
	}
}

func formatDuration(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return fmt.Sprintf("%dµs", d.Microseconds())
	case d < time.Second:
		return fmt.Sprintf("%.1fms", float64(d)/float64(time.Millisecond))
	default:
		return d.Round(time.Millisecond).String()
	}
}
