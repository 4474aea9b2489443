// Package report renders a fidelity report for the terminal.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bethropolis/mathtag/internal/fidelity"
)

// Styles used by Render. Built from a renderer so colour follows the output.
type styles struct {
	title lipgloss.Style
	label lipgloss.Style
	value lipgloss.Style
	good  lipgloss.Style
	bad   lipgloss.Style
	muted lipgloss.Style
	box   lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		title: r.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		label: r.NewStyle().Width(10),
		value: r.NewStyle().Bold(true),
		good:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
		bad:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
		muted: r.NewStyle().Foreground(lipgloss.Color("8")),
		box:   r.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
	}
}

// Write renders rep to w. Colour is used only when w is a terminal.
func Write(w io.Writer, rep fidelity.Report, verbose bool) error {
	_, err := fmt.Fprintln(w, Render(lipgloss.NewRenderer(w), rep, verbose))
	return err
}

// Render formats rep. With verbose set, every sentence with a moved marker is listed.
func Render(renderer *lipgloss.Renderer, rep fidelity.Report, verbose bool) string {
	st := newStyles(renderer)

	accStyle := st.good
	if !rep.Unchanged() {
		accStyle = st.bad
	}
	rows := []string{
		st.title.Render("Fidelity report"),
		st.label.Render("Markers") + st.value.Render(fmt.Sprint(rep.TotalMarkers)),
		st.label.Render("Moved") + st.value.Render(fmt.Sprint(rep.MovedMarkers)),
		st.label.Render("Removed") + st.value.Render(fmt.Sprint(rep.RemovedMarkers)),
		st.label.Render("Accuracy") + accStyle.Render(fmt.Sprintf("%.1f%%", rep.Accuracy*100)),
	}
	summary := st.box.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
	if !verbose {
		return summary
	}

	var b strings.Builder
	b.WriteString(summary)
	for _, s := range rep.Sentences {
		if s.Moved == 0 {
			continue
		}
		b.WriteString("\n")
		b.WriteString(st.bad.Render(fmt.Sprintf("#%d", s.Index+1)))
		b.WriteString(fmt.Sprintf(" moved %d/%d, removed %d\n", s.Moved, s.Total, s.Removed))
		b.WriteString(st.muted.Render("  original: ") + s.Original + "\n")
		b.WriteString(st.muted.Render("  edited:   ") + s.Edited)
	}
	return b.String()
}
