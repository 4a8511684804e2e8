// Package lipgloss renders palet results for the terminal using
// charmbracelet/lipgloss.
package lipgloss

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/palet"
)

// Color palette.
const (
	ColorApplication = lipgloss.Color("#3B82F6")
	ColorCommand     = lipgloss.Color("#7C3AED")
	ColorCalculator  = lipgloss.Color("#10B981")
	ColorSearch      = lipgloss.Color("#F59E0B")
	ColorMuted       = lipgloss.Color("#6B7280")
)

// EmptyMessage is printed when there is nothing to show.
const EmptyMessage = "No results"

// Renderer writes styled result lists to w. Styles degrade to plain text
// when w is not a terminal.
type Renderer struct {
	w io.Writer

	names       map[palet.Kind]lipgloss.Style
	description lipgloss.Style
}

// NewRenderer returns a Renderer writing to w.
func NewRenderer(w io.Writer) *Renderer {
	r := lipgloss.NewRenderer(w)
	return &Renderer{
		w: w,
		names: map[palet.Kind]lipgloss.Style{
			palet.KindApplication:    r.NewStyle().Bold(true).Foreground(ColorApplication),
			palet.KindCustomCommand:  r.NewStyle().Bold(true).Foreground(ColorCommand),
			palet.KindCalculator:     r.NewStyle().Bold(true).Foreground(ColorCalculator),
			palet.KindSearchFallback: r.NewStyle().Italic(true).Foreground(ColorSearch),
		},
		description: r.NewStyle().Foreground(ColorMuted),
	}
}

// RenderResults writes one line per result: display name, then description.
func (r *Renderer) RenderResults(results []palet.Queryable) error {
	rows := make([]row, len(results))
	for i, q := range results {
		rows[i] = row{
			name:        q.DisplayName(),
			description: q.Description(),
			style:       r.names[q.Kind()],
		}
	}
	return r.render(rows)
}

// RenderApplications writes one line per application: name, then exec.
func (r *Renderer) RenderApplications(apps []*palet.Application) error {
	rows := make([]row, len(apps))
	for i, app := range apps {
		rows[i] = row{
			name:        app.Name,
			description: app.Exec,
			style:       r.names[palet.KindApplication],
		}
	}
	return r.render(rows)
}

// RenderEntries writes one line per stored entry: name, then description.
func (r *Renderer) RenderEntries(entries []*palet.Entry) error {
	rows := make([]row, len(entries))
	for i, e := range entries {
		kind := palet.KindApplication
		if e.Actionable != nil && e.Actionable.ActionableType() == palet.ActionableCustomCommand {
			kind = palet.KindCustomCommand
		}
		rows[i] = row{
			name:        e.Name,
			description: e.Description,
			style:       r.names[kind],
		}
	}
	return r.render(rows)
}

type row struct {
	name        string
	description string
	style       lipgloss.Style
}

func (r *Renderer) render(rows []row) error {
	if len(rows) == 0 {
		_, err := fmt.Fprintln(r.w, r.description.Render(EmptyMessage))
		return err
	}

	width := 0
	for _, row := range rows {
		width = max(width, lipgloss.Width(row.name))
	}

	var sb strings.Builder
	for _, row := range rows {
		sb.WriteString(row.style.Render(row.name))
		if row.description != "" {
			sb.WriteString(strings.Repeat(" ", width-lipgloss.Width(row.name)+2))
			sb.WriteString(r.description.Render(row.description))
		}
		sb.WriteString("\n")
	}

	_, err := io.WriteString(r.w, sb.String())
	return err
}
