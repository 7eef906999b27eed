package drift

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorCyan   = lipgloss.Color("36")
	colorGreen  = lipgloss.Color("35")
	colorYellow = lipgloss.Color("220")
	colorRed    = lipgloss.Color("167")
	colorDim    = lipgloss.Color("240")
)

// textStyles holds the report styles bound to one output's renderer, so
// colors are dropped when the output is not a terminal.
type textStyles struct {
	title, ok, warn, bad, dim lipgloss.Style
}

func newTextStyles(w io.Writer) textStyles {
	r := lipgloss.NewRenderer(w)
	return textStyles{
		title: r.NewStyle().Bold(true).Foreground(colorCyan),
		ok:    r.NewStyle().Foreground(colorGreen),
		warn:  r.NewStyle().Foreground(colorYellow),
		bad:   r.NewStyle().Foreground(colorRed),
		dim:   r.NewStyle().Foreground(colorDim),
	}
}

// WriteText writes a human-readable report.
func WriteText(w io.Writer, r *Report) error {
	st := newTextStyles(w)
	var b strings.Builder

	b.WriteString(st.title.Render("=== Feature Drift Report ==="))
	b.WriteString("\n\n")

	for _, g := range r.Groups {
		fmt.Fprintf(&b, "%s (%d features, %d published, %d matched)\n",
			st.title.Render(g.Group), g.Authoritative, g.Published, g.Matched)
		if len(g.Missing) == 0 {
			b.WriteString("  " + st.ok.Render("✓ no missing features") + "\n")
		} else {
			b.WriteString("  " + st.bad.Render(fmt.Sprintf("✗ missing from published catalog (%d):", len(g.Missing))) + "\n")
			for _, id := range g.Missing {
				b.WriteString("    " + string(id) + "\n")
			}
		}
		if len(g.PublishedOnly) > 0 {
			b.WriteString("  " + st.warn.Render(fmt.Sprintf("! published but not found on device (%d):", len(g.PublishedOnly))) + "\n")
			for _, id := range g.PublishedOnly {
				b.WriteString("    " + st.dim.Render(string(id)) + "\n")
			}
		}
		b.WriteString("\n")
	}

	s := r.Summary
	pct := 100
	if s.TotalAuthoritative > 0 {
		pct = s.Matched * 100 / s.TotalAuthoritative
	}
	b.WriteString(st.title.Render("--- Summary ---") + "\n")
	fmt.Fprintf(&b, "Groups:           %d\n", s.Groups)
	fmt.Fprintf(&b, "Device features:  %d\n", s.TotalAuthoritative)
	fmt.Fprintf(&b, "Published:        %d\n", s.TotalPublished)
	fmt.Fprintf(&b, "Matched:          %d (%d%%)\n", s.Matched, pct)
	fmt.Fprintf(&b, "Missing:          %d\n", s.Missing)
	fmt.Fprintf(&b, "Published only:   %d\n", s.PublishedOnly)

	_, err := io.WriteString(w, b.String())
	return err
}

// WriteJSON writes the report as indented JSON.
func WriteJSON(w io.Writer, r *Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}
