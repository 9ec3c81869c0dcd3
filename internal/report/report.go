// Package report renders a design proposal as a plain-text report.
package report

import (
	"fmt"
	"strings"

	"github.com/muesli/reflow/wordwrap"

	"github.com/mistakeknot/hearthplan/internal/design"
)

const (
	ruleWidth      = 72
	wrapWidth      = 68
	bulletPrefix   = "  - "
	continueIndent = "    "
)

type section struct {
	Title string
	Items []string
}

// Render formats the proposal as the human-readable report: title, style
// summary, then one section per output list with wrapped bullet items.
func Render(p design.Proposal) string {
	var b strings.Builder
	b.WriteString("\nHOUSE DESIGN PROPOSAL\n")
	b.WriteString(strings.Repeat("=", ruleWidth) + "\n")
	fmt.Fprintf(&b, "Style: %s (confidence: %s)\n", titleCase(string(p.SelectedStyle)), p.StyleConfidence)

	for _, sec := range sections(p) {
		b.WriteString("\n" + sec.Title + ":\n")
		for _, item := range sec.Items {
			b.WriteString(bullet(item) + "\n")
		}
	}
	return b.String()
}

func sections(p design.Proposal) []section {
	return []section{
		{Title: "Exterior Finishes", Items: p.ExteriorFinishes},
		{Title: "Interior Finishes", Items: p.InteriorFinishes},
		{Title: "Suggested Features", Items: p.SuggestedFeatures},
		{Title: "Site Strategy", Items: p.SiteStrategy},
		{Title: "Room Planning Notes", Items: p.RoomPlanningNotes},
	}
}

// bullet wraps one item at wrapWidth and indents continuation lines.
// The indent counts against the width, so continuation lines never
// exceed wrapWidth columns.
func bullet(item string) string {
	wrapped := wrap(item, wrapWidth)
	idx := strings.IndexByte(wrapped, '\n')
	if idx < 0 {
		return bulletPrefix + wrapped
	}
	first := wrapped[:idx]
	rest := strings.ReplaceAll(wrapped[idx+1:], "\n", " ")
	lines := strings.Split(wrap(rest, wrapWidth-len(continueIndent)), "\n")
	for i := range lines {
		lines[i] = continueIndent + lines[i]
	}
	return bulletPrefix + first + "\n" + strings.Join(lines, "\n")
}

// wrap breaks text on spaces only. Hyphenated tokens like "35-45%" must
// stay intact, so reflow's default breakpoint runes are disabled.
func wrap(text string, limit int) string {
	w := wordwrap.NewWriter(limit)
	w.Breakpoints = []rune{}
	_, _ = w.Write([]byte(text))
	_ = w.Close()
	return w.String()
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
