package tui

import (
	"fmt"
	"strings"

	"github.com/mistakeknot/hearthplan/internal/design"
	pkgtui "github.com/mistakeknot/hearthplan/pkg/tui"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.step == stepResult {
		return m.resultView()
	}
	return m.stepView()
}

func (m Model) stepView() string {
	def := stepDefs[m.step]
	header := pkgtui.HeaderStyle.Render("HEARTHPLAN | interview")
	progress := pkgtui.LabelStyle.Render(fmt.Sprintf("step %d of %d", stepIndex(m.step)+1, len(stepOrder)))
	prompt := pkgtui.TitleStyle.Render(def.Prompt)
	panel := pkgtui.PanelFocusedStyle.Render(prompt + "\n" + m.input.View())
	footer := pkgtui.FooterStyle.Render(pkgtui.HelpLine(m.keys))
	return strings.Join([]string{header, progress, panel, footer}, "\n")
}

func (m Model) resultView() string {
	header := pkgtui.HeaderStyle.Render("HEARTHPLAN | proposal")
	body := ""
	if m.proposal != nil {
		body = pkgtui.PanelStyle.Render(reportBody(*m.proposal))
	}
	footer := pkgtui.FooterStyle.Render("enter: done  esc: edit answers  ctrl+c: quit")
	return strings.Join([]string{header, body, footer}, "\n")
}

// reportBody renders the proposal with styled section titles for the
// result panel.
func reportBody(p design.Proposal) string {
	var b strings.Builder
	b.WriteString(pkgtui.TitleStyle.Render("Style: "+titleCase(string(p.SelectedStyle))) + " ")
	b.WriteString(pkgtui.SubtitleStyle.Render("(confidence: "+p.StyleConfidence+")") + "\n")
	sections := []struct {
		Title string
		Items []string
	}{
		{"Exterior Finishes", p.ExteriorFinishes},
		{"Interior Finishes", p.InteriorFinishes},
		{"Suggested Features", p.SuggestedFeatures},
		{"Site Strategy", p.SiteStrategy},
		{"Room Planning Notes", p.RoomPlanningNotes},
	}
	for _, sec := range sections {
		b.WriteString("\n" + pkgtui.TitleStyle.Render(sec.Title) + "\n")
		for _, item := range sec.Items {
			b.WriteString("  - " + item + "\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
