// Package tui implements the interactive brief wizard.
package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mistakeknot/hearthplan/internal/design"
	pkgtui "github.com/mistakeknot/hearthplan/pkg/tui"
)

type step int

const (
	stepBrief step = iota
	stepImages
	stepRooms
	stepPlotWidth
	stepPlotDepth
	stepSlope
	stepClimate
	stepOrientation
	stepResult
)

type stepDef struct {
	Prompt      string
	Placeholder string
	Default     string
}

var stepDefs = map[step]stepDef{
	stepBrief:       {Prompt: "Describe the house you want", Placeholder: "e.g. a modern minimal house with glass walls"},
	stepImages:      {Prompt: "Image descriptors (comma-separated, optional)", Placeholder: "dark roof, white facade, stone porch"},
	stepRooms:       {Prompt: "Required rooms (comma-separated)", Default: "3 bedrooms,2 bathrooms,open kitchen,living room"},
	stepPlotWidth:   {Prompt: "Plot width in meters", Default: "15"},
	stepPlotDepth:   {Prompt: "Plot depth in meters", Default: "30"},
	stepSlope:       {Prompt: "Plot slope", Default: "flat"},
	stepClimate:     {Prompt: "Climate", Default: "temperate"},
	stepOrientation: {Prompt: "Street orientation", Default: "north-facing street"},
}

var stepOrder = []step{
	stepBrief,
	stepImages,
	stepRooms,
	stepPlotWidth,
	stepPlotDepth,
	stepSlope,
	stepClimate,
	stepOrientation,
}

// Model is the wizard state: one text input walked through the steps,
// ending in a rendered proposal.
type Model struct {
	step     step
	input    textinput.Model
	answers  map[step]string
	keys     pkgtui.CommonKeys
	proposal *design.Proposal
	width    int
	height   int
	quitting bool
}

func NewModel() Model {
	ti := textinput.New()
	ti.CharLimit = 400
	ti.Width = 60
	ti.Focus()
	m := Model{
		step:    stepBrief,
		input:   ti,
		answers: map[step]string{},
		keys:    pkgtui.NewCommonKeys(),
	}
	m.loadStep()
	return m
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			return m.back()
		case key.Matches(msg, m.keys.Select):
			return m.advance()
		}
		if m.step == stepResult {
			return m, nil
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) advance() (tea.Model, tea.Cmd) {
	if m.step == stepResult {
		m.quitting = true
		return m, tea.Quit
	}
	m.answers[m.step] = m.answerOrDefault()
	if m.step == stepOrientation {
		proposal := m.buildProposal()
		m.proposal = &proposal
		m.step = stepResult
		return m, nil
	}
	m.step = stepOrder[stepIndex(m.step)+1]
	m.loadStep()
	return m, nil
}

func (m Model) back() (tea.Model, tea.Cmd) {
	if m.step == stepBrief {
		m.quitting = true
		return m, tea.Quit
	}
	if m.step == stepResult {
		m.proposal = nil
		m.step = stepOrientation
		m.loadStep()
		return m, nil
	}
	m.answers[m.step] = m.input.Value()
	m.step = stepOrder[stepIndex(m.step)-1]
	m.loadStep()
	return m, nil
}

func (m *Model) loadStep() {
	def := stepDefs[m.step]
	m.input.Placeholder = def.Placeholder
	if def.Placeholder == "" {
		m.input.Placeholder = def.Default
	}
	m.input.SetValue(m.answers[m.step])
	m.input.CursorEnd()
}

func (m Model) answerOrDefault() string {
	value := strings.TrimSpace(m.input.Value())
	if value == "" {
		return stepDefs[m.step].Default
	}
	return value
}

func (m Model) buildProposal() design.Proposal {
	return design.Propose(design.UserInputs{
		Brief:             m.answers[stepBrief],
		ImageDescriptions: design.SplitList(m.answers[stepImages]),
		RequiredRooms:     design.SplitList(m.answers[stepRooms]),
		Plot: design.PlotDetails{
			WidthM:      parseMeters(m.answers[stepPlotWidth], 15),
			DepthM:      parseMeters(m.answers[stepPlotDepth], 30),
			Slope:       m.answers[stepSlope],
			Climate:     m.answers[stepClimate],
			Orientation: m.answers[stepOrientation],
		},
	})
}

// Proposal returns the generated proposal once the wizard reached the
// result step, nil before that.
func (m Model) Proposal() *design.Proposal {
	return m.proposal
}

func stepIndex(s step) int {
	for i, candidate := range stepOrder {
		if candidate == s {
			return i
		}
	}
	return 0
}

func parseMeters(raw string, fallback float64) float64 {
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return fallback
	}
	return value
}
