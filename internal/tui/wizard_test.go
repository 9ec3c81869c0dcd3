package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mistakeknot/hearthplan/internal/design"
)

func pressKey(m Model, k string) Model {
	var msg tea.KeyMsg
	switch k {
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+c":
		msg = tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
	next, _ := m.Update(msg)
	return next.(Model)
}

func typeText(m Model, text string) Model {
	for _, r := range text {
		m = pressKey(m, string(r))
	}
	return m
}

func completeWizard(m Model, brief string) Model {
	m = typeText(m, brief)
	for range stepOrder {
		m = pressKey(m, "enter")
	}
	return m
}

func TestWizardWalksAllStepsToProposal(t *testing.T) {
	m := completeWizard(NewModel(), "a modern minimal house with glass walls")
	p := m.Proposal()
	if p == nil {
		t.Fatal("expected proposal at result step")
	}
	if p.SelectedStyle != design.StyleModern {
		t.Fatalf("expected modern, got %q", p.SelectedStyle)
	}
	if p.StyleConfidence != design.ConfidenceMedium {
		t.Fatalf("expected medium confidence, got %q", p.StyleConfidence)
	}
}

func TestWizardAppliesDefaults(t *testing.T) {
	m := completeWizard(NewModel(), "a classic home")
	p := m.Proposal()
	if p == nil {
		t.Fatal("expected proposal")
	}
	if !strings.Contains(p.SiteStrategy[0], "450 m²") {
		t.Fatalf("expected default 15x30 plot, got %q", p.SiteStrategy[0])
	}
	if !strings.Contains(p.RoomPlanningNotes[0], "3 bedrooms") {
		t.Fatalf("expected default rooms, got %q", p.RoomPlanningNotes[0])
	}
}

func TestWizardImagesRaiseConfidence(t *testing.T) {
	m := NewModel()
	m = typeText(m, "a house")
	m = pressKey(m, "enter")
	m = typeText(m, "dark roof, stone porch")
	for i := 1; i < len(stepOrder); i++ {
		m = pressKey(m, "enter")
	}
	p := m.Proposal()
	if p == nil {
		t.Fatal("expected proposal")
	}
	if p.StyleConfidence != design.ConfidenceHigh {
		t.Fatalf("expected high confidence, got %q", p.StyleConfidence)
	}
}

func TestWizardBackEditsPreviousStep(t *testing.T) {
	m := NewModel()
	m = typeText(m, "a house")
	m = pressKey(m, "enter")
	if m.step != stepImages {
		t.Fatalf("expected images step, got %d", m.step)
	}
	m = pressKey(m, "esc")
	if m.step != stepBrief {
		t.Fatalf("expected brief step after esc, got %d", m.step)
	}
	if m.input.Value() != "a house" {
		t.Fatalf("expected stored answer reloaded, got %q", m.input.Value())
	}
}

func TestWizardEscOnFirstStepQuits(t *testing.T) {
	m := pressKey(NewModel(), "esc")
	if !m.quitting {
		t.Fatal("expected quit on esc at first step")
	}
}

func TestWizardViewShowsPromptAndResult(t *testing.T) {
	m := NewModel()
	if !strings.Contains(m.View(), "Describe the house") {
		t.Fatal("expected brief prompt in view")
	}
	m = completeWizard(m, "a modern home")
	if !strings.Contains(m.View(), "Exterior Finishes") {
		t.Fatal("expected proposal sections in result view")
	}
}
