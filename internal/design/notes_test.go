package design

import (
	"strings"
	"testing"
)

func TestSiteStrategyAreaNote(t *testing.T) {
	notes := SiteStrategy(PlotDetails{
		WidthM:      15,
		DepthM:      30,
		Slope:       "flat",
		Climate:     "temperate",
		Orientation: "north-facing street",
	})
	if len(notes) != 4 {
		t.Fatalf("expected four notes, got %d", len(notes))
	}
	if !strings.Contains(notes[0], "450 m²") {
		t.Fatalf("expected area note with 450 m², got %q", notes[0])
	}
	if !strings.Contains(notes[0], "reserve 35-45%") {
		t.Fatalf("expected open-space recommendation, got %q", notes[0])
	}
}

func TestSiteStrategySubstitutesPlotValues(t *testing.T) {
	notes := SiteStrategy(PlotDetails{
		WidthM:      10,
		DepthM:      20,
		Slope:       "steep",
		Climate:     "tropical",
		Orientation: "south-facing street",
	})
	if !strings.Contains(notes[1], "south-facing street") {
		t.Fatalf("expected orientation note, got %q", notes[1])
	}
	if !strings.Contains(notes[2], "steep slope strategy") {
		t.Fatalf("expected slope note, got %q", notes[2])
	}
	if !strings.Contains(notes[3], "tropical climate") {
		t.Fatalf("expected climate note, got %q", notes[3])
	}
}

func TestSiteStrategyToleratesZeroDimensions(t *testing.T) {
	notes := SiteStrategy(PlotDetails{Slope: "flat", Climate: "temperate", Orientation: "north"})
	if !strings.Contains(notes[0], "0 m²") {
		t.Fatalf("expected zero area to pass through, got %q", notes[0])
	}
}

func TestRoomPlanningNotes(t *testing.T) {
	notes := RoomPlanningNotes([]string{"3 bedrooms", "2 bathrooms"})
	if len(notes) != 3 {
		t.Fatalf("expected three notes, got %d", len(notes))
	}
	if !strings.Contains(notes[0], "3 bedrooms, 2 bathrooms") {
		t.Fatalf("expected joined room list, got %q", notes[0])
	}
	if !strings.Contains(notes[1], "acoustic-sensitive") {
		t.Fatalf("expected acoustic note, got %q", notes[1])
	}
	if !strings.Contains(notes[2], "storage") {
		t.Fatalf("expected storage note, got %q", notes[2])
	}
}
