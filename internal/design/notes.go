package design

import (
	"fmt"
	"strings"
)

// SiteStrategy returns four advisory notes derived from the plot: area,
// orientation, slope, and climate. The templates are fixed; only the plot
// values are substituted.
func SiteStrategy(plot PlotDetails) []string {
	area := plot.WidthM * plot.DepthM
	return []string{
		fmt.Sprintf("Plot area is approximately %.0f m²; reserve 35-45%% for landscaped open space.", area),
		fmt.Sprintf("Align main living spaces for %s with controlled glazing for daylight comfort.", plot.Orientation),
		fmt.Sprintf("Use a %s slope strategy: stepped slab and drainage channels if not flat.", plot.Slope),
		fmt.Sprintf("Specify envelope and shading details suitable for %s climate.", plot.Climate),
	}
}

// RoomPlanningNotes returns three advisory notes for the required rooms.
// Only the first note depends on the room list.
func RoomPlanningNotes(rooms []string) []string {
	return []string{
		fmt.Sprintf("Prioritize adjacency planning for: %s.", strings.Join(rooms, ", ")),
		"Keep kitchen, dining, and family spaces connected; isolate acoustic-sensitive spaces.",
		"Plan storage early: pantry, linen, utility, and integrated wardrobes.",
	}
}
