package design

import "strings"

// PlotDetails describes the plot the house will sit on. Dimensions are in
// meters; slope, climate, and orientation are free text.
type PlotDetails struct {
	WidthM      float64 `json:"width_m" yaml:"width_m"`
	DepthM      float64 `json:"depth_m" yaml:"depth_m"`
	Slope       string  `json:"slope" yaml:"slope"`
	Climate     string  `json:"climate" yaml:"climate"`
	Orientation string  `json:"orientation" yaml:"orientation"`
}

// UserInputs is the full request for one proposal.
type UserInputs struct {
	Brief             string
	ImageDescriptions []string
	RequiredRooms     []string
	Plot              PlotDetails
}

// SplitList splits a comma-separated input field, trimming segments and
// dropping empties. Both the flag surface and the wizard feed UserInputs
// through it.
func SplitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// Confidence levels for a proposal. "high" means image descriptors backed
// the inference; "medium" means the brief alone did.
const (
	ConfidenceHigh   = "high"
	ConfidenceMedium = "medium"
)

// Proposal is the generated design concept. Field order here fixes the
// field order of the structured output.
type Proposal struct {
	SelectedStyle     Style    `json:"selected_style" yaml:"selected_style"`
	StyleConfidence   string   `json:"style_confidence" yaml:"style_confidence"`
	ExteriorFinishes  []string `json:"exterior_finishes" yaml:"exterior_finishes"`
	InteriorFinishes  []string `json:"interior_finishes" yaml:"interior_finishes"`
	SuggestedFeatures []string `json:"suggested_features" yaml:"suggested_features"`
	SiteStrategy      []string `json:"site_strategy" yaml:"site_strategy"`
	RoomPlanningNotes []string `json:"room_planning_notes" yaml:"room_planning_notes"`
}

// Propose assembles a full proposal from user inputs. It is total: any
// well-formed UserInputs yields a proposal.
func Propose(inputs UserInputs) Proposal {
	style := InferStyle(inputs.Brief, inputs.ImageDescriptions)
	pkg, _ := LookupPackage(style)

	confidence := ConfidenceMedium
	if len(inputs.ImageDescriptions) > 0 {
		confidence = ConfidenceHigh
	}

	return Proposal{
		SelectedStyle:     style,
		StyleConfidence:   confidence,
		ExteriorFinishes:  pkg.Exterior,
		InteriorFinishes:  pkg.Interior,
		SuggestedFeatures: pkg.Features,
		SiteStrategy:      SiteStrategy(inputs.Plot),
		RoomPlanningNotes: RoomPlanningNotes(inputs.RequiredRooms),
	}
}
