package design

// Style identifies one of the fixed architectural style packages.
type Style string

const (
	StyleModern       Style = "modern"
	StyleFarmhouse    Style = "farmhouse"
	StyleContemporary Style = "contemporary"
	StyleTraditional  Style = "traditional"
	StyleCoastal      Style = "coastal"
	StyleCraftsman    Style = "craftsman"
)

// DefaultStyle is returned when no keyword matches any style.
const DefaultStyle = StyleContemporary

// styleOrder fixes scan order for scoring and tie-breaking.
var styleOrder = []Style{
	StyleModern,
	StyleFarmhouse,
	StyleContemporary,
	StyleTraditional,
	StyleCoastal,
	StyleCraftsman,
}

// styleKeywords maps each style to the lowercase substrings that vote for it.
var styleKeywords = map[Style][]string{
	StyleModern:       {"modern", "minimal", "clean lines", "glass", "sleek"},
	StyleFarmhouse:    {"farmhouse", "rustic", "barn", "country", "cozy"},
	StyleContemporary: {"contemporary", "open concept", "bright", "bold"},
	StyleTraditional:  {"traditional", "classic", "timeless", "formal"},
	StyleCoastal:      {"coastal", "beach", "light", "airy", "ocean"},
	StyleCraftsman:    {"craftsman", "handmade", "wood", "detail", "broad porch"},
}

// Package is the fixed finish/feature bundle for one style.
type Package struct {
	Exterior []string `json:"exterior" yaml:"exterior"`
	Interior []string `json:"interior" yaml:"interior"`
	Features []string `json:"features" yaml:"features"`
}

var stylePackages = map[Style]Package{
	StyleModern: {
		Exterior: []string{
			"Standing seam metal roof in charcoal",
			"Smooth stucco with dark fiber-cement accent panels",
			"Black anodized aluminum windows",
		},
		Interior: []string{
			"Matte engineered oak flooring",
			"Flat-panel cabinetry in warm walnut and soft white",
			"Large-format porcelain tile in wet areas",
		},
		Features: []string{
			"Double-height living room glazing",
			"Hidden pantry wall",
			"Integrated linear fireplace",
		},
	},
	StyleFarmhouse: {
		Exterior: []string{
			"Board-and-batten siding in off-white",
			"Gable roof with black architectural shingles",
			"Natural stone skirt at base and porch columns",
		},
		Interior: []string{
			"Wide-plank white oak floors",
			"Shaker cabinetry with brass hardware",
			"Apron-front kitchen sink with bridge faucet",
		},
		Features: []string{
			"Wrap-around front porch",
			"Mudroom with built-in cubbies",
			"Exposed reclaimed wood ceiling beams",
		},
	},
	StyleContemporary: {
		Exterior: []string{
			"Mixed cladding: fiber-cement, wood-look panels, and stone",
			"Asymmetrical massing with strong horizontal lines",
			"Dark bronze window frames",
		},
		Interior: []string{
			"Neutral polished concrete or microcement floors",
			"High-gloss lacquer and veneer cabinet mix",
			"Statement staircase with glass balustrade",
		},
		Features: []string{
			"Skylight strip over circulation spine",
			"Flexible home office / guest suite",
			"Smart lighting scenes and occupancy controls",
		},
	},
	StyleTraditional: {
		Exterior: []string{
			"Painted brick with stone lintel detailing",
			"Symmetrical façade and multi-light windows",
			"Slate-look roof and classic cornice profile",
		},
		Interior: []string{
			"Herringbone wood flooring in main hall",
			"Raised-panel cabinetry",
			"Crown molding and paneled feature walls",
		},
		Features: []string{
			"Formal dining room with butler pantry",
			"Library / study with built-ins",
			"Generous foyer with central stair",
		},
	},
	StyleCoastal: {
		Exterior: []string{
			"Light horizontal lap siding in sand tone",
			"White trim and composite shutters",
			"Metal roof accents over porches",
		},
		Interior: []string{
			"Bleached oak flooring",
			"Soft blue-gray cabinetry accents",
			"Textured handmade-look ceramic backsplash",
		},
		Features: []string{
			"Indoor-outdoor sliding wall",
			"Covered lanai with summer kitchen",
			"Window benches for view-focused seating",
		},
	},
	StyleCraftsman: {
		Exterior: []string{
			"Tapered porch columns on stone piers",
			"Earth-tone shingle + lap siding combination",
			"Deep overhangs with exposed rafter tails",
		},
		Interior: []string{
			"Quarter-sawn oak floors and trim",
			"Built-in benches and bookcases",
			"Artisan tile around fireplace and kitchen",
		},
		Features: []string{
			"Defined entry with covered porch",
			"Window seat nooks",
			"Handcrafted millwork and door casings",
		},
	},
}

// AllStyles returns the six styles in declaration order.
func AllStyles() []Style {
	out := make([]Style, len(styleOrder))
	copy(out, styleOrder)
	return out
}

// Keywords returns the keyword list for a style, nil for unknown styles.
func Keywords(style Style) []string {
	kw, ok := styleKeywords[style]
	if !ok {
		return nil
	}
	out := make([]string, len(kw))
	copy(out, kw)
	return out
}

// LookupPackage returns the fixed package for a style. The second return
// reports whether the style is one of the six defined names.
func LookupPackage(style Style) (Package, bool) {
	pkg, ok := stylePackages[style]
	return pkg, ok
}

// CatalogEntry pairs a style with its keywords and package for listings.
type CatalogEntry struct {
	Style    Style    `json:"style" yaml:"style"`
	Keywords []string `json:"keywords" yaml:"keywords"`
	Package  Package  `json:"package" yaml:"package"`
}

// Catalog returns the full style table in declaration order.
func Catalog() []CatalogEntry {
	entries := make([]CatalogEntry, 0, len(styleOrder))
	for _, style := range styleOrder {
		entries = append(entries, CatalogEntry{
			Style:    style,
			Keywords: Keywords(style),
			Package:  stylePackages[style],
		})
	}
	return entries
}
