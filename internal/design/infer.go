package design

import "strings"

// InferStyle scores each style by counting how many of its keywords occur
// in the lowercased brief and image descriptors. Keywords match by substring
// containment; each keyword counts at most once. Ties resolve to the style
// declared first; an all-zero score falls back to DefaultStyle.
func InferStyle(brief string, images []string) Style {
	parts := append([]string{brief}, images...)
	combined := strings.ToLower(strings.Join(parts, " "))

	best := styleOrder[0]
	bestScore := 0
	for _, style := range styleOrder {
		score := 0
		for _, keyword := range styleKeywords[style] {
			if strings.Contains(combined, keyword) {
				score++
			}
		}
		if score > bestScore {
			best = style
			bestScore = score
		}
	}
	if bestScore == 0 {
		return DefaultStyle
	}
	return best
}
