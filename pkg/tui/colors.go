// Package tui provides shared TUI styles and keybindings for hearthplan.
package tui

import "github.com/charmbracelet/lipgloss"

// Tokyo Night inspired color palette
var (
	ColorPrimary = lipgloss.Color("#7aa2f7") // Blue
	ColorSuccess = lipgloss.Color("#9ece6a") // Green
	ColorWarning = lipgloss.Color("#e0af68") // Yellow
	ColorError   = lipgloss.Color("#f7768e") // Red
	ColorMuted   = lipgloss.Color("#565f89") // Gray
	ColorBg      = lipgloss.Color("#1a1b26") // Dark background
	ColorBgLight = lipgloss.Color("#24283b") // Lighter background
	ColorFg      = lipgloss.Color("#c0caf5") // Foreground
	ColorFgDim   = lipgloss.Color("#a9b1d6") // Dimmed foreground
)
