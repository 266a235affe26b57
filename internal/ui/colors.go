// Package ui provides terminal UI components and styling
package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette
var (
	ColorPrimary   = lipgloss.Color("39")  // Blue
	ColorSuccess   = lipgloss.Color("82")  // Green
	ColorWarning   = lipgloss.Color("214") // Orange
	ColorError     = lipgloss.Color("196") // Red
	ColorInfo      = lipgloss.Color("87")  // Cyan
	ColorMuted     = lipgloss.Color("245") // Gray
	ColorHighlight = lipgloss.Color("212") // Pink
)

// Text styles
var (
	StyleBold = lipgloss.NewStyle().Bold(true)

	StylePrimary = lipgloss.NewStyle().Foreground(ColorPrimary)
	StyleSuccess = lipgloss.NewStyle().Foreground(ColorSuccess)
	StyleWarning = lipgloss.NewStyle().Foreground(ColorWarning)
	StyleError   = lipgloss.NewStyle().Foreground(ColorError)
	StyleInfo    = lipgloss.NewStyle().Foreground(ColorInfo)
	StyleMuted   = lipgloss.NewStyle().Foreground(ColorMuted)

	StyleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			MarginBottom(1)

	StyleSubtitle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Italic(true)
)

// Status indicators
var (
	StatusPending    = StyleWarning.Render("○")
	StatusInProgress = StyleInfo.Render("◐")
	StatusCompleted  = StyleSuccess.Render("●")
	StatusFailed     = StyleError.Render("✗")
)

// Box styles
var (
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorMuted).
			Padding(0, 1)

	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Background(lipgloss.Color("236")).
			Padding(0, 1).
			Width(60)
)

// FormatStyle styles an image extension for the status listing.
// Formats with an alpha channel get the calmer color.
func FormatStyle(ext string) lipgloss.Style {
	switch strings.ToLower(ext) {
	case ".png", ".tiff", ".webp":
		return lipgloss.NewStyle().Foreground(ColorInfo)
	case ".jpg", ".jpeg":
		return lipgloss.NewStyle().Foreground(ColorWarning)
	case ".bmp":
		return lipgloss.NewStyle().Foreground(ColorHighlight)
	default:
		return lipgloss.NewStyle().Foreground(ColorMuted)
	}
}

// Truncate shortens s to at most maxLen characters, appending "..." when
// anything was cut.
func Truncate(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
