package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Markers shared across command output.
const (
	IconCheck = "✓"
	IconCross = "✗"
)

// murmur's palette, ANSI-16 so it follows the terminal theme.
var (
	colorAccent  = lipgloss.Color("12")
	colorGood    = lipgloss.Color("10")
	colorBad     = lipgloss.Color("9")
	colorCaution = lipgloss.Color("11")
	colorName    = lipgloss.Color("13")
	colorDetail  = lipgloss.Color("14")
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	successStyle = lipgloss.NewStyle().Foreground(colorGood)
	errorStyle   = lipgloss.NewStyle().Foreground(colorBad)
	warningStyle = lipgloss.NewStyle().Foreground(colorCaution)
	mutedStyle   = lipgloss.NewStyle().Faint(true)
	boldStyle    = lipgloss.NewStyle().Bold(true)
	keywordStyle = lipgloss.NewStyle().Foreground(colorName)
	valueStyle   = lipgloss.NewStyle().Foreground(colorDetail)
)

func Header(text string) string {
	return headerStyle.Render(text)
}

func Success(text string) string {
	return successStyle.Render(text)
}

func ErrorMsg(text string) string {
	return errorStyle.Render(text)
}

func Warning(text string) string {
	return warningStyle.Render(text)
}

func Muted(text string) string {
	return mutedStyle.Render(text)
}

func Bold(text string) string {
	return boldStyle.Render(text)
}

func Keyword(text string) string {
	return keywordStyle.Render(text)
}

func Value(text string) string {
	return valueStyle.Render(text)
}

// StatusDownloaded renders the cache status marker for a present model.
func StatusDownloaded() string {
	return Success(IconCheck + " downloaded")
}

// StatusMissing renders the cache status marker for an absent model.
func StatusMissing() string {
	return Muted(IconCross + " not downloaded")
}

// FitMarker renders whether a model fits the current memory budget.
func FitMarker(fits bool) string {
	if fits {
		return Success(IconCheck)
	}
	return ErrorMsg(IconCross)
}
