package tui

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	ColorPrimary    = lipgloss.Color("#7D56F4")
	ColorForeground = lipgloss.Color("#FAFAFA")
	ColorMuted      = lipgloss.Color("#626262")
	ColorDanger     = lipgloss.Color("#FF5F87")

	ColorPrincipal = lipgloss.Color("#FAFAFA")
	ColorOffset    = lipgloss.Color("#FF87D7")
	ColorExtra     = lipgloss.Color("#5FD787")
	ColorInterest  = lipgloss.Color("#FF5F5F")
	ColorTotal     = lipgloss.Color("#5F87FF")

	// Base styles
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			MarginBottom(1)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	StatusBarStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			MarginTop(1)

	StatusKeyStyle = lipgloss.NewStyle().
			Foreground(ColorForeground).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorDanger).
			Bold(true)

	InfoStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Italic(true)

	MetricLabelStyle = lipgloss.NewStyle().
				Foreground(ColorMuted).
				Width(36)

	MetricValueStyle = lipgloss.NewStyle().
				Foreground(ColorForeground).
				Bold(true)

	AnnotationStyle = lipgloss.NewStyle().
			Foreground(ColorExtra)
)
