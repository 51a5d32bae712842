package tuistyles

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	ColorPrimary    = lipgloss.Color("#7D56F4")
	ColorAccent     = lipgloss.Color("#04B575")
	ColorForeground = lipgloss.Color("#FAFAFA")
	ColorMuted      = lipgloss.Color("#626262")
	ColorBorder     = lipgloss.Color("#444444")
	ColorInfo       = lipgloss.Color("#3C9EE7")
	ColorError      = lipgloss.Color("#ED567A")
	ColorSuccess    = lipgloss.Color("#04B575")
	ColorWarning    = lipgloss.Color("#E7B93C")
)

var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			MarginBottom(1)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	MetricLabelStyle = lipgloss.NewStyle().
				Foreground(ColorMuted)

	MetricValueStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorForeground)

	ParameterLabelStyle = lipgloss.NewStyle().
				Foreground(ColorForeground)

	ParameterValueStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorAccent)

	SliderTrackStyle = lipgloss.NewStyle().
				Foreground(ColorMuted)

	SliderThumbStyle = lipgloss.NewStyle().
				Foreground(ColorPrimary)

	InfoStyle = lipgloss.NewStyle().
			Foreground(ColorInfo)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true)

	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)
)

// MetricTrendStyle returns the style for a trend line.
func MetricTrendStyle(isPositive bool) lipgloss.Style {
	if isPositive {
		return lipgloss.NewStyle().Foreground(ColorSuccess)
	}
	return lipgloss.NewStyle().Foreground(ColorError)
}

// TrendIndicator returns the arrow character for a trend direction.
func TrendIndicator(isPositive bool) string {
	if isPositive {
		return "▲"
	}
	return "▼"
}
