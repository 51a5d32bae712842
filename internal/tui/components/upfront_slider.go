package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/loansim/loansim/internal/tui/tuistyles"
)

// UpfrontSlider lets the user pick an upfront payment along the candidate
// grid. Values are whole pennies and always a multiple of Step.
type UpfrontSlider struct {
	Label       string
	Value       int64 // pennies
	Max         int64 // pennies
	Step        int64 // pennies
	Width       int
	IsFocused   bool
	Description string
}

// NewUpfrontSlider creates a slider over [0, max] with the given step.
func NewUpfrontSlider(label string, max, step int64) *UpfrontSlider {
	return &UpfrontSlider{
		Label: label,
		Max:   max,
		Step:  step,
		Width: 40,
	}
}

// WithDescription adds help text under the slider.
func (s *UpfrontSlider) WithDescription(desc string) *UpfrontSlider {
	s.Description = desc
	return s
}

// Increment moves one step up, clamped to Max.
func (s *UpfrontSlider) Increment() {
	if s.Value+s.Step <= s.Max {
		s.Value += s.Step
	}
}

// Decrement moves one step down, clamped to zero.
func (s *UpfrontSlider) Decrement() {
	if s.Value-s.Step >= 0 {
		s.Value -= s.Step
	}
}

// SetValue snaps the value to the nearest step within range.
func (s *UpfrontSlider) SetValue(pennies int64) {
	if pennies < 0 {
		pennies = 0
	}
	if pennies > s.Max {
		pennies = s.Max
	}
	if s.Step > 0 {
		pennies = (pennies / s.Step) * s.Step
	}
	s.Value = pennies
}

// Percentage returns the value's position within the range.
func (s *UpfrontSlider) Percentage() float64 {
	if s.Max == 0 {
		return 0
	}
	return float64(s.Value) / float64(s.Max)
}

// Render returns the styled slider.
func (s *UpfrontSlider) Render() string {
	var content strings.Builder

	labelStyle := tuistyles.ParameterLabelStyle
	valueStyle := tuistyles.ParameterValueStyle
	if s.IsFocused {
		labelStyle = labelStyle.Foreground(tuistyles.ColorPrimary)
	}

	content.WriteString(labelStyle.Render(s.Label))
	content.WriteString("  ")
	content.WriteString(valueStyle.Render(formatDollars(s.Value)))
	content.WriteString("\n")
	content.WriteString(s.renderBar())

	rangeStyle := lipgloss.NewStyle().Foreground(tuistyles.ColorMuted)
	content.WriteString("\n")
	content.WriteString(rangeStyle.Render(fmt.Sprintf("%s  ─  %s", formatDollars(0), formatDollars(s.Max))))

	if s.Description != "" {
		content.WriteString("\n")
		descStyle := lipgloss.NewStyle().Foreground(tuistyles.ColorMuted).Italic(true)
		content.WriteString(descStyle.Render(s.Description))
	}

	return content.String()
}

func (s *UpfrontSlider) renderBar() string {
	filled := int(math.Round(float64(s.Width) * s.Percentage()))
	if filled < 0 {
		filled = 0
	}
	if filled > s.Width {
		filled = s.Width
	}

	thumbStyle := tuistyles.SliderThumbStyle
	if s.IsFocused {
		thumbStyle = thumbStyle.Foreground(tuistyles.ColorAccent)
	}

	var bar strings.Builder
	bar.WriteString("[")
	if filled > 1 {
		bar.WriteString(thumbStyle.Render(strings.Repeat("━", filled-1)))
	}
	bar.WriteString(thumbStyle.Render("●"))
	if empty := s.Width - filled; empty > 1 {
		bar.WriteString(tuistyles.SliderTrackStyle.Render(strings.Repeat("─", empty-1)))
	}
	bar.WriteString("]")
	return bar.String()
}

// formatDollars renders pennies as whole dollars for slider labels.
func formatDollars(pennies int64) string {
	return fmt.Sprintf("$%d", pennies/100)
}
