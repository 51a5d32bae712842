package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/loansim/loansim/internal/tui/tuistyles"
)

// MetricCard displays a single metric with label, value, and optional trend
type MetricCard struct {
	Label       string
	Value       string
	Trend       *Trend
	Description string
	Width       int
}

// Trend represents a metric's change direction and amount
type Trend struct {
	IsPositive bool
	Change     string // e.g., "+$5,234" or "-2.3%"
}

// NewMetricCard creates a new metric card
func NewMetricCard(label, value string) *MetricCard {
	return &MetricCard{
		Label: label,
		Value: value,
		Width: 26,
	}
}

// WithTrend adds a trend indicator to the metric card
func (m *MetricCard) WithTrend(isPositive bool, change string) *MetricCard {
	m.Trend = &Trend{IsPositive: isPositive, Change: change}
	return m
}

// WithDescription adds a description/subtitle
func (m *MetricCard) WithDescription(desc string) *MetricCard {
	m.Description = desc
	return m
}

// WithWidth sets the card width
func (m *MetricCard) WithWidth(width int) *MetricCard {
	m.Width = width
	return m
}

// Render returns the styled metric card
func (m *MetricCard) Render() string {
	label := tuistyles.MetricLabelStyle.Render(m.Label)
	value := tuistyles.MetricValueStyle.Render(m.Value)

	var trend string
	if m.Trend != nil {
		arrow := tuistyles.TrendIndicator(m.Trend.IsPositive)
		trendStyle := tuistyles.MetricTrendStyle(m.Trend.IsPositive)
		trend = "\n" + trendStyle.Render(fmt.Sprintf("%s %s", arrow, m.Trend.Change))
	}

	var desc string
	if m.Description != "" {
		desc = "\n" + tuistyles.SubtitleStyle.Render(m.Description)
	}

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(tuistyles.ColorBorder).
		Padding(0, 2).
		Width(m.Width)

	return cardStyle.Render(label + "\n" + value + trend + desc)
}

// MetricRow renders metric cards side by side
func MetricRow(cards ...*MetricCard) string {
	rendered := make([]string, len(cards))
	for i, card := range cards {
		rendered[i] = card.Render()
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}
