package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/loansim/loansim/internal/tui/tuistyles"
)

// PVChart plots present-value cost against upfront payment as an ASCII
// curve, with the selected and best candidates highlighted.
type PVChart struct {
	Title         string
	Points        []float64 // present value in dollars, one per candidate
	StepDollars   int64     // upfront spacing along the X axis
	SelectedIndex int
	BestIndex     int
	Width         int
	Height        int
}

// NewPVChart creates a chart over the given present-value curve.
func NewPVChart(points []float64, stepDollars int64) *PVChart {
	return &PVChart{
		Title:       "Present Value by Upfront Payment",
		Points:      points,
		StepDollars: stepDollars,
		Width:       64,
		Height:      12,
	}
}

// Render returns the styled chart.
func (c *PVChart) Render() string {
	if len(c.Points) == 0 {
		return tuistyles.InfoStyle.Render("No data to display")
	}

	var content strings.Builder
	content.WriteString(lipgloss.NewStyle().Bold(true).Foreground(tuistyles.ColorPrimary).Render(c.Title))
	content.WriteString("\n\n")

	minVal, maxVal := c.minMax()
	content.WriteString(c.renderGrid(minVal, maxVal))

	labelStyle := lipgloss.NewStyle().Foreground(tuistyles.ColorMuted).Italic(true)
	content.WriteString(labelStyle.Render(fmt.Sprintf("upfront payment ($%d steps)", c.StepDollars)))
	content.WriteString("\n")

	legend := lipgloss.NewStyle().Foreground(tuistyles.ColorMuted).Render("Legend: ") +
		tuistyles.SliderThumbStyle.Render("●") + " curve  " +
		lipgloss.NewStyle().Foreground(tuistyles.ColorSuccess).Render("★") + " best  " +
		lipgloss.NewStyle().Foreground(tuistyles.ColorAccent).Render("▼") + " selected"
	content.WriteString(legend)

	return content.String()
}

// minMax finds the value range with a little headroom.
func (c *PVChart) minMax() (float64, float64) {
	minVal := math.Inf(1)
	maxVal := math.Inf(-1)
	for _, p := range c.Points {
		if p < minVal {
			minVal = p
		}
		if p > maxVal {
			maxVal = p
		}
	}
	if minVal == maxVal {
		// Flat curve; widen the range so it renders mid-chart.
		minVal -= 1
		maxVal += 1
	}
	padding := (maxVal - minVal) * 0.1
	return minVal - padding, maxVal + padding
}

func (c *PVChart) renderGrid(minVal, maxVal float64) string {
	yAxisWidth := 10
	chartWidth := c.Width - yAxisWidth
	if chartWidth < len(c.Points) {
		chartWidth = len(c.Points)
	}

	grid := make([][]rune, c.Height)
	for i := range grid {
		grid[i] = make([]rune, chartWidth)
		for j := range grid[i] {
			grid[i][j] = ' '
		}
	}

	xFor := func(i int) int {
		if len(c.Points) == 1 {
			return 0
		}
		return int(float64(i) / float64(len(c.Points)-1) * float64(chartWidth-1))
	}
	yFor := func(v float64) int {
		return c.Height - 1 - int((v-minVal)/(maxVal-minVal)*float64(c.Height-1))
	}

	for i, p := range c.Points {
		x, y := xFor(i), yFor(p)
		if y >= 0 && y < c.Height {
			grid[y][x] = '●'
		}
	}

	// Markers overwrite the curve so they stay visible.
	if c.BestIndex >= 0 && c.BestIndex < len(c.Points) {
		grid[yFor(c.Points[c.BestIndex])][xFor(c.BestIndex)] = '★'
	}
	if c.SelectedIndex >= 0 && c.SelectedIndex < len(c.Points) && c.SelectedIndex != c.BestIndex {
		grid[yFor(c.Points[c.SelectedIndex])][xFor(c.SelectedIndex)] = '▼'
	}

	var output strings.Builder
	yAxisStyle := lipgloss.NewStyle().
		Foreground(tuistyles.ColorMuted).
		Width(yAxisWidth).
		Align(lipgloss.Right)

	for i, row := range grid {
		yValue := maxVal - (float64(i)/float64(c.Height-1))*(maxVal-minVal)
		output.WriteString(yAxisStyle.Render(formatChartValue(yValue)))
		output.WriteString(" │ ")
		output.WriteString(string(row))
		output.WriteString("\n")
	}

	output.WriteString(strings.Repeat(" ", yAxisWidth))
	output.WriteString(" └")
	output.WriteString(strings.Repeat("─", chartWidth))
	output.WriteString("\n")

	return output.String()
}

// formatChartValue formats a value for display on the Y axis.
func formatChartValue(value float64) string {
	if math.Abs(value) >= 1000000 {
		return fmt.Sprintf("$%.1fM", value/1000000)
	} else if math.Abs(value) >= 1000 {
		return fmt.Sprintf("$%.0fK", value/1000)
	}
	return fmt.Sprintf("$%.0f", value)
}
