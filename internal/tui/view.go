package tui

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/loansim/loansim/internal/output"
	"github.com/loansim/loansim/internal/tui/components"
	"github.com/loansim/loansim/internal/tui/tuistyles"
)

// View renders the current application state
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(tuistyles.TitleStyle.Render("Loan Repayment Strategy Explorer"))
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(tuistyles.ErrorStyle.Render("Error: " + m.err.Error()))
		b.WriteString("\n\n")
		b.WriteString(tuistyles.HelpStyle.Render("q quit • r retry"))
		b.WriteString("\n")
		return b.String()
	}

	if m.loading {
		b.WriteString(fmt.Sprintf("%s %s\n", m.spinner.View(), m.loadingText))
		return b.String()
	}

	if m.result == nil {
		b.WriteString(tuistyles.SubtitleStyle.Render("No results yet."))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(tuistyles.SubtitleStyle.Render(
		fmt.Sprintf("Savings rate %.2f%% annual", m.simConfig.AnnualSavingsRate*100)))
	b.WriteString("\n\n")
	b.WriteString(m.renderMetrics())
	b.WriteString("\n")
	b.WriteString(m.renderChart())
	b.WriteString("\n\n")
	if m.slider != nil {
		b.WriteString(m.slider.Render())
		b.WriteString("\n")
	}
	if m.showDetail {
		b.WriteString("\n")
		b.WriteString(m.renderDetail())
	}

	b.WriteString("\n")
	b.WriteString(tuistyles.HelpStyle.Render(
		"←/→ adjust • 0 none • b best • +/- savings rate • d detail • r re-run • q quit"))
	b.WriteString("\n")
	return b.String()
}

// renderMetrics shows the selected strategy's outcome next to the best one.
func (m Model) renderMetrics() string {
	idx := m.selectedIndex()
	if idx >= len(m.result.Outcomes) {
		idx = len(m.result.Outcomes) - 1
	}
	selected := m.result.Outcomes[idx]
	best := m.result.Best

	upfrontCard := components.NewMetricCard("Upfront Payment",
		output.FormatPennies(selected.UpfrontPennies))
	if selected.UpfrontPennies == best.UpfrontPennies {
		upfrontCard.WithDescription("optimal strategy")
	}

	paidCard := components.NewMetricCard("Total Paid",
		output.FormatPennies(selected.TotalPaidPennies))

	pvCard := components.NewMetricCard("Present Value",
		output.FormatCurrency(selected.PresentValuePennies.Div(decimal.NewFromInt(100))))
	if selected.UpfrontPennies != best.UpfrontPennies {
		excess := selected.PresentValuePennies.Sub(best.PresentValuePennies).Div(decimal.NewFromInt(100))
		pvCard.WithTrend(false, "+"+output.FormatCurrency(excess)+" vs best")
	}

	return components.MetricRow(upfrontCard, paidCard, pvCard)
}

// renderChart plots the present-value curve across all candidates.
func (m Model) renderChart() string {
	points := make([]float64, len(m.result.Outcomes))
	bestIdx := 0
	for i, o := range m.result.Outcomes {
		points[i], _ = o.PresentValuePennies.Div(decimal.NewFromInt(100)).Float64()
		if o.UpfrontPennies == m.result.Best.UpfrontPennies {
			bestIdx = i
		}
	}

	step := int64(optimizeStepDollars(m))
	chart := components.NewPVChart(points, step)
	chart.SelectedIndex = m.selectedIndex()
	chart.BestIndex = bestIdx
	if m.width > 20 {
		chart.Width = clampWidth(m.width - 4)
	}
	return chart.Render()
}

// clampWidth keeps the chart inside the terminal without letting a very
// wide window stretch the curve too thin.
func clampWidth(w int) int {
	if w > 90 {
		return 90
	}
	return w
}

// renderDetail traces the winning run month by month until payoff.
func (m Model) renderDetail() string {
	run := m.result.BestRun
	if run == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(tuistyles.SubtitleStyle.Render("Monthly detail (best strategy)"))
	b.WriteString("\n")
	for i, month := range run.Months {
		b.WriteString(fmt.Sprintf("[%3d] minimum %-12s balance %-14s paid %s\n",
			i+1,
			output.FormatPennies(month.MinimumPaymentPennies),
			output.FormatPennies(month.BalancePennies),
			output.FormatPennies(month.TotalPaidPennies)))
		if month.BalancePennies == 0 {
			b.WriteString(tuistyles.InfoStyle.Render(
				fmt.Sprintf("Debt retired after %d months.", i+1)))
			b.WriteString("\n")
			break
		}
	}
	return b.String()
}

func optimizeStepDollars(m Model) int64 {
	if m.searcher != nil && m.searcher.Options.StepPennies > 0 {
		return m.searcher.Options.StepPennies / 100
	}
	return 1000
}
