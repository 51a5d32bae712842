package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/loansim/loansim/internal/optimize"
	"github.com/loansim/loansim/internal/tui/components"
)

// Update handles all messages and updates the model state
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case ErrorMsg:
		m.err = msg.Err
		m.loading = false
		return m, nil

	case InputsLoadedMsg:
		m.records = msg.Records
		m.simConfig = msg.Config
		m.searcher = newSearcher(msg.Config)
		m.loading = true
		m.loadingText = "Evaluating strategies..."
		return m, tea.Batch(searchCmd(m.searcher, m.records), m.spinner.Tick)

	case SearchCompleteMsg:
		m.loading = false
		if msg.Err != nil {
			m.err = msg.Err
			return m, nil
		}
		m.err = nil
		m.result = msg.Result

		step := m.searcher.Options.StepPennies
		maxUpfront := int64(len(msg.Result.Outcomes)-1) * step
		m.slider = components.NewUpfrontSlider("Upfront Payment", maxUpfront, step).
			WithDescription("Each position re-reads a pre-computed strategy; no waiting.")
		m.slider.IsFocused = true
		m.slider.SetValue(msg.Result.Best.UpfrontPennies)
		return m, nil
	}

	return m, nil
}

// handleKeyPress processes keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Left):
		if m.slider != nil {
			m.slider.Decrement()
		}
		return m, nil

	case key.Matches(msg, m.keys.Right):
		if m.slider != nil {
			m.slider.Increment()
		}
		return m, nil

	case key.Matches(msg, m.keys.Home):
		if m.slider != nil {
			m.slider.SetValue(0)
		}
		return m, nil

	case key.Matches(msg, m.keys.End):
		if m.slider != nil && m.result != nil {
			m.slider.SetValue(m.result.Best.UpfrontPennies)
		}
		return m, nil

	case key.Matches(msg, m.keys.RateUp):
		return m.adjustSavingsRate(savingsRateStep)

	case key.Matches(msg, m.keys.RateDown):
		return m.adjustSavingsRate(-savingsRateStep)

	case key.Matches(msg, m.keys.Details):
		m.showDetail = !m.showDetail
		return m, nil

	case key.Matches(msg, m.keys.Rerun):
		if m.searcher != nil && !m.loading {
			m.loading = true
			m.loadingText = "Evaluating strategies..."
			return m, tea.Batch(searchCmd(m.searcher, m.records), m.spinner.Tick)
		}
		return m, nil
	}

	return m, nil
}

// savingsRateStep is half a percentage point per keypress.
const savingsRateStep = 0.005

// adjustSavingsRate shifts the opportunity-cost rate, rebuilds the engine
// behind the searcher, and re-evaluates every strategy.
func (m Model) adjustSavingsRate(delta float64) (tea.Model, tea.Cmd) {
	if m.searcher == nil || m.loading {
		return m, nil
	}

	rate := m.simConfig.AnnualSavingsRate + delta
	if rate < 0 {
		rate = 0
	}
	if rate == m.simConfig.AnnualSavingsRate {
		return m, nil
	}

	m.simConfig.AnnualSavingsRate = rate
	m.searcher = newSearcher(m.simConfig)
	m.loading = true
	m.loadingText = "Evaluating strategies..."
	return m, tea.Batch(searchCmd(m.searcher, m.records), m.spinner.Tick)
}

// selectedIndex maps the slider position to its candidate outcome index.
func (m Model) selectedIndex() int {
	if m.slider == nil || m.searcher == nil {
		return 0
	}
	step := m.searcher.Options.StepPennies
	if step <= 0 {
		step = optimize.StepPennies
	}
	return int(m.slider.Value / step)
}
