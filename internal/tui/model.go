package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/loansim/loansim/internal/calculation"
	"github.com/loansim/loansim/internal/config"
	"github.com/loansim/loansim/internal/domain"
	"github.com/loansim/loansim/internal/optimize"
	"github.com/loansim/loansim/internal/tui/components"
	"github.com/loansim/loansim/internal/tui/tuistyles"
)

// Model represents the entire application state
type Model struct {
	// Terminal dimensions
	width  int
	height int

	// Configuration and data
	configPath string
	records    []domain.LoanRecord
	simConfig  domain.SimulationConfig

	// Search machinery
	searcher *optimize.Searcher
	result   *domain.SearchResult

	// UI state
	slider      *components.UpfrontSlider
	spinner     spinner.Model
	keys        KeyMap
	showDetail  bool
	loading     bool
	loadingText string

	// Error state
	err error
}

// NewModel creates a new application model
func NewModel(configPath string) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = tuistyles.InfoStyle

	return Model{
		configPath:  configPath,
		spinner:     sp,
		keys:        DefaultKeyMap(),
		loading:     true,
		loadingText: "Loading configuration...",
		width:       80,
		height:      24,
	}
}

// Init initializes the model (required by tea.Model interface)
func (m Model) Init() tea.Cmd {
	return tea.Batch(loadInputsCmd(m.configPath), m.spinner.Tick)
}

// loadInputsCmd returns a command that loads the configuration and loan file
func loadInputsCmd(path string) tea.Cmd {
	return func() tea.Msg {
		parser := config.NewInputParser()
		cfg, err := parser.LoadFromFile(path)
		if err != nil {
			return ErrorMsg{Err: err}
		}

		simConfig, err := parser.ToSimulationConfig(cfg)
		if err != nil {
			return ErrorMsg{Err: err}
		}

		loader := config.NewLoanLoader()
		records, err := loader.LoadFromFile(cfg.LoanFile)
		if err != nil {
			return ErrorMsg{Err: err}
		}

		return InputsLoadedMsg{Records: records, Config: simConfig}
	}
}

// searchCmd returns a command that runs the full strategy search
func searchCmd(searcher *optimize.Searcher, records []domain.LoanRecord) tea.Cmd {
	return func() tea.Msg {
		result, err := searcher.Search(context.Background(), records)
		return SearchCompleteMsg{Result: result, Err: err}
	}
}

// newSearcher builds the searcher once the inputs are known.
func newSearcher(simConfig domain.SimulationConfig) *optimize.Searcher {
	engine := calculation.NewSimulationEngine(simConfig)
	options := optimize.DefaultSearchOptions()
	options.Workers = 4
	return optimize.NewSearcher(engine, options)
}
