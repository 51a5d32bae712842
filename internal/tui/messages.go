package tui

import "github.com/loansim/loansim/internal/domain"

// Message types for the Bubble Tea update cycle

// ErrorMsg displays an error to the user
type ErrorMsg struct {
	Err error
}

// InputsLoadedMsg signals the configuration and loan file have been loaded
type InputsLoadedMsg struct {
	Records []domain.LoanRecord
	Config  domain.SimulationConfig
}

// SearchStartedMsg signals a strategy search has begun
type SearchStartedMsg struct{}

// SearchCompleteMsg signals the strategy search has finished
type SearchCompleteMsg struct {
	Result *domain.SearchResult
	Err    error
}
