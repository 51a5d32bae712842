package output

import (
	"fmt"

	"github.com/loansim/loansim/internal/domain"
)

// Formatter renders a strategy search result in one output format.
type Formatter interface {
	// Name returns the format identifier used on the command line.
	Name() string
	// Format renders the search result as a string ready to print.
	Format(result *domain.SearchResult) (string, error)
}

// GetFormatterByName returns the formatter for the given format name.
// Verbosity only affects the console formatter; the machine-readable
// formats always emit everything.
func GetFormatterByName(name string, verbosity int) (Formatter, error) {
	switch name {
	case "console", "":
		return &ConsoleFormatter{Verbosity: verbosity}, nil
	case "csv":
		return &CSVFormatter{}, nil
	case "json":
		return &JSONFormatter{Pretty: true}, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s (supported: console, csv, json)", name)
	}
}
