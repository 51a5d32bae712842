package optimize

// StepPennies is the default spacing between candidate upfront payments:
// whole $1000 increments.
const StepPennies = 1000 * 100

// SearchOptions configures the strategy search.
type SearchOptions struct {
	StepPennies int64 // spacing between candidate upfront payments
	Workers     int   // concurrent candidate evaluations; <= 1 is sequential
}

// DefaultSearchOptions returns the default search configuration.
func DefaultSearchOptions() SearchOptions {
	return SearchOptions{
		StepPennies: StepPennies,
		Workers:     1,
	}
}

// SearchError represents errors from the strategy search.
type SearchError struct {
	Operation string
	Message   string
	Cause     error
}

func (e *SearchError) Error() string {
	if e.Cause != nil {
		return e.Operation + ": " + e.Message + ": " + e.Cause.Error()
	}
	return e.Operation + ": " + e.Message
}

func (e *SearchError) Unwrap() error {
	return e.Cause
}
