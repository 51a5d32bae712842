package optimize

import (
	"context"
	"sync"

	"github.com/loansim/loansim/internal/calculation"
	"github.com/loansim/loansim/internal/domain"
)

// Searcher evaluates candidate upfront payments and selects the one that
// minimizes the present-value cost of the full repayment.
type Searcher struct {
	Engine  *calculation.SimulationEngine
	Options SearchOptions
}

// NewSearcher creates a strategy searcher.
func NewSearcher(engine *calculation.SimulationEngine, options SearchOptions) *Searcher {
	return &Searcher{Engine: engine, Options: options}
}

// NewDefaultSearcher creates a searcher with default options.
func NewDefaultSearcher(engine *calculation.SimulationEngine) *Searcher {
	return NewSearcher(engine, DefaultSearchOptions())
}

// Search runs one full simulation per candidate upfront payment ($0 and
// every step up to, but not including, the starting balance) and returns
// every outcome plus the global present-value minimizer. Ties go to the
// smaller upfront payment. The search always covers the entire candidate
// grid; it never stops at a local minimum, because discounting can make the
// present-value curve non-monotonic.
func (s *Searcher) Search(ctx context.Context, records []domain.LoanRecord) (*domain.SearchResult, error) {
	if len(records) == 0 {
		return nil, &SearchError{
			Operation: "search",
			Message:   "no loan records to simulate",
		}
	}

	step := s.Options.StepPennies
	if step <= 0 {
		step = StepPennies
	}

	var startingBalance int64
	for _, r := range records {
		startingBalance += r.BalancePennies()
	}

	// One candidate per whole step below the starting balance; the $0
	// baseline is always evaluated even when the debt is below one step.
	candidates := int(startingBalance / step)
	if candidates < 1 {
		candidates = 1
	}

	outcomes := make([]domain.StrategyOutcome, candidates)
	if s.Options.Workers > 1 {
		if err := s.searchParallel(ctx, records, step, outcomes); err != nil {
			return nil, err
		}
	} else {
		for i := range outcomes {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			default:
			}
			outcome, err := s.evaluate(records, int64(i)*step)
			if err != nil {
				return nil, err
			}
			outcomes[i] = outcome
		}
	}

	best := outcomes[0]
	for _, o := range outcomes[1:] {
		if o.PresentValuePennies.LessThan(best.PresentValuePennies) {
			best = o
		}
	}

	// Re-simulate the winner once to capture its month-by-month detail.
	bestRun, err := s.Engine.Run(records, best.UpfrontPennies)
	if err != nil {
		return nil, &SearchError{
			Operation: "search",
			Message:   "failed to re-simulate best strategy",
			Cause:     err,
		}
	}

	return &domain.SearchResult{
		StartingBalancePennies: startingBalance,
		Outcomes:               outcomes,
		Best:                   best,
		BestRun:                bestRun,
	}, nil
}

// searchParallel evaluates candidates on a bounded worker pool. Every
// worker writes only to its own candidate indexes, so the results slice
// needs no locking; the first error wins and cancels the rest.
func (s *Searcher) searchParallel(ctx context.Context, records []domain.LoanRecord, step int64, outcomes []domain.StrategyOutcome) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	workers := s.Options.Workers
	if workers > len(outcomes) {
		workers = len(outcomes)
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	var errOnce sync.Once
	var firstErr error

	fail := func(err error) {
		errOnce.Do(func() {
			firstErr = err
			cancel()
		})
	}

	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range jobs {
				outcome, err := s.evaluate(records, int64(i)*step)
				if err != nil {
					fail(err)
					return
				}
				outcomes[i] = outcome
			}
		}()
	}

feed:
	for i := range outcomes {
		if err := ctx.Err(); err != nil {
			fail(err)
			break feed
		}
		select {
		case <-ctx.Done():
			fail(ctx.Err())
			break feed
		case jobs <- i:
		}
	}
	close(jobs)
	wg.Wait()
	return firstErr
}

// evaluate runs one candidate strategy from the shared immutable records.
func (s *Searcher) evaluate(records []domain.LoanRecord, upfrontPennies int64) (domain.StrategyOutcome, error) {
	run, err := s.Engine.Run(records, upfrontPennies)
	if err != nil {
		return domain.StrategyOutcome{}, &SearchError{
			Operation: "evaluate",
			Message:   "simulation failed",
			Cause:     err,
		}
	}
	return domain.StrategyOutcome{
		UpfrontPennies:      run.UpfrontPennies,
		TotalPaidPennies:    run.TotalPaidPennies,
		PresentValuePennies: run.PresentValuePennies,
	}, nil
}
