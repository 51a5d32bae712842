package calculation

import "github.com/loansim/loansim/internal/domain"

// HorizonMonths is the fixed simulation horizon. Every run iterates exactly
// this many months regardless of when the portfolio reaches zero; payments
// against an already-empty portfolio are no-ops.
const HorizonMonths = 120

// startCalendarMonth is the calendar month (0 = January) at which every
// simulation begins. It exists only to line employer contributions up with
// a month of the year.
const startCalendarMonth = 9

// SimulationEngine runs full repayment simulations. It holds no mutable
// state of its own; every Run builds a fresh portfolio and payment history
// from the immutable loan records, so a single engine is safe to share
// across concurrent strategy evaluations.
type SimulationEngine struct {
	Config domain.SimulationConfig
	logger Logger
}

// NewSimulationEngine creates an engine with the given configuration.
func NewSimulationEngine(config domain.SimulationConfig) *SimulationEngine {
	return &SimulationEngine{Config: config, logger: NopLogger{}}
}

// SetLogger installs a logger for per-month debug output. Passing nil
// restores the no-op logger.
func (e *SimulationEngine) SetLogger(l Logger) {
	if l == nil {
		l = NopLogger{}
	}
	e.logger = l
}

// Run simulates the full horizon for one candidate upfront payment. The
// upfront amount is applied before the first month and recorded
// undiscounted; each month thereafter accrues interest, pays the minimums,
// and applies the employer contribution in its configured month.
func (e *SimulationEngine) Run(records []domain.LoanRecord, upfrontPennies int64) (*domain.RunResult, error) {
	portfolio := NewLoanPortfolioFromRecords(records, e.Config.AutoPayRateDiscount)
	history := NewPaymentHistory(e.Config.AnnualSavingsRate)

	result := &domain.RunResult{
		UpfrontPennies: upfrontPennies,
		Months:         make([]domain.MonthSnapshot, 0, HorizonMonths),
	}

	if upfrontPennies > 0 {
		if err := e.makeEarlyPayment(portfolio, history, upfrontPennies); err != nil {
			return nil, err
		}
	}

	currentMonth := startCalendarMonth
	for monthsRemaining := HorizonMonths; monthsRemaining > 0; monthsRemaining-- {
		minimum, err := portfolio.SimulateOneMonthMinimumPayments(monthsRemaining)
		if err != nil {
			return nil, err
		}
		history.RecordPayment(minimum, (HorizonMonths-monthsRemaining)+1)

		if e.Config.Employer != nil && currentMonth == e.Config.Employer.Month {
			// Employer money pays down debt but is not the borrower's
			// cash out, so it never enters the payment history.
			if err := portfolio.MakeAdditionalPayment(e.Config.Employer.AmountPennies); err != nil {
				return nil, err
			}
		}

		result.Months = append(result.Months, domain.MonthSnapshot{
			MonthsRemaining:       monthsRemaining,
			CalendarMonth:         currentMonth,
			MinimumPaymentPennies: minimum,
			BalancePennies:        portfolio.BalancePennies(),
			TotalPaidPennies:      history.TotalPaidPennies,
			Loans:                 portfolio.Snapshot(),
		})
		e.logger.Debugf("[%d] balance=%d paid=%d minimum=%d",
			monthsRemaining, portfolio.BalancePennies(), history.TotalPaidPennies, minimum)

		currentMonth = (currentMonth + 1) % 12
	}

	result.TotalPaidPennies = history.TotalPaidPennies
	result.PresentValuePennies = history.PresentValuePennies
	return result, nil
}

// makeEarlyPayment applies the strategy's upfront payment at month zero.
func (e *SimulationEngine) makeEarlyPayment(portfolio *LoanPortfolio, history *PaymentHistory, amountPennies int64) error {
	if err := portfolio.MakeAdditionalPayment(amountPennies); err != nil {
		return err
	}
	history.RecordPayment(amountPennies, 0)
	return nil
}
