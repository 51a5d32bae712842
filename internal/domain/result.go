package domain

import "github.com/shopspring/decimal"

// LoanSnapshot is the per-loan state captured at the end of a simulated
// month, used by verbose reporting and the TUI.
type LoanSnapshot struct {
	Name           string  `json:"name"`
	InterestRate   float64 `json:"interest_rate"`
	BalancePennies int64   `json:"balance_pennies"`
}

// MonthSnapshot is the portfolio state at the end of one simulated month.
type MonthSnapshot struct {
	MonthsRemaining       int            `json:"months_remaining"`
	CalendarMonth         int            `json:"calendar_month"` // 0 = January .. 11 = December
	MinimumPaymentPennies int64          `json:"minimum_payment_pennies"`
	BalancePennies        int64          `json:"balance_pennies"`
	TotalPaidPennies      int64          `json:"total_paid_pennies"`
	Loans                 []LoanSnapshot `json:"loans,omitempty"`
}

// RunResult is the outcome of one full simulation run for a single upfront
// payment amount.
type RunResult struct {
	UpfrontPennies      int64           `json:"upfront_pennies"`
	TotalPaidPennies    int64           `json:"total_paid_pennies"`
	PresentValuePennies decimal.Decimal `json:"present_value_pennies"`
	Months              []MonthSnapshot `json:"months,omitempty"`
}

// StrategyOutcome summarizes one candidate strategy: the upfront payment
// tried and what the full repayment cost, nominally and in present value.
type StrategyOutcome struct {
	UpfrontPennies      int64           `json:"upfront_pennies"`
	TotalPaidPennies    int64           `json:"total_paid_pennies"`
	PresentValuePennies decimal.Decimal `json:"present_value_pennies"`
}

// SearchResult is the outcome of a full strategy search over the candidate
// grid of upfront payments.
type SearchResult struct {
	StartingBalancePennies int64             `json:"starting_balance_pennies"`
	Outcomes               []StrategyOutcome `json:"outcomes"`
	Best                   StrategyOutcome   `json:"best"`
	// BestRun is the re-simulated month-by-month detail of the winning
	// strategy, for verbose reports and charts.
	BestRun *RunResult `json:"best_run,omitempty"`
}
