package domain

// LoanRecord is one validated row from the loan file. Records are immutable
// snapshots of the input: the file is read once, and every simulation run
// builds its own mutable loans from the same records.
type LoanRecord struct {
	Name                   string  `json:"name"`
	PrincipalPennies       int64   `json:"principal_pennies"`
	AccruedInterestPennies int64   `json:"accrued_interest_pennies"`
	InterestRate           float64 `json:"interest_rate"` // annual nominal rate, [0, 1)
}

// BalancePennies returns the total owed on the record: principal plus
// accrued interest.
func (r LoanRecord) BalancePennies() int64 {
	return r.PrincipalPennies + r.AccruedInterestPennies
}

// EmployerContribution is an annual lump payment made by an employer in one
// specific calendar month. Employer money reduces debt but is not the
// borrower's cash out, so it is never discounted or totaled as a payment.
type EmployerContribution struct {
	AmountPennies int64 // contributed once per simulated year
	Month         int   // calendar month, 0 = January .. 11 = December
}

// SimulationConfig carries every knob a simulation run needs. It is passed
// explicitly into the engine so that independent strategy runs share nothing
// but the immutable loan records.
type SimulationConfig struct {
	AnnualSavingsRate   float64 // discount rate used for present-value cost
	Employer            *EmployerContribution
	AutoPayRateDiscount float64 // subtracted from each loan's rate, floored at 0
	Verbosity           int     // 0 = final result .. 3 = per-loan detail
}
