package calculation

import "fmt"

// InvariantViolationError reports a payment that would have driven a loan's
// principal negative. It always indicates an allocation bug in the caller,
// never bad input, so it must be surfaced and never silently recovered.
type InvariantViolationError struct {
	Loan           string
	AmountPennies  int64
	BalancePennies int64
}

func (e *InvariantViolationError) Error() string {
	return fmt.Sprintf("loan %s: payment of %d pennies exceeds balance of %d pennies",
		e.Loan, e.AmountPennies, e.BalancePennies)
}
