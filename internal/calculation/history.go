package calculation

import "github.com/shopspring/decimal"

// PaymentHistory accumulates every payment the borrower makes during one
// simulation run: the nominal total and its present-value equivalent,
// discounted at the configured savings (opportunity) rate. It is never
// reset within a run.
type PaymentHistory struct {
	TotalPaidPennies    int64
	PresentValuePennies decimal.Decimal

	monthlyDiscount decimal.Decimal // 1 + savingsRate/12
}

// NewPaymentHistory creates an empty history discounting at the given
// annual savings rate, compounded monthly (nominal-rate convention).
func NewPaymentHistory(annualSavingsRate float64) *PaymentHistory {
	return &PaymentHistory{
		PresentValuePennies: decimal.Zero,
		monthlyDiscount: decimal.NewFromInt(1).
			Add(decimal.NewFromFloat(annualSavingsRate).Div(decimal.NewFromInt(12))),
	}
}

// RecordPayment adds a payment made monthsInFuture months after the start
// of the simulation. A payment at month zero is undiscounted.
func (h *PaymentHistory) RecordPayment(amountPennies int64, monthsInFuture int) {
	h.TotalPaidPennies += amountPennies
	amount := decimal.NewFromInt(amountPennies)
	if monthsInFuture <= 0 {
		h.PresentValuePennies = h.PresentValuePennies.Add(amount)
		return
	}
	factor := h.monthlyDiscount.Pow(decimal.NewFromInt(int64(monthsInFuture)))
	h.PresentValuePennies = h.PresentValuePennies.Add(amount.Div(factor))
}
