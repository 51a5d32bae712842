package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestRecordPaymentAtMonthZeroIsUndiscounted(t *testing.T) {
	history := NewPaymentHistory(0.05)
	history.RecordPayment(100000, 0)

	assert.Equal(t, int64(100000), history.TotalPaidPennies)
	assert.True(t, history.PresentValuePennies.Equal(decimal.NewFromInt(100000)))
}

func TestRecordPaymentDiscountsFutureMonths(t *testing.T) {
	history := NewPaymentHistory(0.03)
	history.RecordPayment(100000, 12)

	// 3% nominal compounded monthly: divide by 1.0025^12.
	factor := decimal.NewFromFloat(1.0025).Pow(decimal.NewFromInt(12))
	expected := decimal.NewFromInt(100000).Div(factor)

	diff := history.PresentValuePennies.Sub(expected).Abs()
	assert.True(t, diff.LessThan(decimal.NewFromFloat(0.001)),
		"got %s want %s", history.PresentValuePennies, expected)
	assert.True(t, history.PresentValuePennies.LessThan(decimal.NewFromInt(100000)))
}

func TestRecordPaymentFurtherOutIsWorthLess(t *testing.T) {
	near := NewPaymentHistory(0.05)
	near.RecordPayment(100000, 1)

	far := NewPaymentHistory(0.05)
	far.RecordPayment(100000, 60)

	assert.True(t, far.PresentValuePennies.LessThan(near.PresentValuePennies))
}

func TestRecordPaymentZeroSavingsRateNoDiscount(t *testing.T) {
	history := NewPaymentHistory(0)
	history.RecordPayment(50000, 36)

	assert.True(t, history.PresentValuePennies.Equal(decimal.NewFromInt(50000)))
}

func TestRecordPaymentAccumulates(t *testing.T) {
	history := NewPaymentHistory(0.05)
	history.RecordPayment(10000, 0)
	history.RecordPayment(20000, 1)
	history.RecordPayment(30000, 2)

	assert.Equal(t, int64(60000), history.TotalPaidPennies)
	// Every discounted payment is worth at most its nominal amount.
	assert.True(t, history.PresentValuePennies.LessThan(decimal.NewFromInt(60000)))
	assert.True(t, history.PresentValuePennies.GreaterThan(decimal.NewFromInt(59000)))
}
