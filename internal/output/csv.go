package output

import (
	"encoding/csv"
	"strconv"
	"strings"

	"github.com/loansim/loansim/internal/domain"
	"github.com/shopspring/decimal"
)

// CSVFormatter formats search results as CSV, one row per candidate
// strategy. Amounts are in dollars with two decimal places; present value
// keeps four places because sub-penny precision is meaningful for ranking.
type CSVFormatter struct{}

func (cf *CSVFormatter) Name() string { return "csv" }

// Format generates CSV output for a search result.
func (cf *CSVFormatter) Format(result *domain.SearchResult) (string, error) {
	var sb strings.Builder
	writer := csv.NewWriter(&sb)

	header := []string{
		"upfront_payment",
		"total_paid",
		"present_value",
		"is_best",
	}
	if err := writer.Write(header); err != nil {
		return "", err
	}

	for _, o := range result.Outcomes {
		row := []string{
			penniesToDollarString(o.UpfrontPennies),
			penniesToDollarString(o.TotalPaidPennies),
			o.PresentValuePennies.Div(decimal.NewFromInt(100)).StringFixed(4),
			strconv.FormatBool(o.UpfrontPennies == result.Best.UpfrontPennies),
		}
		if err := writer.Write(row); err != nil {
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func penniesToDollarString(pennies int64) string {
	return decimal.NewFromInt(pennies).Div(decimal.NewFromInt(100)).StringFixed(2)
}
