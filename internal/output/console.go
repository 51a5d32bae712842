package output

import (
	"fmt"
	"strings"

	"github.com/loansim/loansim/internal/domain"
	"github.com/shopspring/decimal"
)

// ConsoleFormatter formats search results as a human-readable report.
// Verbosity controls how much detail is shown:
//
//	0: the winning strategy only
//	1: plus the full table of candidate outcomes
//	2: plus a month-by-month summary of the winning run
//	3: plus per-loan balances within each month
type ConsoleFormatter struct {
	Verbosity int
}

func (cf *ConsoleFormatter) Name() string { return "console" }

// Format generates the console report.
func (cf *ConsoleFormatter) Format(result *domain.SearchResult) (string, error) {
	var sb strings.Builder

	sb.WriteString("REPAYMENT STRATEGY ANALYSIS\n")
	sb.WriteString(strings.Repeat("=", 78) + "\n")
	sb.WriteString(fmt.Sprintf("Starting Balance:   %s\n", FormatPennies(result.StartingBalancePennies)))
	sb.WriteString(fmt.Sprintf("Strategies Tested:  %d\n", len(result.Outcomes)))
	sb.WriteString("\n")

	sb.WriteString("BEST STRATEGY\n")
	sb.WriteString(strings.Repeat("-", 78) + "\n")
	sb.WriteString(fmt.Sprintf("Upfront Payment:    %s\n", FormatPennies(result.Best.UpfrontPennies)))
	sb.WriteString(fmt.Sprintf("Total Paid:         %s\n", FormatPennies(result.Best.TotalPaidPennies)))
	sb.WriteString(fmt.Sprintf("Present Value Cost: %s\n", FormatCurrency(result.Best.PresentValuePennies.Div(decimal.NewFromInt(100)))))

	if baseline := cf.findBaseline(result); baseline != nil && result.Best.UpfrontPennies > 0 {
		savings := baseline.PresentValuePennies.Sub(result.Best.PresentValuePennies)
		sb.WriteString(fmt.Sprintf("PV Savings vs $0:   %s\n", FormatCurrency(savings.Div(decimal.NewFromInt(100)))))
	}
	sb.WriteString("\n")

	if cf.Verbosity >= 1 {
		cf.writeOutcomeTable(&sb, result)
	}
	if cf.Verbosity >= 2 && result.BestRun != nil {
		cf.writeMonthlyDetail(&sb, result.BestRun)
	}

	return sb.String(), nil
}

// findBaseline locates the zero-upfront outcome for the savings line.
func (cf *ConsoleFormatter) findBaseline(result *domain.SearchResult) *domain.StrategyOutcome {
	for i := range result.Outcomes {
		if result.Outcomes[i].UpfrontPennies == 0 {
			return &result.Outcomes[i]
		}
	}
	return nil
}

// writeOutcomeTable writes one row per candidate strategy.
func (cf *ConsoleFormatter) writeOutcomeTable(sb *strings.Builder, result *domain.SearchResult) {
	sb.WriteString("ALL STRATEGIES\n")
	sb.WriteString(strings.Repeat("-", 78) + "\n")
	sb.WriteString(fmt.Sprintf("%-18s %18s %22s %6s\n",
		"Upfront", "Total Paid", "Present Value", "Best"))

	for _, o := range result.Outcomes {
		marker := ""
		if o.UpfrontPennies == result.Best.UpfrontPennies {
			marker = "  <--"
		}
		sb.WriteString(fmt.Sprintf("%-18s %18s %22s%s\n",
			FormatPennies(o.UpfrontPennies),
			FormatPennies(o.TotalPaidPennies),
			FormatCurrency(o.PresentValuePennies.Div(decimal.NewFromInt(100))),
			marker))
	}
	sb.WriteString("\n")
}

// writeMonthlyDetail writes the month-by-month trace of the winning run.
func (cf *ConsoleFormatter) writeMonthlyDetail(sb *strings.Builder, run *domain.RunResult) {
	sb.WriteString("MONTHLY DETAIL (BEST STRATEGY)\n")
	sb.WriteString(strings.Repeat("-", 78) + "\n")
	sb.WriteString(fmt.Sprintf("%6s %6s %18s %18s %18s\n",
		"Month", "Left", "Minimum", "Balance", "Total Paid"))

	for i, m := range run.Months {
		sb.WriteString(fmt.Sprintf("%6d %6d %18s %18s %18s\n",
			i+1, m.MonthsRemaining,
			FormatPennies(m.MinimumPaymentPennies),
			FormatPennies(m.BalancePennies),
			FormatPennies(m.TotalPaidPennies)))

		if cf.Verbosity >= 3 {
			for _, loan := range m.Loans {
				sb.WriteString(fmt.Sprintf("       %-24s rate %6.2f%% balance %16s\n",
					loan.Name,
					loan.InterestRate*100,
					FormatPennies(loan.BalancePennies)))
			}
		}

		// Stop tracing once the debt is gone; remaining months are no-ops.
		if m.BalancePennies == 0 {
			sb.WriteString(fmt.Sprintf("Portfolio retired after %d months.\n", i+1))
			break
		}
	}
	sb.WriteString("\n")
}
