package config

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/loansim/loansim/internal/domain"
	"github.com/shopspring/decimal"
)

// loanFileHeader is the exact header row a loan CSV must carry.
var loanFileHeader = []string{"name", "principal", "current_interest", "interest_rate"}

// LoanLoader reads loan portfolios from CSV files. Dollar amounts in the
// file are converted to pennies with ceiling rounding so that fractional
// pennies never understate the debt.
type LoanLoader struct{}

// NewLoanLoader creates a new loan file loader
func NewLoanLoader() *LoanLoader {
	return &LoanLoader{}
}

// LoadFromFile reads and validates every loan record in the given CSV file.
// The file is read exactly once; callers share the returned slice across
// simulation runs without re-reading.
func (ll *LoanLoader) LoadFromFile(filename string) ([]domain.LoanRecord, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open loan file %s: %w", filename, err)
	}
	defer f.Close()

	records, err := ll.Load(f)
	if err != nil {
		return nil, fmt.Errorf("failed to load loan file %s: %w", filename, err)
	}
	return records, nil
}

// Load reads loan records from any CSV stream.
func (ll *LoanLoader) Load(r io.Reader) ([]domain.LoanRecord, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = len(loanFileHeader)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}
	if err := ll.validateHeader(header); err != nil {
		return nil, err
	}

	var records []domain.LoanRecord
	row := 0
	for {
		fields, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV row: %w", err)
		}
		row++

		record, err := ll.parseRow(row, fields)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("loan file contains no loan records")
	}
	return records, nil
}

func (ll *LoanLoader) validateHeader(header []string) error {
	for i, want := range loanFileHeader {
		if strings.TrimSpace(header[i]) != want {
			return &InputValidationError{
				Row:     0,
				Field:   want,
				Message: fmt.Sprintf("header column %d must be %q, got %q", i+1, want, header[i]),
			}
		}
	}
	return nil
}

func (ll *LoanLoader) parseRow(row int, fields []string) (domain.LoanRecord, error) {
	name := strings.TrimSpace(fields[0])
	if name == "" {
		return domain.LoanRecord{}, &InputValidationError{Row: row, Field: "name", Message: "loan name is required"}
	}

	principal, err := parseDollarsToPennies(fields[1])
	if err != nil {
		return domain.LoanRecord{}, &InputValidationError{Row: row, Field: "principal", Message: err.Error()}
	}
	if principal < 0 {
		return domain.LoanRecord{}, &InputValidationError{Row: row, Field: "principal", Message: "principal cannot be negative"}
	}

	interest, err := parseDollarsToPennies(fields[2])
	if err != nil {
		return domain.LoanRecord{}, &InputValidationError{Row: row, Field: "current_interest", Message: err.Error()}
	}
	if interest < 0 {
		return domain.LoanRecord{}, &InputValidationError{Row: row, Field: "current_interest", Message: "accrued interest cannot be negative"}
	}

	rate, err := decimal.NewFromString(strings.TrimSpace(fields[3]))
	if err != nil {
		return domain.LoanRecord{}, &InputValidationError{Row: row, Field: "interest_rate", Message: fmt.Sprintf("invalid rate: %v", err)}
	}
	if rate.IsNegative() {
		return domain.LoanRecord{}, &InputValidationError{Row: row, Field: "interest_rate", Message: "interest rate cannot be negative"}
	}
	if rate.GreaterThanOrEqual(decimal.NewFromInt(1)) {
		return domain.LoanRecord{}, &InputValidationError{Row: row, Field: "interest_rate", Message: "interest rate must be below 1 (a fraction, not a percentage)"}
	}
	rateFloat, _ := rate.Float64()

	return domain.LoanRecord{
		Name:                   name,
		PrincipalPennies:       principal,
		AccruedInterestPennies: interest,
		InterestRate:           rateFloat,
	}, nil
}

// parseDollarsToPennies converts a decimal dollar string to whole pennies,
// rounding any fractional penny up.
func parseDollarsToPennies(s string) (int64, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid dollar amount: %v", err)
	}
	return d.Mul(decimal.NewFromInt(100)).Ceil().IntPart(), nil
}

// dollarsToPennies converts a dollar amount already parsed as float64,
// rounding any fractional penny up.
func dollarsToPennies(dollars float64) int64 {
	return decimal.NewFromFloat(dollars).Mul(decimal.NewFromInt(100)).Ceil().IntPart()
}
