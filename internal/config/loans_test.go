package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validLoanCSV = `name,principal,current_interest,interest_rate
Stafford 2019,12500.00,340.25,0.0453
Private 2021,8000,0,0.0699
`

func TestLoadValidLoanFile(t *testing.T) {
	records, err := NewLoanLoader().Load(strings.NewReader(validLoanCSV))
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "Stafford 2019", records[0].Name)
	assert.Equal(t, int64(1250000), records[0].PrincipalPennies)
	assert.Equal(t, int64(34025), records[0].AccruedInterestPennies)
	assert.InDelta(t, 0.0453, records[0].InterestRate, 1e-12)
	assert.Equal(t, int64(1284025), records[0].BalancePennies())

	assert.Equal(t, "Private 2021", records[1].Name)
	assert.Equal(t, int64(800000), records[1].PrincipalPennies)
	assert.Equal(t, int64(0), records[1].AccruedInterestPennies)
}

func TestLoadFromFileReadsDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "loans.csv")
	require.NoError(t, os.WriteFile(path, []byte(validLoanCSV), 0o644))

	records, err := NewLoanLoader().LoadFromFile(path)
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestLoadFractionalPenniesRoundUp(t *testing.T) {
	csv := "name,principal,current_interest,interest_rate\nodd,10.005,0.001,0.05\n"
	records, err := NewLoanLoader().Load(strings.NewReader(csv))
	require.NoError(t, err)

	// Sub-penny amounts round toward the lender.
	assert.Equal(t, int64(1001), records[0].PrincipalPennies)
	assert.Equal(t, int64(1), records[0].AccruedInterestPennies)
}

func TestLoadRejectsBadHeader(t *testing.T) {
	csv := "name,balance,current_interest,interest_rate\nx,1,0,0.05\n"
	_, err := NewLoanLoader().Load(strings.NewReader(csv))
	require.Error(t, err)

	var validationErr *InputValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, 0, validationErr.Row)
	assert.Equal(t, "principal", validationErr.Field)
}

func TestLoadRowValidation(t *testing.T) {
	tests := []struct {
		name      string
		row       string
		wantField string
	}{
		{"empty name", " ,100,0,0.05", "name"},
		{"bad principal", "x,abc,0,0.05", "principal"},
		{"negative principal", "x,-5,0,0.05", "principal"},
		{"bad interest", "x,100,nope,0.05", "current_interest"},
		{"negative interest", "x,100,-1,0.05", "current_interest"},
		{"bad rate", "x,100,0,five", "interest_rate"},
		{"negative rate", "x,100,0,-0.05", "interest_rate"},
		{"percentage rate", "x,100,0,4.53", "interest_rate"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			csv := "name,principal,current_interest,interest_rate\n" + tt.row + "\n"
			_, err := NewLoanLoader().Load(strings.NewReader(csv))
			require.Error(t, err)

			var validationErr *InputValidationError
			require.True(t, errors.As(err, &validationErr))
			assert.Equal(t, 1, validationErr.Row)
			assert.Equal(t, tt.wantField, validationErr.Field)
		})
	}
}

func TestLoadRejectsEmptyFile(t *testing.T) {
	csv := "name,principal,current_interest,interest_rate\n"
	_, err := NewLoanLoader().Load(strings.NewReader(csv))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no loan records")
}

func TestLoadRejectsWrongColumnCount(t *testing.T) {
	csv := "name,principal,current_interest,interest_rate\nx,100,0\n"
	_, err := NewLoanLoader().Load(strings.NewReader(csv))
	require.Error(t, err)
}

func TestLoadZeroRateLoan(t *testing.T) {
	csv := "name,principal,current_interest,interest_rate\nfamily,500.00,0,0\n"
	records, err := NewLoanLoader().Load(strings.NewReader(csv))
	require.NoError(t, err)
	assert.Equal(t, 0.0, records[0].InterestRate)
}
