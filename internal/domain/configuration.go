package domain

// Configuration is the parsed run-configuration file. Required fields are
// pointers so the validator can tell "absent" from "zero".
type Configuration struct {
	LoanFile             string                      `yaml:"loan_file" json:"loan_file"`
	AnnualSavingsRate    *float64                    `yaml:"annual_savings_rate" json:"annual_savings_rate"`
	EmployerContribution *EmployerContributionConfig `yaml:"employer_contribution,omitempty" json:"employer_contribution,omitempty"`
	AutoPayRateDiscount  float64                     `yaml:"auto_pay_rate_discount,omitempty" json:"auto_pay_rate_discount,omitempty"`
	Verbosity            int                         `yaml:"verbosity,omitempty" json:"verbosity,omitempty"`
}

// EmployerContributionConfig mirrors the optional employer_contribution
// block. Amount and Month must be given together or not at all.
type EmployerContributionConfig struct {
	Amount *float64 `yaml:"amount" json:"amount"` // currency units per year
	Month  *int     `yaml:"month" json:"month"`   // 0 = January .. 11 = December
}
