package config

import (
	"fmt"
	"os"

	"github.com/loansim/loansim/internal/domain"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of input configuration files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads configuration from a YAML file
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var config domain.Configuration
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// ValidateConfiguration validates the loaded configuration
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if config.LoanFile == "" {
		return &ConfigurationError{Field: "loan_file", Message: "loan file path is required"}
	}
	if config.AnnualSavingsRate == nil {
		return &ConfigurationError{Field: "annual_savings_rate", Message: "annual savings rate is required"}
	}
	if *config.AnnualSavingsRate < 0 {
		return &ConfigurationError{Field: "annual_savings_rate", Message: "annual savings rate cannot be negative"}
	}
	if config.AutoPayRateDiscount < 0 {
		return &ConfigurationError{Field: "auto_pay_rate_discount", Message: "auto-pay rate discount cannot be negative"}
	}
	if config.Verbosity < 0 || config.Verbosity > 3 {
		return &ConfigurationError{Field: "verbosity", Message: "verbosity must be between 0 and 3"}
	}
	if config.EmployerContribution != nil {
		if err := ip.validateEmployerContribution(config.EmployerContribution); err != nil {
			return err
		}
	}
	return nil
}

// validateEmployerContribution validates the optional employer contribution block
func (ip *InputParser) validateEmployerContribution(ec *domain.EmployerContributionConfig) error {
	if ec.Amount == nil {
		return &ConfigurationError{Field: "employer_contribution.amount", Message: "amount is required when employer_contribution is present"}
	}
	if ec.Month == nil {
		return &ConfigurationError{Field: "employer_contribution.month", Message: "month is required when employer_contribution is present"}
	}
	if *ec.Amount < 0 {
		return &ConfigurationError{Field: "employer_contribution.amount", Message: "amount cannot be negative"}
	}
	if *ec.Month < 0 || *ec.Month > 11 {
		return &ConfigurationError{Field: "employer_contribution.month", Message: "month must be between 0 (January) and 11 (December)"}
	}
	return nil
}

// ToSimulationConfig converts a validated configuration into the engine's
// runtime form, with monetary amounts in pennies.
func (ip *InputParser) ToSimulationConfig(config *domain.Configuration) (domain.SimulationConfig, error) {
	if err := ip.ValidateConfiguration(config); err != nil {
		return domain.SimulationConfig{}, err
	}
	sim := domain.SimulationConfig{
		AnnualSavingsRate:   *config.AnnualSavingsRate,
		AutoPayRateDiscount: config.AutoPayRateDiscount,
		Verbosity:           config.Verbosity,
	}
	if config.EmployerContribution != nil {
		sim.Employer = &domain.EmployerContribution{
			AmountPennies: dollarsToPennies(*config.EmployerContribution.Amount),
			Month:         *config.EmployerContribution.Month,
		}
	}
	return sim, nil
}
