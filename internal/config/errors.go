package config

import "fmt"

// ConfigurationError reports an invalid or missing field in the YAML
// configuration file.
type ConfigurationError struct {
	Field   string
	Message string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration field %s: %s", e.Field, e.Message)
}

// InputValidationError reports a bad value in the loan CSV file. Row is
// 1-based and counts data rows, not the header.
type InputValidationError struct {
	Row     int
	Field   string
	Message string
}

func (e *InputValidationError) Error() string {
	return fmt.Sprintf("loan file row %d, field %s: %s", e.Row, e.Field, e.Message)
}
