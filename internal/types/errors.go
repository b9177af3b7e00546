// internal/types/errors.go
package types

import "fmt"

// ConfigurationError reports a value that can only come from bad setup,
// e.g. a difficulty outside the enumerated tiers.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error: %s: %s", e.Field, e.Reason)
}

// ContentExhaustedError is returned when no word or course satisfies a filter.
type ContentExhaustedError struct {
	Source string // "words" or "courses"
	Filter string
}

func (e *ContentExhaustedError) Error() string {
	if e.Filter == "" {
		return fmt.Sprintf("%s: no content available", e.Source)
	}
	return fmt.Sprintf("%s: no content available for %s", e.Source, e.Filter)
}
