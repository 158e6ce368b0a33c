package entity

import "fmt"

// InvalidInputError reports a malformed or missing user-supplied field.
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NotFoundError is returned when neither the dated query nor the
// historical fallback produced any records.
type NotFoundError struct {
	FlightNumber string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no flight information found for flight number %s", e.FlightNumber)
}

// ProviderError wraps a failure of the external flight-data call.
type ProviderError struct {
	Op  string
	Err error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("flight provider %s: %v", e.Op, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}
