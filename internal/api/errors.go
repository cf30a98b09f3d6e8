package api

import "fmt"

// A ProviderError wraps a failed provider call together with the
// operation that failed. Provider SDK errors never escape undressed;
// callers match on this type (or on sentinel errors wrapped inside it)
// to decide whether to continue.
type ProviderError struct {
	// Op names the failed operation, e.g. "create record set".
	Op string

	// Err is the underlying error from the provider SDK.
	Err error
}

// Error implements the error interface.
func (e ProviderError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error.
func (e ProviderError) Unwrap() error { return e.Err }

func providerError(op string, err error) error {
	return ProviderError{Op: op, Err: err}
}
