package domain

import (
	"fmt"

	"github.com/SscSPs/purchase_exchange_app/internal/apperrors"
)

// ResolutionCause tells apart the reasons a currency could not be resolved.
// Callers see a single CurrencyNotFound kind; the cause is for logs and metrics.
type ResolutionCause string

const (
	CauseNotFoundInWindow ResolutionCause = "not_found_in_window"
	CauseMalformedRate    ResolutionCause = "malformed_rate"
	CauseUpstreamFailure  ResolutionCause = "upstream_failure"
)

// CurrencyNotFoundError reports that no usable exchange rate exists for a currency.
// It matches apperrors.ErrCurrencyNotFound with errors.Is.
type CurrencyNotFoundError struct {
	CountryCurrency CountryCurrency
	Cause           ResolutionCause
	Err             error
}

// NewCurrencyNotFoundError builds a CurrencyNotFoundError; err may be nil.
func NewCurrencyNotFoundError(currency CountryCurrency, cause ResolutionCause, err error) *CurrencyNotFoundError {
	return &CurrencyNotFoundError{CountryCurrency: currency, Cause: cause, Err: err}
}

// Error returns the caller-facing message. Malformed rates and upstream failures
// share one message.
func (e *CurrencyNotFoundError) Error() string {
	if e.Cause == CauseNotFoundInWindow {
		return fmt.Sprintf("no rate for %s in window", e.CountryCurrency)
	}
	return fmt.Sprintf("unable to fetch rate for %s", e.CountryCurrency)
}

func (e *CurrencyNotFoundError) Unwrap() []error {
	if e.Err == nil {
		return []error{apperrors.ErrCurrencyNotFound}
	}
	return []error{apperrors.ErrCurrencyNotFound, e.Err}
}
