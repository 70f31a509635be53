package domain

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/SscSPs/purchase_exchange_app/internal/apperrors"
)

// OriginalCurrency is the currency every purchase is recorded in.
const OriginalCurrency = "USD"

// MaxCountryCurrencyLength bounds the length of a country-currency descriptor.
const MaxCountryCurrencyLength = 100

// CountryCurrency is a compound "country-currency" descriptor such as "Canada-Dollar",
// as used by the Treasury rates of exchange feed. Build one with NewCountryCurrency.
type CountryCurrency string

// NewCountryCurrency validates raw and returns it as a CountryCurrency.
// The value goes verbatim into the upstream filter expression, so the filter
// delimiters ',' and ':' are rejected.
func NewCountryCurrency(raw string) (CountryCurrency, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return "", fmt.Errorf("%w: country currency is required", apperrors.ErrValidation)
	}
	if utf8.RuneCountInString(value) > MaxCountryCurrencyLength {
		return "", fmt.Errorf("%w: country currency must be at most %d characters", apperrors.ErrValidation, MaxCountryCurrencyLength)
	}
	for _, r := range value {
		if r == ',' || r == ':' || unicode.IsControl(r) {
			return "", fmt.Errorf("%w: country currency contains invalid character %q", apperrors.ErrValidation, r)
		}
	}
	return CountryCurrency(value), nil
}

func (c CountryCurrency) String() string {
	return string(c)
}
