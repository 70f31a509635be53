package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ConversionResult is a stored purchase expressed in a target currency.
// It is built per request and never persisted.
type ConversionResult struct {
	PurchaseID       string
	Description      string
	TransactionDate  time.Time
	OriginalAmount   decimal.Decimal
	OriginalCurrency string
	TargetCurrency   CountryCurrency
	ExchangeRate     decimal.Decimal
	ConvertedAmount  decimal.Decimal
	RateDate         time.Time
}
