package services

import (
	"github.com/SscSPs/purchase_exchange_app/internal/core/domain"
	portssvc "github.com/SscSPs/purchase_exchange_app/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

type conversionCalculator struct{}

// NewConversionCalculator returns the calculator used for all conversions.
func NewConversionCalculator() portssvc.ConversionCalculatorSvc {
	return conversionCalculator{}
}

// Convert multiplies at full precision and rounds once to cents, half away from zero.
func (conversionCalculator) Convert(amount, rate decimal.Decimal) decimal.Decimal {
	return amount.Mul(rate).Round(domain.AmountScale)
}
