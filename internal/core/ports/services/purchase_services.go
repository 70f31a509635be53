package services

import (
	"context"
	"time"

	"github.com/SscSPs/purchase_exchange_app/internal/core/domain"
	"github.com/SscSPs/purchase_exchange_app/internal/dto"
	"github.com/shopspring/decimal"
)

// PurchaseReaderSvc defines read operations for purchase data
type PurchaseReaderSvc interface {
	// GetPurchaseByID retrieves a stored purchase.
	GetPurchaseByID(ctx context.Context, purchaseID string) (*domain.Purchase, error)
}

// PurchaseWriterSvc defines write operations for purchase data
type PurchaseWriterSvc interface {
	// CreatePurchase validates and persists a new purchase, assigning its identifier.
	CreatePurchase(ctx context.Context, req dto.CreatePurchaseRequest) (*domain.Purchase, error)
}

// PurchaseSvcFacade combines all purchase-related service interfaces
type PurchaseSvcFacade interface {
	PurchaseReaderSvc
	PurchaseWriterSvc
}

// ExchangeRateResolverSvc finds the exchange rate applicable to a date.
type ExchangeRateResolverSvc interface {
	// Resolve returns the most recent quotation for currency dated within
	// six calendar months before asOf (inclusive on both ends).
	Resolve(ctx context.Context, currency domain.CountryCurrency, asOf time.Time) (*domain.CurrencyQuotation, error)
}

// ConversionCalculatorSvc applies an exchange rate to an amount.
type ConversionCalculatorSvc interface {
	Convert(amount, rate decimal.Decimal) decimal.Decimal
}

// ConversionSvc converts stored purchases into other currencies.
type ConversionSvc interface {
	// GetConvertedPurchase loads a purchase and converts it into countryCurrency.
	GetConvertedPurchase(ctx context.Context, purchaseID string, countryCurrency string) (*domain.ConversionResult, error)

	// ConvertPurchase converts an already loaded purchase.
	ConvertPurchase(ctx context.Context, purchase domain.Purchase, currency domain.CountryCurrency) (*domain.ConversionResult, error)
}
