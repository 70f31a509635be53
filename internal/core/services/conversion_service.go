package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/SscSPs/purchase_exchange_app/internal/apperrors"
	"github.com/SscSPs/purchase_exchange_app/internal/core/domain"
	portssvc "github.com/SscSPs/purchase_exchange_app/internal/core/ports/services"
	"github.com/SscSPs/purchase_exchange_app/internal/platform/metrics"
)

const (
	conversionOutcomeConverted        = "converted"
	conversionOutcomeInvalidCurrency  = "invalid_currency"
	conversionOutcomePurchaseNotFound = "purchase_not_found"
	conversionOutcomeCurrencyNotFound = "currency_not_found"
	conversionOutcomeError            = "error"
)

type conversionService struct {
	BaseService
	purchases  portssvc.PurchaseReaderSvc
	resolver   portssvc.ExchangeRateResolverSvc
	calculator portssvc.ConversionCalculatorSvc
	metrics    *metrics.Metrics
}

// ConversionOption is a functional option for configuring the conversion service
type ConversionOption func(*conversionService)

// WithConversionMetrics counts conversions by outcome on m.
func WithConversionMetrics(m *metrics.Metrics) ConversionOption {
	return func(s *conversionService) {
		s.metrics = m
	}
}

// NewConversionService wires the purchase lookup, rate resolution and calculation steps.
func NewConversionService(
	purchases portssvc.PurchaseReaderSvc,
	resolver portssvc.ExchangeRateResolverSvc,
	calculator portssvc.ConversionCalculatorSvc,
	options ...ConversionOption,
) portssvc.ConversionSvc {
	svc := &conversionService{
		purchases:  purchases,
		resolver:   resolver,
		calculator: calculator,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.ConversionSvc = (*conversionService)(nil)

func (s *conversionService) GetConvertedPurchase(ctx context.Context, purchaseID string, countryCurrency string) (*domain.ConversionResult, error) {
	purchase, err := s.purchases.GetPurchaseByID(ctx, purchaseID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.metrics.IncConversion(conversionOutcomePurchaseNotFound)
		} else {
			s.metrics.IncConversion(conversionOutcomeError)
		}
		return nil, err
	}

	currency, err := domain.NewCountryCurrency(countryCurrency)
	if err != nil {
		s.metrics.IncConversion(conversionOutcomeInvalidCurrency)
		return nil, err
	}

	return s.ConvertPurchase(ctx, *purchase, currency)
}

// ConvertPurchase resolves the rate for the purchase's transaction date and applies it.
// Resolver errors are returned unchanged.
func (s *conversionService) ConvertPurchase(ctx context.Context, purchase domain.Purchase, currency domain.CountryCurrency) (*domain.ConversionResult, error) {
	quotation, err := s.resolver.Resolve(ctx, currency, purchase.TransactionDate)
	if err != nil {
		if errors.Is(err, apperrors.ErrCurrencyNotFound) {
			s.metrics.IncConversion(conversionOutcomeCurrencyNotFound)
		} else {
			s.metrics.IncConversion(conversionOutcomeError)
		}
		return nil, err
	}

	converted := s.calculator.Convert(purchase.Amount, quotation.Rate)
	s.metrics.IncConversion(conversionOutcomeConverted)
	s.LogInfo(ctx, "Purchase converted",
		slog.String("purchase_id", purchase.ID),
		slog.String("country_currency", currency.String()),
		slog.String("rate", quotation.Rate.String()),
		slog.String("converted_amount", converted.StringFixed(domain.AmountScale)))

	return &domain.ConversionResult{
		PurchaseID:       purchase.ID,
		Description:      purchase.Description,
		TransactionDate:  purchase.TransactionDate,
		OriginalAmount:   purchase.Amount,
		OriginalCurrency: domain.OriginalCurrency,
		TargetCurrency:   currency,
		ExchangeRate:     quotation.Rate,
		ConvertedAmount:  converted,
		RateDate:         quotation.RecordDate,
	}, nil
}
