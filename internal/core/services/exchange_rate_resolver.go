package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/purchase_exchange_app/internal/core/domain"
	portsrepo "github.com/SscSPs/purchase_exchange_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/purchase_exchange_app/internal/core/ports/services"
	"github.com/SscSPs/purchase_exchange_app/internal/platform/metrics"
	"github.com/shopspring/decimal"
)

const resolutionOutcomeResolved = "resolved"

type exchangeRateResolver struct {
	BaseService
	provider portsrepo.RateProvider
	metrics  *metrics.Metrics
}

// ResolverOption is a functional option for configuring the exchange rate resolver
type ResolverOption func(*exchangeRateResolver)

// WithResolverMetrics counts resolutions by outcome on m.
func WithResolverMetrics(m *metrics.Metrics) ResolverOption {
	return func(r *exchangeRateResolver) {
		r.metrics = m
	}
}

// NewExchangeRateResolver creates a resolver backed by provider.
func NewExchangeRateResolver(provider portsrepo.RateProvider, options ...ResolverOption) portssvc.ExchangeRateResolverSvc {
	r := &exchangeRateResolver{provider: provider}
	for _, option := range options {
		option(r)
	}
	return r
}

var _ portssvc.ExchangeRateResolverSvc = (*exchangeRateResolver)(nil)

// Resolve asks the provider for the newest quotation dated in [asOf-6 months, asOf].
// Every failure is returned as a *domain.CurrencyNotFoundError carrying its cause.
func (r *exchangeRateResolver) Resolve(ctx context.Context, currency domain.CountryCurrency, asOf time.Time) (*domain.CurrencyQuotation, error) {
	window := domain.LookbackWindow(asOf)
	query := domain.QuotationQuery{
		CountryCurrency: currency,
		From:            window.Start,
		To:              window.End,
		Limit:           1,
	}

	records, err := r.provider.FindQuotations(ctx, query)
	if err != nil {
		return nil, r.fail(ctx, domain.NewCurrencyNotFoundError(currency, domain.CauseUpstreamFailure, err), window)
	}

	record, ok := firstInWindow(records, window)
	if !ok {
		return nil, r.fail(ctx, domain.NewCurrencyNotFoundError(currency, domain.CauseNotFoundInWindow, nil), window)
	}

	rate, err := decimal.NewFromString(strings.TrimSpace(record.ExchangeRate))
	if err != nil {
		return nil, r.fail(ctx, domain.NewCurrencyNotFoundError(currency, domain.CauseMalformedRate, err), window)
	}
	if !rate.IsPositive() {
		return nil, r.fail(ctx, domain.NewCurrencyNotFoundError(currency, domain.CauseMalformedRate,
			errors.New("non-positive rate "+record.ExchangeRate)), window)
	}

	r.metrics.IncResolution(resolutionOutcomeResolved)
	r.LogDebug(ctx, "Exchange rate resolved",
		slog.String("country_currency", currency.String()),
		slog.String("rate", rate.String()),
		slog.String("record_date", domain.FormatDate(record.RecordDate)))

	return &domain.CurrencyQuotation{
		CountryCurrency: currency,
		Rate:            rate,
		RecordDate:      domain.NormalizeDate(record.RecordDate),
	}, nil
}

func (r *exchangeRateResolver) fail(ctx context.Context, err *domain.CurrencyNotFoundError, window domain.DateWindow) error {
	r.metrics.IncResolution(string(err.Cause))

	attrs := []any{
		slog.String("country_currency", err.CountryCurrency.String()),
		slog.String("cause", string(err.Cause)),
		slog.String("window_start", domain.FormatDate(window.Start)),
		slog.String("window_end", domain.FormatDate(window.End)),
	}
	if err.Err != nil {
		attrs = append(attrs, slog.String("error", err.Err.Error()))
	}
	if err.Cause == domain.CauseUpstreamFailure {
		r.LogWarn(ctx, "Exchange rate resolution failed", attrs...)
	} else {
		r.LogInfo(ctx, "Exchange rate resolution failed", attrs...)
	}
	return err
}

// firstInWindow takes the first record the provider returned that lies inside window.
// Provider order is authoritative; records outside the window are skipped.
func firstInWindow(records []domain.QuotationRecord, window domain.DateWindow) (domain.QuotationRecord, bool) {
	for _, rec := range records {
		if window.Contains(rec.RecordDate) {
			return rec, true
		}
	}
	return domain.QuotationRecord{}, false
}
