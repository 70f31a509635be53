package treasury

import (
	"context"
	"log/slog"
	"time"

	"github.com/SscSPs/purchase_exchange_app/internal/core/domain"
	portsrepo "github.com/SscSPs/purchase_exchange_app/internal/core/ports/repositories"
	"github.com/SscSPs/purchase_exchange_app/internal/middleware"
)

// loggingProvider decorates a RateProvider with request-scoped logging.
type loggingProvider struct {
	next portsrepo.RateProvider
}

// NewLoggingProvider returns a RateProvider that logs every query.
func NewLoggingProvider(next portsrepo.RateProvider) portsrepo.RateProvider {
	return &loggingProvider{next: next}
}

func (p *loggingProvider) FindQuotations(ctx context.Context, query domain.QuotationQuery) (records []domain.QuotationRecord, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			slog.String("method", "find_quotations"),
			slog.String("country_currency", query.CountryCurrency.String()),
			slog.String("from", domain.FormatDate(query.From)),
			slog.String("to", domain.FormatDate(query.To)),
			slog.Int("records", len(records)),
			slog.Duration("took", time.Since(begin)),
		}
		logger := middleware.GetLoggerFromCtx(ctx)
		if err != nil {
			logger.Error("Rate provider query failed", append(attrs, slog.String("error", err.Error()))...)
			return
		}
		logger.Debug("Rate provider query", attrs...)
	}(time.Now())
	return p.next.FindQuotations(ctx, query)
}
