package repositories

import (
	"context"

	"github.com/SscSPs/purchase_exchange_app/internal/core/domain"
)

// RateProvider is the upstream source of historical exchange rates.
type RateProvider interface {
	// FindQuotations returns quotations matching query, newest record date first,
	// at most query.Limit of them. An empty slice means nothing matched.
	FindQuotations(ctx context.Context, query domain.QuotationQuery) ([]domain.QuotationRecord, error)
}
