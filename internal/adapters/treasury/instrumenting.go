package treasury

import (
	"context"
	"time"

	"github.com/SscSPs/purchase_exchange_app/internal/core/domain"
	portsrepo "github.com/SscSPs/purchase_exchange_app/internal/core/ports/repositories"
	"github.com/SscSPs/purchase_exchange_app/internal/platform/metrics"
)

const (
	outcomeSuccess = "success"
	outcomeEmpty   = "empty"
	outcomeError   = "error"
)

// instrumentingProvider decorates a RateProvider with Prometheus metrics.
type instrumentingProvider struct {
	next    portsrepo.RateProvider
	metrics *metrics.Metrics
}

// NewInstrumentingProvider returns a RateProvider that records call counts and latency on m.
func NewInstrumentingProvider(m *metrics.Metrics, next portsrepo.RateProvider) portsrepo.RateProvider {
	return &instrumentingProvider{next: next, metrics: m}
}

func (p *instrumentingProvider) FindQuotations(ctx context.Context, query domain.QuotationQuery) (records []domain.QuotationRecord, err error) {
	defer func(begin time.Time) {
		outcome := outcomeSuccess
		switch {
		case err != nil:
			outcome = outcomeError
		case len(records) == 0:
			outcome = outcomeEmpty
		}
		p.metrics.ObserveUpstreamRequest(outcome, time.Since(begin))
	}(time.Now())
	return p.next.FindQuotations(ctx, query)
}
