package services

import (
	portsrepo "github.com/SscSPs/purchase_exchange_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/purchase_exchange_app/internal/core/ports/services"
	"github.com/SscSPs/purchase_exchange_app/internal/platform/metrics"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
// m may be nil.
func NewServiceContainer(repos portsrepo.RepositoryProvider, m *metrics.Metrics) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Purchase = NewPurchaseService(repos.PurchaseRepo, WithPurchaseMetrics(m))
	container.Resolver = NewExchangeRateResolver(repos.RateProvider, WithResolverMetrics(m))
	container.Calculator = NewConversionCalculator()
	container.Conversion = NewConversionService(
		container.Purchase,
		container.Resolver,
		container.Calculator,
		WithConversionMetrics(m),
	)

	return container
}
