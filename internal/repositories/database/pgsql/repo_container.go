package pgsql

import (
	portsrepo "github.com/SscSPs/purchase_exchange_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider backs purchases with PostgreSQL. Rates always come from rates.
func NewRepositoryProvider(dbPool *pgxpool.Pool, rates portsrepo.RateProvider) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		PurchaseRepo: newPgxPurchaseRepository(dbPool),
		RateProvider: rates,
	}
}
