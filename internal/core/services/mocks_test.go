package services_test

import (
	"context"
	"sync"
	"time"

	"github.com/SscSPs/purchase_exchange_app/internal/core/domain"
	portsrepo "github.com/SscSPs/purchase_exchange_app/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// MockPurchaseRepository is a mock type for the PurchaseRepositoryFacade interface
type MockPurchaseRepository struct {
	mock.Mock
}

func (m *MockPurchaseRepository) SavePurchase(ctx context.Context, purchase domain.Purchase) error {
	args := m.Called(ctx, purchase)
	return args.Error(0)
}

func (m *MockPurchaseRepository) FindPurchaseByID(ctx context.Context, purchaseID string) (*domain.Purchase, error) {
	args := m.Called(ctx, purchaseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Purchase), args.Error(1)
}

// MockPurchaseService is a mock type for the PurchaseReaderSvc interface
type MockPurchaseService struct {
	mock.Mock
}

func (m *MockPurchaseService) GetPurchaseByID(ctx context.Context, purchaseID string) (*domain.Purchase, error) {
	args := m.Called(ctx, purchaseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Purchase), args.Error(1)
}

// MockResolver is a mock type for the ExchangeRateResolverSvc interface
type MockResolver struct {
	mock.Mock
}

func (m *MockResolver) Resolve(ctx context.Context, currency domain.CountryCurrency, asOf time.Time) (*domain.CurrencyQuotation, error) {
	args := m.Called(ctx, currency, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CurrencyQuotation), args.Error(1)
}

// fakeRateProvider answers every query with a fixed set of records, applying the
// window filter, newest-first ordering and limit the way the Treasury API does.
type fakeRateProvider struct {
	mu      sync.Mutex
	records []domain.QuotationRecord
	err     error
	queries []domain.QuotationQuery
}

func (f *fakeRateProvider) FindQuotations(_ context.Context, query domain.QuotationQuery) ([]domain.QuotationRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.queries = append(f.queries, query)
	if f.err != nil {
		return nil, f.err
	}

	var out []domain.QuotationRecord
	for _, rec := range f.records {
		if rec.CountryCurrency != query.CountryCurrency.String() {
			continue
		}
		if rec.RecordDate.Before(query.From) || rec.RecordDate.After(query.To) {
			continue
		}
		out = append(out, rec)
	}
	// newest first
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j].RecordDate.After(out[j-1].RecordDate); j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	if query.Limit > 0 && len(out) > query.Limit {
		out = out[:query.Limit]
	}
	return out, nil
}

func (f *fakeRateProvider) lastQuery() domain.QuotationQuery {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.queries[len(f.queries)-1]
}

func record(currency, rate, date string) domain.QuotationRecord {
	d, err := domain.ParseDate(date)
	if err != nil {
		panic(err)
	}
	return domain.QuotationRecord{CountryCurrency: currency, ExchangeRate: rate, RecordDate: d}
}

func mustDate(s string) time.Time {
	d, err := domain.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func portsrepoProvider(repo *MockPurchaseRepository, provider *fakeRateProvider) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{PurchaseRepo: repo, RateProvider: provider}
}
