package memory

import (
	"context"
	"net/http"
	"sync"

	"github.com/SscSPs/purchase_exchange_app/internal/apperrors"
	"github.com/SscSPs/purchase_exchange_app/internal/core/domain"
	portsrepo "github.com/SscSPs/purchase_exchange_app/internal/core/ports/repositories"
)

// PurchaseRepository keeps purchases in process memory. Contents are lost on restart.
type PurchaseRepository struct {
	mu        sync.RWMutex
	purchases map[string]domain.Purchase
}

// NewPurchaseRepository returns an empty in-memory repository.
func NewPurchaseRepository() *PurchaseRepository {
	return &PurchaseRepository{purchases: make(map[string]domain.Purchase)}
}

var _ portsrepo.PurchaseRepositoryFacade = (*PurchaseRepository)(nil)

// SavePurchase stores purchase. Stored purchases are immutable, so reusing an ID is a conflict.
func (r *PurchaseRepository) SavePurchase(_ context.Context, purchase domain.Purchase) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.purchases[purchase.ID]; exists {
		return apperrors.NewAppError(http.StatusConflict, "purchase already exists", nil)
	}
	r.purchases[purchase.ID] = purchase
	return nil
}

func (r *PurchaseRepository) FindPurchaseByID(_ context.Context, purchaseID string) (*domain.Purchase, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	purchase, ok := r.purchases[purchaseID]
	if !ok {
		return nil, apperrors.NewNotFoundError("purchase not found")
	}
	return &purchase, nil
}

// NewRepositoryProvider backs purchases with memory. Rates always come from rates.
func NewRepositoryProvider(rates portsrepo.RateProvider) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		PurchaseRepo: NewPurchaseRepository(),
		RateProvider: rates,
	}
}
