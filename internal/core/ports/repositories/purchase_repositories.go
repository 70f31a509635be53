package repositories

import (
	"context"

	"github.com/SscSPs/purchase_exchange_app/internal/core/domain"
)

// PurchaseReader defines read operations for purchase data
type PurchaseReader interface {
	// FindPurchaseByID retrieves a purchase by its identifier.
	// It returns an error matching apperrors.ErrNotFound when no purchase exists.
	FindPurchaseByID(ctx context.Context, purchaseID string) (*domain.Purchase, error)
}

// PurchaseWriter defines write operations for purchase data
type PurchaseWriter interface {
	// SavePurchase persists a new purchase.
	SavePurchase(ctx context.Context, purchase domain.Purchase) error
}

// PurchaseRepositoryFacade combines all purchase-related repository interfaces
type PurchaseRepositoryFacade interface {
	PurchaseReader
	PurchaseWriter
}
