package mapping

import (
	"github.com/SscSPs/purchase_exchange_app/internal/core/domain"
	"github.com/SscSPs/purchase_exchange_app/internal/models"
)

// ToModelPurchase converts a domain Purchase to a model Purchase
func ToModelPurchase(d domain.Purchase) models.Purchase {
	return models.Purchase{
		PurchaseID:      d.ID,
		Description:     d.Description,
		Amount:          d.Amount,
		TransactionDate: domain.NormalizeDate(d.TransactionDate),
		CreatedAt:       d.CreatedAt,
	}
}

// ToDomainPurchase converts a model Purchase to a domain Purchase.
// DATE columns may come back in the session time zone; the calendar date is kept.
func ToDomainPurchase(m models.Purchase) domain.Purchase {
	return domain.Purchase{
		ID:              m.PurchaseID,
		Description:     m.Description,
		Amount:          m.Amount,
		TransactionDate: domain.NormalizeDate(m.TransactionDate),
		CreatedAt:       m.CreatedAt.UTC(),
	}
}
