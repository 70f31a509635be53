package dto

import (
	"encoding/json"

	"github.com/SscSPs/purchase_exchange_app/internal/core/domain"
	"github.com/SscSPs/purchase_exchange_app/internal/utils"
	"github.com/shopspring/decimal"
)

// CreatePurchaseRequest defines the structure for recording a new purchase.
// Amount accepts both a JSON string ("12.50") and a JSON number (12.50).
type CreatePurchaseRequest struct {
	Description     string           `json:"description" binding:"notblank,max=50"`
	Amount          *decimal.Decimal `json:"amount" binding:"required,positivecents"`
	TransactionDate string           `json:"transactionDate" binding:"required,datetime=2006-01-02,notfuture"`
}

// PurchaseResponse defines the structure for API responses containing a stored purchase.
type PurchaseResponse struct {
	ID              string      `json:"id"`
	Description     string      `json:"description"`
	Amount          json.Number `json:"amount"`
	TransactionDate string      `json:"transactionDate"`
}

// ToPurchaseResponse converts a domain.Purchase to PurchaseResponse DTO
func ToPurchaseResponse(p *domain.Purchase) PurchaseResponse {
	return PurchaseResponse{
		ID:              p.ID,
		Description:     p.Description,
		Amount:          json.Number(utils.FormatWithPrecision(p.Amount, domain.AmountScale)),
		TransactionDate: domain.FormatDate(p.TransactionDate),
	}
}
