package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Purchase is the persisted row of the purchases table.
type Purchase struct {
	PurchaseID      string          `json:"purchaseID"`      // Primary Key (UUID)
	Description     string          `json:"description"`     // at most 50 characters
	Amount          decimal.Decimal `json:"amount"`          // NUMERIC(19,2), USD
	TransactionDate time.Time       `json:"transactionDate"` // DATE
	CreatedAt       time.Time       `json:"createdAt"`
}
