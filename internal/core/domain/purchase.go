package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MaxDescriptionLength is the longest description a purchase may carry.
const MaxDescriptionLength = 50

// AmountScale is the number of fractional digits a purchase amount is stored with.
const AmountScale = 2

// Purchase is a purchase transaction recorded in USD. It is never modified after it is stored.
type Purchase struct {
	ID              string          `json:"id"`
	Description     string          `json:"description"`
	Amount          decimal.Decimal `json:"amount"`
	TransactionDate time.Time       `json:"transactionDate"` // calendar date, UTC midnight
	CreatedAt       time.Time       `json:"createdAt"`
}
