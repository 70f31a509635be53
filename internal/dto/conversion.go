package dto

import (
	"encoding/json"

	"github.com/SscSPs/purchase_exchange_app/internal/core/domain"
	"github.com/SscSPs/purchase_exchange_app/internal/utils"
)

// ConversionResponse defines the structure for a purchase converted to another currency.
type ConversionResponse struct {
	ID               string      `json:"id"`
	Description      string      `json:"description"`
	TransactionDate  string      `json:"transactionDate"`
	OriginalAmount   json.Number `json:"originalAmount"`
	OriginalCurrency string      `json:"originalCurrency"`
	TargetCurrency   string      `json:"targetCurrency"`
	ExchangeRate     json.Number `json:"exchangeRate"`
	ConvertedAmount  json.Number `json:"convertedAmount"`
	RateDate         string      `json:"rateDate"`
}

// ToConversionResponse converts a domain.ConversionResult to ConversionResponse DTO.
// The exchange rate is rendered exactly as received; amounts always carry two decimals.
func ToConversionResponse(r *domain.ConversionResult) ConversionResponse {
	return ConversionResponse{
		ID:               r.PurchaseID,
		Description:      r.Description,
		TransactionDate:  domain.FormatDate(r.TransactionDate),
		OriginalAmount:   json.Number(utils.FormatWithPrecision(r.OriginalAmount, domain.AmountScale)),
		OriginalCurrency: r.OriginalCurrency,
		TargetCurrency:   r.TargetCurrency.String(),
		ExchangeRate:     json.Number(r.ExchangeRate.String()),
		ConvertedAmount:  json.Number(utils.FormatWithPrecision(r.ConvertedAmount, domain.AmountScale)),
		RateDate:         domain.FormatDate(r.RateDate),
	}
}
