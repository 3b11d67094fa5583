package dto

import (
	"time"

	"github.com/SscSPs/purchase_conversion_api/internal/core/domain"
	"github.com/SscSPs/purchase_conversion_api/internal/utils"
	"github.com/shopspring/decimal"
)

// CreatePurchaseRequest defines the data needed to record a purchase. The amount is in USD.
type CreatePurchaseRequest struct {
	Date           string           `json:"date" binding:"required,datetime=2006-01-02" example:"2025-01-20"`
	Description    string           `json:"description" binding:"notblank,max=50" example:"Laptop Computer"`
	PurchaseAmount *decimal.Decimal `json:"purchaseAmount" binding:"required" swaggertype:"string" example:"1299.99"`
	Country        string           `json:"country" binding:"notblank,max=100" example:"United States"`
}

// PurchaseResponse defines the data returned for a purchase.
type PurchaseResponse struct {
	ID             string    `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Date           string    `json:"date" example:"2025-01-20"`
	Description    string    `json:"description" example:"Laptop Computer"`
	PurchaseAmount string    `json:"purchaseAmount" example:"1299.99"`
	Country        string    `json:"country" example:"United States"`
	CurrencyCode   string    `json:"currencyCode" example:"United States-Dollar"`
	CreatedAt      time.Time `json:"createdAt"`
}

// PurchaseWithConversionResponse is a purchase converted into a target currency.
// ConvertedAmount and ExchangeRate are null when no exchange rate was found.
type PurchaseWithConversionResponse struct {
	PurchaseResponse
	TargetCurrency  string           `json:"targetCurrency" example:"Canada-Dollar"`
	ConvertedAmount *string          `json:"convertedAmount" example:"1754.99"`
	ExchangeRate    *decimal.Decimal `json:"exchangeRate" swaggertype:"string" example:"1.35"`
}

// ToPurchaseResponse converts a domain.Purchase to PurchaseResponse DTO
func ToPurchaseResponse(p *domain.Purchase) PurchaseResponse {
	return PurchaseResponse{
		ID:             p.ID,
		Date:           p.Date.String(),
		Description:    p.Description,
		PurchaseAmount: utils.FormatMoney(p.PurchaseAmount),
		Country:        p.Country,
		CurrencyCode:   p.CurrencyCode,
		CreatedAt:      p.CreatedAt,
	}
}

// ToListPurchaseResponse converts a slice of domain.Purchase to a slice of PurchaseResponse DTOs
func ToListPurchaseResponse(purchases []domain.Purchase) []PurchaseResponse {
	res := make([]PurchaseResponse, len(purchases))
	for i := range purchases {
		res[i] = ToPurchaseResponse(&purchases[i])
	}
	return res
}

// ToPurchaseWithConversionResponse converts a domain.PurchaseWithConversion to its DTO
func ToPurchaseWithConversionResponse(p *domain.PurchaseWithConversion) PurchaseWithConversionResponse {
	res := PurchaseWithConversionResponse{
		PurchaseResponse: ToPurchaseResponse(&p.Purchase),
		TargetCurrency:   p.TargetCurrency,
		ExchangeRate:     p.ExchangeRate,
	}
	if p.ConvertedAmount != nil {
		converted := utils.FormatMoney(*p.ConvertedAmount)
		res.ConvertedAmount = &converted
	}
	return res
}

// ToListPurchaseWithConversionResponse converts a slice of converted purchases to DTOs
func ToListPurchaseWithConversionResponse(purchases []domain.PurchaseWithConversion) []PurchaseWithConversionResponse {
	res := make([]PurchaseWithConversionResponse, len(purchases))
	for i := range purchases {
		res[i] = ToPurchaseWithConversionResponse(&purchases[i])
	}
	return res
}
