package domain

import (
	"time"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
)

// MaxDescriptionLength bounds Purchase.Description.
const MaxDescriptionLength = 50

// Purchase is a recorded transaction in USD.
type Purchase struct {
	ID             string          `json:"id"`
	Date           civil.Date      `json:"date"`
	Description    string          `json:"description"`
	PurchaseAmount decimal.Decimal `json:"purchaseAmount"`
	Country        string          `json:"country"`
	CurrencyCode   string          `json:"currencyCode"`
	CreatedAt      time.Time       `json:"createdAt"`
}

// PurchaseWithConversion is a purchase alongside its value in a target currency.
// ConvertedAmount and ExchangeRate are nil when no rate could be resolved.
type PurchaseWithConversion struct {
	Purchase
	TargetCurrency  string
	ConvertedAmount *decimal.Decimal
	ExchangeRate    *decimal.Decimal
}
