package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Purchase mirrors a row of the purchases table.
type Purchase struct {
	ID             string          `db:"purchase_id"`
	Date           time.Time       `db:"purchase_date"`
	Description    string          `db:"description"`
	PurchaseAmount decimal.Decimal `db:"purchase_amount"` // NUMERIC(12,2)
	Country        string          `db:"country"`
	CurrencyCode   string          `db:"currency_code"`
	CreatedAt      time.Time       `db:"created_at"`
}
