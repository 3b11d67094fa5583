package mapping

import (
	"time"

	"cloud.google.com/go/civil"
	"github.com/SscSPs/purchase_conversion_api/internal/core/domain"
	"github.com/SscSPs/purchase_conversion_api/internal/models"
)

// ToModelPurchase converts a domain Purchase to a model Purchase
func ToModelPurchase(d domain.Purchase) models.Purchase {
	return models.Purchase{
		ID:             d.ID,
		Date:           d.Date.In(time.UTC),
		Description:    d.Description,
		PurchaseAmount: d.PurchaseAmount,
		Country:        d.Country,
		CurrencyCode:   d.CurrencyCode,
		CreatedAt:      d.CreatedAt,
	}
}

// ToDomainPurchase converts a model Purchase to a domain Purchase
func ToDomainPurchase(m models.Purchase) domain.Purchase {
	return domain.Purchase{
		ID:             m.ID,
		Date:           civil.DateOf(m.Date),
		Description:    m.Description,
		PurchaseAmount: m.PurchaseAmount,
		Country:        m.Country,
		CurrencyCode:   m.CurrencyCode,
		CreatedAt:      m.CreatedAt,
	}
}

// ToDomainPurchaseSlice converts a slice of model Purchases to a slice of domain Purchases
func ToDomainPurchaseSlice(ms []models.Purchase) []domain.Purchase {
	ds := make([]domain.Purchase, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainPurchase(m)
	}
	return ds
}
