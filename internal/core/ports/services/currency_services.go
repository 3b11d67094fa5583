package services

import (
	"context"

	"cloud.google.com/go/civil"
	"github.com/SscSPs/purchase_conversion_api/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CatalogReaderSvc defines read operations on the country/currency catalog
type CatalogReaderSvc interface {
	// ListCatalog returns every catalog entry once, baseline entries first.
	ListCatalog(ctx context.Context) ([]domain.CatalogEntry, error)

	// LookupCatalog finds an entry by country name or currency descriptor.
	LookupCatalog(ctx context.Context, key string) (domain.CatalogEntry, bool)
}

// ExchangeRateReaderSvc defines exchange rate resolution and conversion
type ExchangeRateReaderSvc interface {
	// ResolveRate returns the newest rate for descriptor within six months before purchaseDate.
	ResolveRate(ctx context.Context, descriptor string, purchaseDate civil.Date) (decimal.Decimal, error)

	// Convert converts a USD amount into the target currency at the purchase date rate.
	Convert(ctx context.Context, amountUSD decimal.Decimal, target string, purchaseDate civil.Date) (domain.Conversion, error)
}

// CurrencySvcFacade combines all currency-related service interfaces
type CurrencySvcFacade interface {
	CatalogReaderSvc
	ExchangeRateReaderSvc
}
