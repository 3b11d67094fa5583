package gateways

import (
	"context"

	"cloud.google.com/go/civil"
	"github.com/SscSPs/purchase_conversion_api/internal/adapters/treasury"
)

// TreasuryGateway is the upstream reference-rate feed used by the currency services.
type TreasuryGateway interface {
	// ListCurrencies fetches one page (1-based) of country/currency observations, newest first.
	ListCurrencies(ctx context.Context, pageNumber int) (*treasury.CurrencyPage, error)

	// LatestRate fetches the newest rate for descriptor published within [from, to].
	LatestRate(ctx context.Context, descriptor string, from, to civil.Date) (*treasury.RateResponse, error)
}

var _ TreasuryGateway = (*treasury.Client)(nil)
