package services

import (
	"context"

	"github.com/SscSPs/purchase_conversion_api/internal/core/domain"
	"github.com/SscSPs/purchase_conversion_api/internal/dto"
)

// PurchaseReaderSvc defines read operations for purchases
type PurchaseReaderSvc interface {
	GetPurchaseByID(ctx context.Context, id string) (*domain.Purchase, error)
	ListPurchases(ctx context.Context) ([]domain.Purchase, error)

	// ListPurchasesWithConversion converts every purchase into targetCurrency. A purchase
	// whose rate cannot be resolved is returned with nil conversion fields.
	ListPurchasesWithConversion(ctx context.Context, targetCurrency string) ([]domain.PurchaseWithConversion, error)
}

// PurchaseWriterSvc defines write operations for purchases
type PurchaseWriterSvc interface {
	CreatePurchase(ctx context.Context, req dto.CreatePurchaseRequest) (*domain.Purchase, error)
	DeletePurchase(ctx context.Context, id string) error
}

// PurchaseSvcFacade combines all purchase-related service interfaces
type PurchaseSvcFacade interface {
	PurchaseReaderSvc
	PurchaseWriterSvc
}
