package repositories

import (
	"context"

	"github.com/SscSPs/purchase_conversion_api/internal/core/domain"
)

// PurchaseRepository defines persistence operations for purchases.
type PurchaseRepository interface {
	// Create persists a new purchase. ID and CreatedAt are expected to be set.
	Create(ctx context.Context, purchase domain.Purchase) error

	// FindByID returns apperrors.ErrNotFound when no purchase has the given id.
	FindByID(ctx context.Context, id string) (*domain.Purchase, error)

	// ListByDateDesc returns every purchase, newest purchase date first.
	ListByDateDesc(ctx context.Context) ([]domain.Purchase, error)

	// Delete returns apperrors.ErrNotFound when nothing was deleted.
	Delete(ctx context.Context, id string) error
}
