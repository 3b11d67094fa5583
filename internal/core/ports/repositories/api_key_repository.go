package repositories

import (
	"context"

	"github.com/SscSPs/purchase_conversion_api/internal/core/domain"
)

// APIKeyRepository defines the interface for API key data access operations
type APIKeyRepository interface {
	// Create persists a new API key and fills in its generated ID and CreatedAt.
	Create(ctx context.Context, key *domain.APIKey) error

	// FindByID retrieves an API key by its ID
	FindByID(ctx context.Context, id int64) (*domain.APIKey, error)

	// FindByKey finds an API key by its value (used for validation)
	FindByKey(ctx context.Context, key string) (*domain.APIKey, error)

	// List returns all API keys
	List(ctx context.Context) ([]domain.APIKey, error)

	// Delete removes an API key by ID
	Delete(ctx context.Context, id int64) error
}
