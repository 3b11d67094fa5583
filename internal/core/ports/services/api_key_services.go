package services

import (
	"context"

	"github.com/SscSPs/purchase_conversion_api/internal/core/domain"
	"github.com/SscSPs/purchase_conversion_api/internal/dto"
)

// APIKeySvcFacade defines operations for API key management
type APIKeySvcFacade interface {
	// CreateAPIKey generates a new "wk_" key with the requested name and expiration date
	CreateAPIKey(ctx context.Context, req dto.CreateAPIKeyRequest) (*domain.APIKey, error)

	ListAPIKeys(ctx context.Context) ([]domain.APIKey, error)
	GetAPIKeyByID(ctx context.Context, id int64) (*domain.APIKey, error)
	DeleteAPIKey(ctx context.Context, id int64) error

	// ValidateAPIKey returns the key when it exists and has not expired,
	// or an error wrapping apperrors.ErrUnauthorized
	ValidateAPIKey(ctx context.Context, key string) (*domain.APIKey, error)
}
