package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"cloud.google.com/go/civil"
	"github.com/SscSPs/purchase_conversion_api/internal/apperrors"
	"github.com/SscSPs/purchase_conversion_api/internal/core/domain"
	portsrepo "github.com/SscSPs/purchase_conversion_api/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/purchase_conversion_api/internal/core/ports/services"
	"github.com/SscSPs/purchase_conversion_api/internal/dto"
	"github.com/google/uuid"
)

type apiKeyService struct {
	BaseService
	repo portsrepo.APIKeyRepository
	now  func() time.Time
}

// APIKeyServiceOption configures the API key service.
type APIKeyServiceOption func(*apiKeyService)

// WithAPIKeyClock overrides the clock used for expiry checks.
func WithAPIKeyClock(now func() time.Time) APIKeyServiceOption {
	return func(s *apiKeyService) {
		s.now = now
	}
}

// NewAPIKeyService creates a new API key service
func NewAPIKeyService(repo portsrepo.APIKeyRepository, options ...APIKeyServiceOption) portssvc.APIKeySvcFacade {
	svc := &apiKeyService{repo: repo, now: time.Now}
	for _, opt := range options {
		opt(svc)
	}
	return svc
}

var _ portssvc.APIKeySvcFacade = (*apiKeyService)(nil)

// generateKey returns "wk_" followed by 32 hex characters.
func generateKey() string {
	return domain.APIKeyPrefix + strings.ReplaceAll(uuid.NewString(), "-", "")
}

func (s *apiKeyService) today() civil.Date {
	return civil.DateOf(s.now())
}

func (s *apiKeyService) CreateAPIKey(ctx context.Context, req dto.CreateAPIKeyRequest) (*domain.APIKey, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", apperrors.ErrValidation)
	}
	expiration, err := civil.ParseDate(strings.TrimSpace(req.ExpirationDate))
	if err != nil {
		return nil, fmt.Errorf("%w: expiration date must be YYYY-MM-DD", apperrors.ErrValidation)
	}

	key := &domain.APIKey{
		Name:           name,
		Key:            generateKey(),
		ExpirationDate: expiration,
	}
	if err := s.repo.Create(ctx, key); err != nil {
		s.LogError(ctx, err, "Failed to create API key", slog.String("name", name))
		return nil, fmt.Errorf("failed to create API key: %w", err)
	}

	s.LogInfo(ctx, "API key created", slog.Int64("api_key_id", key.ID), slog.String("name", key.Name))
	return key, nil
}

func (s *apiKeyService) ListAPIKeys(ctx context.Context) ([]domain.APIKey, error) {
	keys, err := s.repo.List(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list API keys")
		return nil, fmt.Errorf("failed to list API keys: %w", err)
	}
	return keys, nil
}

func (s *apiKeyService) GetAPIKeyByID(ctx context.Context, id int64) (*domain.APIKey, error) {
	key, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to get API key", slog.Int64("api_key_id", id))
		}
		return nil, err
	}
	return key, nil
}

func (s *apiKeyService) DeleteAPIKey(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete API key", slog.Int64("api_key_id", id))
		}
		return err
	}
	s.LogInfo(ctx, "API key deleted", slog.Int64("api_key_id", id))
	return nil
}

func (s *apiKeyService) ValidateAPIKey(ctx context.Context, key string) (*domain.APIKey, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return nil, fmt.Errorf("%w: API key is required", apperrors.ErrUnauthorized)
	}

	found, err := s.repo.FindByKey(ctx, key)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: unknown API key", apperrors.ErrUnauthorized)
		}
		s.LogError(ctx, err, "Failed to look up API key")
		return nil, fmt.Errorf("failed to validate API key: %w", err)
	}

	if found.IsExpired(s.today()) {
		return nil, fmt.Errorf("%w: API key expired on %s", apperrors.ErrUnauthorized, found.ExpirationDate)
	}
	return found, nil
}
