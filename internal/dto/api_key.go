package dto

import (
	"time"

	"github.com/SscSPs/purchase_conversion_api/internal/core/domain"
)

// CreateAPIKeyRequest represents the request body for creating a new API key
type CreateAPIKeyRequest struct {
	// Name is a description for the key (max 100 characters)
	Name string `json:"name" binding:"notblank,max=100" example:"Production API Key"`
	// ExpirationDate is the last day the key is accepted
	ExpirationDate string `json:"expirationDate" binding:"required,datetime=2006-01-02" example:"2026-12-31"`
}

// APIKeyResponse represents an API key in the API responses
type APIKeyResponse struct {
	ID             int64     `json:"id" example:"1"`
	Name           string    `json:"name" example:"Production API Key"`
	APIKey         string    `json:"apiKey" example:"wk_3c1f0f65a19444879772ff82833f5347"`
	ExpirationDate string    `json:"expirationDate" example:"2026-12-31"`
	CreatedAt      time.Time `json:"createdAt"`
}

// ToAPIKeyResponse converts a domain.APIKey to APIKeyResponse DTO
func ToAPIKeyResponse(k *domain.APIKey) APIKeyResponse {
	return APIKeyResponse{
		ID:             k.ID,
		Name:           k.Name,
		APIKey:         k.Key,
		ExpirationDate: k.ExpirationDate.String(),
		CreatedAt:      k.CreatedAt,
	}
}

// ToAPIKeyResponseList converts a slice of domain.APIKey to APIKeyResponse DTOs
func ToAPIKeyResponseList(keys []domain.APIKey) []APIKeyResponse {
	res := make([]APIKeyResponse, len(keys))
	for i := range keys {
		res[i] = ToAPIKeyResponse(&keys[i])
	}
	return res
}
