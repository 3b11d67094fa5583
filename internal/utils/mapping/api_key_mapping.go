package mapping

import (
	"time"

	"cloud.google.com/go/civil"
	"github.com/SscSPs/purchase_conversion_api/internal/core/domain"
	"github.com/SscSPs/purchase_conversion_api/internal/models"
)

// ToModelAPIKey converts a domain APIKey to a model APIKey
func ToModelAPIKey(d domain.APIKey) models.APIKey {
	return models.APIKey{
		ID:             d.ID,
		Name:           d.Name,
		APIKey:         d.Key,
		ExpirationDate: d.ExpirationDate.In(time.UTC),
		CreatedAt:      d.CreatedAt,
	}
}

// ToDomainAPIKey converts a model APIKey to a domain APIKey
func ToDomainAPIKey(m models.APIKey) domain.APIKey {
	return domain.APIKey{
		ID:             m.ID,
		Name:           m.Name,
		Key:            m.APIKey,
		ExpirationDate: civil.DateOf(m.ExpirationDate),
		CreatedAt:      m.CreatedAt,
	}
}

// ToDomainAPIKeySlice converts a slice of model APIKeys to a slice of domain APIKeys
func ToDomainAPIKeySlice(ms []models.APIKey) []domain.APIKey {
	ds := make([]domain.APIKey, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAPIKey(m)
	}
	return ds
}
