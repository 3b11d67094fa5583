package domain

import (
	"time"

	"cloud.google.com/go/civil"
)

// APIKeyPrefix precedes every generated key value.
const APIKeyPrefix = "wk_"

// APIKey authenticates calls to the purchase endpoints.
type APIKey struct {
	ID             int64      `json:"id"`
	Name           string     `json:"name"`
	Key            string     `json:"apiKey"`
	ExpirationDate civil.Date `json:"expirationDate"`
	CreatedAt      time.Time  `json:"createdAt"`
}

// IsExpired reports whether the key is no longer usable on the given day.
// A key stays valid through its expiration date.
func (k *APIKey) IsExpired(today civil.Date) bool {
	return k.ExpirationDate.Before(today)
}
