package middleware

import (
	"github.com/SscSPs/purchase_conversion_api/internal/core/domain"
	"github.com/gin-gonic/gin"
)

// apiKeyCtxKey holds the *domain.APIKey that authenticated the request.
const apiKeyCtxKey = contextKey("apiKey")

// GetAPIKeyFromContext retrieves the API key set by APIKeyAuth.
// It returns the key and a boolean indicating if it was found.
func GetAPIKeyFromContext(c *gin.Context) (*domain.APIKey, bool) {
	val, exists := c.Get(string(apiKeyCtxKey))
	if !exists {
		if key, ok := c.Request.Context().Value(apiKeyCtxKey).(*domain.APIKey); ok {
			return key, true
		}
		return nil, false
	}

	key, ok := val.(*domain.APIKey)
	return key, ok
}
