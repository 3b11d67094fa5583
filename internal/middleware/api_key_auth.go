package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/SscSPs/purchase_conversion_api/internal/apperrors"
	"github.com/SscSPs/purchase_conversion_api/internal/core/ports/services"
	"github.com/gin-gonic/gin"
)

const (
	// APIKeyHeader carries the key on authenticated requests.
	APIKeyHeader = "X-API-Key"
	// APIKeyQueryParam is accepted when the header is absent.
	APIKeyQueryParam = "apiKey"

	msgAPIKeyRequired = "API key is required. Please provide X-API-Key header or apiKey query parameter."
	msgAPIKeyInvalid  = "Invalid or expired API key."
)

// APIKeyAuth rejects requests without a valid, unexpired API key. The key is
// read from the X-API-Key header, then the apiKey query parameter, then
// defaultKey. CORS preflight requests pass through untouched.
func APIKeyAuth(keySvc services.APIKeySvcFacade, defaultKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.Next()
			return
		}

		logger := GetLoggerFromContext(c)

		raw := strings.TrimSpace(c.GetHeader(APIKeyHeader))
		if raw == "" {
			raw = strings.TrimSpace(c.Query(APIKeyQueryParam))
		}
		if raw == "" {
			raw = strings.TrimSpace(defaultKey)
		}
		if raw == "" {
			logger.Warn("Request rejected: no API key provided")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msgAPIKeyRequired})
			return
		}

		key, err := keySvc.ValidateAPIKey(c.Request.Context(), raw)
		if err != nil {
			if errors.Is(err, apperrors.ErrUnauthorized) {
				logger.Warn("Request rejected: invalid or expired API key", slog.String("error", err.Error()))
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msgAPIKeyInvalid})
				return
			}
			logger.Error("Failed to validate API key", slog.String("error", err.Error()))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}

		c.Set(string(apiKeyCtxKey), key)
		c.Request = c.Request.WithContext(context.WithValue(c.Request.Context(), apiKeyCtxKey, key))
		c.Next()
	}
}
