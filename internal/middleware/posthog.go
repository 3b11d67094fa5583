package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/SscSPs/purchase_conversion_api/internal/utils"
	"github.com/gin-gonic/gin"
)

// pathsToSkip contains paths that should not be tracked by PostHog
var pathsToSkip = map[string]bool{
	"/health": true,
}

// PosthogMiddleware tracks successful authenticated API calls, one event per route,
// attributed to the API key that made them.
func PosthogMiddleware(posthogClient *utils.PosthogClientWrapper) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !posthogClient.IsInitialized() || pathsToSkip[c.Request.URL.Path] {
			c.Next()
			return
		}

		c.Next()

		if len(c.Errors) > 0 || c.Writer.Status() >= http.StatusBadRequest {
			return
		}

		key, ok := GetAPIKeyFromContext(c)
		if !ok {
			return
		}

		// "/api/purchases/:id" -> "api_purchases_:id"
		eventName := strings.ReplaceAll(strings.TrimPrefix(c.FullPath(), "/"), "/", "_")
		if eventName == "" {
			return
		}

		props := map[string]any{
			"method":       c.Request.Method,
			"path":         c.Request.URL.Path,
			"status_code":  c.Writer.Status(),
			"api_key_name": key.Name,
		}
		if currency := c.Query("currency"); currency != "" {
			props["currency"] = currency
		}

		posthogClient.Enqueue(strconv.FormatInt(key.ID, 10), eventName, props)
	}
}
