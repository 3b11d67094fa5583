package handlers

import (
	"net/http"

	"github.com/SscSPs/purchase_conversion_api/cmd/docs"
	portssvc "github.com/SscSPs/purchase_conversion_api/internal/core/ports/services"
	"github.com/SscSPs/purchase_conversion_api/internal/middleware"
	"github.com/SscSPs/purchase_conversion_api/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// ErrorResponse is the body of every error reply.
type ErrorResponse struct {
	Error string `json:"error" example:"Purchase not found"`
}

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	api := r.Group("/api")

	// Key management is open so that the first key can be issued.
	RegisterAPIKeyRoutes(api, services.APIKey)

	purchases := api.Group("/purchases", middleware.APIKeyAuth(services.APIKey, cfg.DefaultAPIKey))
	RegisterPurchaseRoutes(purchases, services.Purchase, services.Currency)

	setupSwaggerRoutes(r, cfg)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
