package services

import (
	"log/slog"

	"github.com/SscSPs/purchase_conversion_api/internal/core/ports/gateways"
	portsrepo "github.com/SscSPs/purchase_conversion_api/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/purchase_conversion_api/internal/core/ports/services"
	"github.com/SscSPs/purchase_conversion_api/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, treasury gateways.TreasuryGateway, logger *slog.Logger) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// One catalog per process; it is loaded on the first request that needs it.
	catalog := NewCatalogCache(treasury, CatalogLoaderOptions{
		MaxPages:      cfg.CatalogMaxPages,
		MaxEmptyPages: cfg.CatalogMaxEmptyPages,
	}, logger)

	container.Currency = NewCurrencyService(treasury, WithCatalogCache(catalog))
	container.Purchase = NewPurchaseService(
		repos.PurchaseRepo,
		container.Currency,
		WithConversionConcurrency(cfg.ConversionConcurrency),
	)
	container.APIKey = NewAPIKeyService(repos.APIKeyRepo)

	return container
}
