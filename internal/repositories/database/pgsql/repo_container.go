package pgsql

import (
	portsrepo "github.com/SscSPs/purchase_conversion_api/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		PurchaseRepo: newPgxPurchaseRepository(dbPool),
		APIKeyRepo:   newPgxAPIKeyRepository(dbPool),
	}
}
