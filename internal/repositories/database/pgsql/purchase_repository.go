package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/purchase_conversion_api/internal/apperrors"
	"github.com/SscSPs/purchase_conversion_api/internal/core/domain"
	portsrepo "github.com/SscSPs/purchase_conversion_api/internal/core/ports/repositories"
	"github.com/SscSPs/purchase_conversion_api/internal/models"
	"github.com/SscSPs/purchase_conversion_api/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxPurchaseRepository struct {
	BaseRepository
}

func newPgxPurchaseRepository(db *pgxpool.Pool) portsrepo.PurchaseRepository {
	return &PgxPurchaseRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

const (
	purchasesTable = "purchases"

	selectPurchaseFields = `
		purchase_id, purchase_date, description, purchase_amount,
		country, currency_code, created_at
	`

	insertPurchaseQuery = `
		INSERT INTO ` + purchasesTable + ` (
			purchase_id, purchase_date, description, purchase_amount,
			country, currency_code, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	findPurchaseByIDQuery = `
		SELECT ` + selectPurchaseFields + `
		FROM ` + purchasesTable + `
		WHERE purchase_id = $1
	`

	listPurchasesQuery = `
		SELECT ` + selectPurchaseFields + `
		FROM ` + purchasesTable + `
		ORDER BY purchase_date DESC, created_at DESC
	`

	deletePurchaseQuery = `DELETE FROM ` + purchasesTable + ` WHERE purchase_id = $1`
)

// Create persists a new purchase
func (r *PgxPurchaseRepository) Create(ctx context.Context, purchase domain.Purchase) error {
	m := mapping.ToModelPurchase(purchase)
	_, err := r.exec(ctx, insertPurchaseQuery,
		m.ID, m.Date, m.Description, m.PurchaseAmount, m.Country, m.CurrencyCode, m.CreatedAt)
	if err != nil {
		return apperrors.NewAppError(500, "failed to save purchase", err)
	}
	return nil
}

// FindByID retrieves a purchase by its ID
func (r *PgxPurchaseRepository) FindByID(ctx context.Context, id string) (*domain.Purchase, error) {
	m, err := scanPurchase(r.queryRow(ctx, findPurchaseByIDQuery, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("purchase %s: %w", id, apperrors.ErrNotFound)
		}
		return nil, apperrors.NewAppError(500, "failed to find purchase", err)
	}
	p := mapping.ToDomainPurchase(*m)
	return &p, nil
}

// ListByDateDesc retrieves all purchases, newest first
func (r *PgxPurchaseRepository) ListByDateDesc(ctx context.Context) ([]domain.Purchase, error) {
	rows, err := r.query(ctx, listPurchasesQuery)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list purchases", err)
	}
	defer rows.Close()

	var purchases []models.Purchase
	for rows.Next() {
		m, err := scanPurchase(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan purchase", err)
		}
		purchases = append(purchases, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating purchases", err)
	}

	return mapping.ToDomainPurchaseSlice(purchases), nil
}

// Delete removes a purchase by ID
func (r *PgxPurchaseRepository) Delete(ctx context.Context, id string) error {
	result, err := r.exec(ctx, deletePurchaseQuery, id)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete purchase", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("purchase %s: %w", id, apperrors.ErrNotFound)
	}
	return nil
}

// scanPurchase scans a purchase from a row
func scanPurchase(row pgx.Row) (*models.Purchase, error) {
	var p models.Purchase
	err := row.Scan(
		&p.ID,
		&p.Date,
		&p.Description,
		&p.PurchaseAmount,
		&p.Country,
		&p.CurrencyCode,
		&p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
