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

type PgxAPIKeyRepository struct {
	BaseRepository
}

// newPgxAPIKeyRepository creates a new instance of PgxAPIKeyRepository
func newPgxAPIKeyRepository(db *pgxpool.Pool) portsrepo.APIKeyRepository {
	return &PgxAPIKeyRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

const (
	apiKeysTable = "api_keys"

	selectAPIKeyFields = `api_key_id, name, api_key, expiration_date, created_at`

	insertAPIKeyQuery = `
		INSERT INTO ` + apiKeysTable + ` (name, api_key, expiration_date)
		VALUES ($1, $2, $3)
		RETURNING ` + selectAPIKeyFields

	findAPIKeyByIDQuery = `
		SELECT ` + selectAPIKeyFields + `
		FROM ` + apiKeysTable + `
		WHERE api_key_id = $1
	`

	findAPIKeyByValueQuery = `
		SELECT ` + selectAPIKeyFields + `
		FROM ` + apiKeysTable + `
		WHERE api_key = $1
	`

	listAPIKeysQuery = `
		SELECT ` + selectAPIKeyFields + `
		FROM ` + apiKeysTable + `
		ORDER BY api_key_id
	`

	deleteAPIKeyQuery = `DELETE FROM ` + apiKeysTable + ` WHERE api_key_id = $1`
)

// Create persists a new API key
func (r *PgxAPIKeyRepository) Create(ctx context.Context, key *domain.APIKey) error {
	if key == nil {
		return errors.New("api key cannot be nil")
	}

	m := mapping.ToModelAPIKey(*key)
	created, err := scanAPIKey(r.queryRow(ctx, insertAPIKeyQuery, m.Name, m.APIKey, m.ExpirationDate))
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("api key value: %w", apperrors.ErrDuplicate)
		}
		return apperrors.NewAppError(500, "failed to save api key", err)
	}

	// Update the original key with the generated values
	key.ID = created.ID
	key.CreatedAt = created.CreatedAt
	return nil
}

// FindByID retrieves an API key by its ID
func (r *PgxAPIKeyRepository) FindByID(ctx context.Context, id int64) (*domain.APIKey, error) {
	return r.findOne(ctx, findAPIKeyByIDQuery, id)
}

// FindByKey finds an API key by its value
func (r *PgxAPIKeyRepository) FindByKey(ctx context.Context, key string) (*domain.APIKey, error) {
	if key == "" {
		return nil, fmt.Errorf("api key: %w", apperrors.ErrNotFound)
	}
	return r.findOne(ctx, findAPIKeyByValueQuery, key)
}

func (r *PgxAPIKeyRepository) findOne(ctx context.Context, sql string, arg any) (*domain.APIKey, error) {
	m, err := scanAPIKey(r.queryRow(ctx, sql, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("api key: %w", apperrors.ErrNotFound)
		}
		return nil, apperrors.NewAppError(500, "failed to find api key", err)
	}
	k := mapping.ToDomainAPIKey(*m)
	return &k, nil
}

// List retrieves all API keys
func (r *PgxAPIKeyRepository) List(ctx context.Context) ([]domain.APIKey, error) {
	rows, err := r.query(ctx, listAPIKeysQuery)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list api keys", err)
	}
	defer rows.Close()

	var keys []models.APIKey
	for rows.Next() {
		m, err := scanAPIKey(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan api key", err)
		}
		keys = append(keys, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating api keys", err)
	}

	return mapping.ToDomainAPIKeySlice(keys), nil
}

// Delete removes an API key by ID
func (r *PgxAPIKeyRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.exec(ctx, deleteAPIKeyQuery, id)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete api key", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("api key %d: %w", id, apperrors.ErrNotFound)
	}
	return nil
}

// scanAPIKey scans an API key from a row
func scanAPIKey(row pgx.Row) (*models.APIKey, error) {
	var k models.APIKey
	err := row.Scan(
		&k.ID,
		&k.Name,
		&k.APIKey,
		&k.ExpirationDate,
		&k.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &k, nil
}
