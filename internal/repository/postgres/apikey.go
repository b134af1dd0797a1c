package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"partyrent-backend/internal/domain"
	"partyrent-backend/internal/repository"
)

type apiKeyRepository struct {
	db *sql.DB
}

func NewAPIKeyRepository(db *sql.DB) repository.APIKeyRepository {
	return &apiKeyRepository{db: db}
}

func (r *apiKeyRepository) Create(ctx context.Context, key *domain.APIKey) error {
	if key.ID == "" {
		key.ID = uuid.NewString()
	}
	query := `INSERT INTO api_keys (id, tenant_id, label, secret_hash, status, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.ExecContext(ctx, query, key.ID, key.TenantID, key.Label, key.SecretHash, key.Status, time.Now())
	return err
}

func (r *apiKeyRepository) GetByID(ctx context.Context, id string) (*domain.APIKey, error) {
	key := &domain.APIKey{}
	query := `SELECT id, tenant_id, label, secret_hash, status, created_on, last_used_on FROM api_keys WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&key.ID, &key.TenantID, &key.Label, &key.SecretHash,
		&key.Status, &key.CreatedOn, &key.LastUsedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("api key %s: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return key, nil
}

func (r *apiKeyRepository) TouchLastUsed(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `UPDATE api_keys SET last_used_on=$1 WHERE id=$2`, time.Now(), id)
	return err
}
