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

type tenantRepository struct {
	db *sql.DB
}

func NewTenantRepository(db *sql.DB) repository.TenantRepository {
	return &tenantRepository{db: db}
}

func (r *tenantRepository) Create(ctx context.Context, t *domain.Tenant) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	query := `INSERT INTO tenants (id, name, slug, status, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.ExecContext(ctx, query, t.ID, t.Name, t.Slug, t.Status, time.Now(), time.Now())
	return err
}

func (r *tenantRepository) GetByID(ctx context.Context, id string) (*domain.Tenant, error) {
	query := `SELECT id, name, slug, status, created_on, updated_on FROM tenants WHERE id = $1`
	return r.scanOne(r.db.QueryRowContext(ctx, query, id), id)
}

func (r *tenantRepository) GetBySlug(ctx context.Context, slug string) (*domain.Tenant, error) {
	query := `SELECT id, name, slug, status, created_on, updated_on FROM tenants WHERE slug = $1`
	return r.scanOne(r.db.QueryRowContext(ctx, query, slug), slug)
}

func (r *tenantRepository) scanOne(row *sql.Row, ref string) (*domain.Tenant, error) {
	t := &domain.Tenant{}
	err := row.Scan(&t.ID, &t.Name, &t.Slug, &t.Status, &t.CreatedOn, &t.UpdatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("tenant %s: %w", ref, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return t, nil
}
