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

type rentalItemRepository struct {
	db *sql.DB
}

func NewRentalItemRepository(db *sql.DB) repository.RentalItemRepository {
	return &rentalItemRepository{db: db}
}

const itemColumns = `id, tenant_id, name, description, hourly_cents, daily_cents, weekend_cents, weekly_cents,
	has_variations, attribute_schema, images, created_on, updated_on`

func (r *rentalItemRepository) Create(ctx context.Context, item *domain.RentalItem) error {
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	schema, err := marshalJSON(item.AttributeSchema)
	if err != nil {
		return err
	}
	images, err := marshalJSON(item.Images)
	if err != nil {
		return err
	}

	var hourly, daily, weekend, weekly any
	if item.Pricing != nil {
		hourly = nullableInt(item.Pricing.HourlyCents)
		daily = item.Pricing.DailyCents
		weekend = nullableInt(item.Pricing.WeekendCents)
		weekly = nullableInt(item.Pricing.WeeklyCents)
	}

	query := `INSERT INTO rental_items (id, tenant_id, name, description, hourly_cents, daily_cents, weekend_cents, weekly_cents,
	          has_variations, attribute_schema, images, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err = r.db.ExecContext(ctx, query, item.ID, item.TenantID, item.Name, item.Description,
		hourly, daily, weekend, weekly, item.HasVariations, schema, images, time.Now(), time.Now())
	return err
}

func (r *rentalItemRepository) GetByID(ctx context.Context, id string) (*domain.RentalItem, error) {
	query := `SELECT ` + itemColumns + ` FROM rental_items WHERE id = $1`
	item, err := scanItem(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("rental item %s: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (r *rentalItemRepository) Update(ctx context.Context, item *domain.RentalItem) error {
	schema, err := marshalJSON(item.AttributeSchema)
	if err != nil {
		return err
	}
	images, err := marshalJSON(item.Images)
	if err != nil {
		return err
	}

	var hourly, daily, weekend, weekly any
	if item.Pricing != nil {
		hourly = nullableInt(item.Pricing.HourlyCents)
		daily = item.Pricing.DailyCents
		weekend = nullableInt(item.Pricing.WeekendCents)
		weekly = nullableInt(item.Pricing.WeeklyCents)
	}

	query := `UPDATE rental_items SET name=$1, description=$2, hourly_cents=$3, daily_cents=$4, weekend_cents=$5,
	          weekly_cents=$6, has_variations=$7, attribute_schema=$8, images=$9, updated_on=$10 WHERE id=$11`
	_, err = r.db.ExecContext(ctx, query, item.Name, item.Description, hourly, daily, weekend, weekly,
		item.HasVariations, schema, images, time.Now(), item.ID)
	return err
}

func (r *rentalItemRepository) ListByTenant(ctx context.Context, tenantID string, page, pageSize int32) ([]domain.RentalItem, int32, error) {
	var count int32
	err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM rental_items WHERE tenant_id = $1`, tenantID).Scan(&count)
	if err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	query := `SELECT ` + itemColumns + ` FROM rental_items WHERE tenant_id = $1 ORDER BY created_on DESC LIMIT $2 OFFSET $3`
	rows, err := r.db.QueryContext(ctx, query, tenantID, pageSize, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var items []domain.RentalItem
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, *item)
	}
	return items, count, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(row rowScanner) (*domain.RentalItem, error) {
	item := &domain.RentalItem{}
	var hourly, daily, weekend, weekly sql.NullInt32
	var schema, images []byte

	err := row.Scan(&item.ID, &item.TenantID, &item.Name, &item.Description,
		&hourly, &daily, &weekend, &weekly, &item.HasVariations, &schema, &images,
		&item.CreatedOn, &item.UpdatedOn)
	if err != nil {
		return nil, err
	}

	if daily.Valid {
		item.Pricing = &domain.Pricing{
			HourlyCents:  intPtr(hourly),
			DailyCents:   daily.Int32,
			WeekendCents: intPtr(weekend),
			WeeklyCents:  intPtr(weekly),
		}
	}
	if err := unmarshalJSON(schema, &item.AttributeSchema); err != nil {
		return nil, err
	}
	if err := unmarshalJSON(images, &item.Images); err != nil {
		return nil, err
	}
	return item, nil
}
