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

type variationRepository struct {
	db *sql.DB
}

func NewVariationRepository(db *sql.DB) repository.VariationRepository {
	return &variationRepository{db: db}
}

const variationColumns = `id, tenant_id, rental_item_id, name, sku, attributes, pricing_policy, adjustment_cents,
	override_hourly_cents, override_daily_cents, override_weekend_cents, override_weekly_cents,
	quantity, track_inventory, status, images, created_on, updated_on`

func (r *variationRepository) Create(ctx context.Context, v *domain.Variation) error {
	if v.ID == "" {
		v.ID = uuid.NewString()
	}
	attrs, err := marshalJSON(v.Attributes)
	if err != nil {
		return err
	}
	images, err := marshalJSON(v.Images)
	if err != nil {
		return err
	}

	override := v.OverridePrice
	if override == nil {
		override = &domain.PriceOverride{}
	}

	query := `INSERT INTO variations (id, tenant_id, rental_item_id, name, sku, attributes, pricing_policy, adjustment_cents,
	          override_hourly_cents, override_daily_cents, override_weekend_cents, override_weekly_cents,
	          quantity, track_inventory, status, images, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`
	_, err = r.db.ExecContext(ctx, query, v.ID, v.TenantID, v.RentalItem.ID(), v.Name, v.SKU, attrs,
		v.PricingPolicy, v.AdjustmentCents, override.HourlyCents, override.DailyCents, override.WeekendCents,
		override.WeeklyCents, v.EffectiveQuantity(), v.TrackInventory, v.Status, images, time.Now(), time.Now())
	return err
}

func (r *variationRepository) GetByID(ctx context.Context, id string) (*domain.Variation, error) {
	query := `SELECT ` + variationColumns + ` FROM variations WHERE id = $1`
	v, err := scanVariation(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("variation %s: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (r *variationRepository) Update(ctx context.Context, v *domain.Variation) error {
	attrs, err := marshalJSON(v.Attributes)
	if err != nil {
		return err
	}
	images, err := marshalJSON(v.Images)
	if err != nil {
		return err
	}

	override := v.OverridePrice
	if override == nil {
		override = &domain.PriceOverride{}
	}

	query := `UPDATE variations SET name=$1, sku=$2, attributes=$3, pricing_policy=$4, adjustment_cents=$5,
	          override_hourly_cents=$6, override_daily_cents=$7, override_weekend_cents=$8, override_weekly_cents=$9,
	          quantity=$10, track_inventory=$11, status=$12, images=$13, updated_on=$14 WHERE id=$15`
	_, err = r.db.ExecContext(ctx, query, v.Name, v.SKU, attrs, v.PricingPolicy, v.AdjustmentCents,
		override.HourlyCents, override.DailyCents, override.WeekendCents, override.WeeklyCents,
		v.EffectiveQuantity(), v.TrackInventory, v.Status, images, time.Now(), v.ID)
	return err
}

func (r *variationRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM variations WHERE id = $1`, id)
	return err
}

func (r *variationRepository) ListByItem(ctx context.Context, rentalItemID string, onlyActive bool) ([]domain.Variation, error) {
	query := `SELECT ` + variationColumns + ` FROM variations WHERE rental_item_id = $1`
	args := []any{rentalItemID}
	if onlyActive {
		query += ` AND status = $2`
		args = append(args, domain.VariationStatusActive)
	}
	query += ` ORDER BY created_on ASC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectVariations(rows)
}

func (r *variationRepository) FindByTenantAndSKU(ctx context.Context, tenantID, sku, excludeID string) ([]domain.Variation, error) {
	query := `SELECT ` + variationColumns + ` FROM variations WHERE tenant_id = $1 AND sku = $2`
	args := []any{tenantID, sku}
	if excludeID != "" {
		query += ` AND id <> $3`
		args = append(args, excludeID)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectVariations(rows)
}

func collectVariations(rows *sql.Rows) ([]domain.Variation, error) {
	var variations []domain.Variation
	for rows.Next() {
		v, err := scanVariation(rows)
		if err != nil {
			return nil, err
		}
		variations = append(variations, *v)
	}
	return variations, rows.Err()
}

func scanVariation(row rowScanner) (*domain.Variation, error) {
	v := &domain.Variation{}
	var rentalItemID string
	var attrs, images []byte
	var override domain.PriceOverride

	err := row.Scan(&v.ID, &v.TenantID, &rentalItemID, &v.Name, &v.SKU, &attrs, &v.PricingPolicy,
		&v.AdjustmentCents, &override.HourlyCents, &override.DailyCents, &override.WeekendCents,
		&override.WeeklyCents, &v.Quantity, &v.TrackInventory, &v.Status, &images,
		&v.CreatedOn, &v.UpdatedOn)
	if err != nil {
		return nil, err
	}

	v.RentalItem = domain.RefID[domain.RentalItem](rentalItemID)
	if override != (domain.PriceOverride{}) {
		v.OverridePrice = &override
	}
	if err := unmarshalJSON(attrs, &v.Attributes); err != nil {
		return nil, err
	}
	if err := unmarshalJSON(images, &v.Images); err != nil {
		return nil, err
	}
	return v, nil
}
