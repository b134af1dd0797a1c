package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"partyrent-backend/internal/domain"
	"partyrent-backend/internal/logger"
	"partyrent-backend/internal/repository"
)

type bookingRepository struct {
	db *sql.DB
}

func NewBookingRepository(db *sql.DB) repository.BookingRepository {
	return &bookingRepository{db: db}
}

const bookingColumns = `id, tenant_id, variation_id, customer_name, customer_email, start_date, end_date,
	status, total_cost_cents, created_on, updated_on`

// Half-open [start, end) overlap: an existing booking conflicts iff it starts
// before the requested end and ends after the requested start. A booking
// ending exactly at the requested start does not conflict.
const overlapPredicate = `variation_id = $1 AND status <> 'cancelled' AND start_date < $3 AND end_date > $2`

func (r *bookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`
	b, err := scanBooking(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("booking %s: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (r *bookingRepository) CountOverlapping(ctx context.Context, variationID string, start, end time.Time) (int32, error) {
	query := `SELECT count(*) FROM bookings WHERE ` + overlapPredicate
	logger.DatabaseCall("CountOverlapping", query, "variation_id", variationID)

	var count int32
	err := r.db.QueryRowContext(ctx, query, variationID, start, end).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *bookingRepository) FindOverlapping(ctx context.Context, variationID string, start, end time.Time) ([]domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE ` + overlapPredicate + ` ORDER BY start_date ASC`
	rows, err := r.db.QueryContext(ctx, query, variationID, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, *b)
	}
	return bookings, rows.Err()
}

// CreateIfAvailable closes the check-then-act race: the per-variation
// advisory lock serializes concurrent booking attempts, and the overlap
// count is re-taken inside the same transaction as the insert.
func (r *bookingRepository) CreateIfAvailable(ctx context.Context, b *domain.Booking, totalQuantity int32) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	// totalQuantity <= 0 means the variation doesn't track inventory and
	// the overlap guard is skipped.
	if totalQuantity > 0 {
		if _, err := tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, "variation:"+b.VariationID); err != nil {
			return fmt.Errorf("acquire variation lock: %w", err)
		}

		var booked int32
		countQuery := `SELECT count(*) FROM bookings WHERE ` + overlapPredicate
		if err := tx.QueryRowContext(ctx, countQuery, b.VariationID, b.StartDate, b.EndDate).Scan(&booked); err != nil {
			return err
		}
		if booked >= totalQuantity {
			return fmt.Errorf("variation %s from %s to %s: %w", b.VariationID,
				b.StartDate.Format("2006-01-02"), b.EndDate.Format("2006-01-02"), domain.ErrNoAvailability)
		}
	}

	insert := `INSERT INTO bookings (id, tenant_id, variation_id, customer_name, customer_email, start_date, end_date,
	           status, total_cost_cents, created_on, updated_on)
	           VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err = tx.ExecContext(ctx, insert, b.ID, b.TenantID, b.VariationID, b.CustomerName, b.CustomerEmail,
		b.StartDate, b.EndDate, b.Status, b.TotalCostCents, time.Now(), time.Now())
	if err != nil {
		return err
	}

	return tx.Commit()
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) error {
	res, err := r.db.ExecContext(ctx, `UPDATE bookings SET status=$1, updated_on=$2 WHERE id=$3`, status, time.Now(), id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("booking %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func (r *bookingRepository) ListByTenant(ctx context.Context, tenantID, status string, page, pageSize int32) ([]domain.Booking, int32, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE tenant_id = $1`
	args := []any{tenantID}
	argIdx := 2
	if status != "" {
		query += fmt.Sprintf(" AND status = $%d", argIdx)
		args = append(args, status)
		argIdx++
	}

	var count int32
	countQuery := "SELECT count(*) FROM (" + query + ") AS sub"
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&count); err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	query += fmt.Sprintf(" ORDER BY start_date DESC LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, pageSize, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var bookings []domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, 0, err
		}
		bookings = append(bookings, *b)
	}
	return bookings, count, rows.Err()
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	b := &domain.Booking{}
	err := row.Scan(&b.ID, &b.TenantID, &b.VariationID, &b.CustomerName, &b.CustomerEmail,
		&b.StartDate, &b.EndDate, &b.Status, &b.TotalCostCents, &b.CreatedOn, &b.UpdatedOn)
	if err != nil {
		return nil, err
	}
	return b, nil
}
