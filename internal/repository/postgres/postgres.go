package postgres

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"partyrent-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.TenantRepository
	repository.RentalItemRepository
	repository.VariationRepository
	repository.BookingRepository
	repository.APIKeyRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                   db,
		TenantRepository:     NewTenantRepository(db),
		RentalItemRepository: NewRentalItemRepository(db),
		VariationRepository:  NewVariationRepository(db),
		BookingRepository:    NewBookingRepository(db),
		APIKeyRepository:     NewAPIKeyRepository(db),
	}
}

// marshalJSON serializes a slice-valued column, writing SQL NULL for empty
// values so the jsonb columns stay sparse.
func marshalJSON(v any) (any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshal jsonb column: %w", err)
	}
	if string(data) == "null" || string(data) == "[]" {
		return nil, nil
	}
	return data, nil
}

// unmarshalJSON restores a jsonb column into dest, tolerating NULL.
func unmarshalJSON(raw []byte, dest any) error {
	if len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return fmt.Errorf("unmarshal jsonb column: %w", err)
	}
	return nil
}

// nullableInt converts an optional cents value for binding.
func nullableInt(v *int32) any {
	if v == nil {
		return nil
	}
	return *v
}

// intPtr converts a scanned nullable cents column back to a pointer.
func intPtr(v sql.NullInt32) *int32 {
	if !v.Valid {
		return nil
	}
	n := v.Int32
	return &n
}
