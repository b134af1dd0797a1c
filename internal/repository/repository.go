package repository

import (
	"context"
	"time"

	"partyrent-backend/internal/domain"
)

type TenantRepository interface {
	Create(ctx context.Context, tenant *domain.Tenant) error
	GetByID(ctx context.Context, id string) (*domain.Tenant, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Tenant, error)
}

type RentalItemRepository interface {
	Create(ctx context.Context, item *domain.RentalItem) error
	GetByID(ctx context.Context, id string) (*domain.RentalItem, error)
	Update(ctx context.Context, item *domain.RentalItem) error
	ListByTenant(ctx context.Context, tenantID string, page, pageSize int32) ([]domain.RentalItem, int32, error)
}

type VariationRepository interface {
	Create(ctx context.Context, v *domain.Variation) error
	GetByID(ctx context.Context, id string) (*domain.Variation, error)
	Update(ctx context.Context, v *domain.Variation) error
	Delete(ctx context.Context, id string) error
	ListByItem(ctx context.Context, rentalItemID string, onlyActive bool) ([]domain.Variation, error)
	// FindByTenantAndSKU returns the variations in a tenant carrying the
	// exact SKU, excluding excludeID when non-empty (so an update doesn't
	// collide with itself).
	FindByTenantAndSKU(ctx context.Context, tenantID, sku, excludeID string) ([]domain.Variation, error)
}

type BookingRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	// CountOverlapping counts non-cancelled bookings on the variation whose
	// half-open [start, end) interval intersects the requested one.
	CountOverlapping(ctx context.Context, variationID string, start, end time.Time) (int32, error)
	FindOverlapping(ctx context.Context, variationID string, start, end time.Time) ([]domain.Booking, error)
	// CreateIfAvailable inserts the booking inside a transaction that holds
	// a per-variation advisory lock and re-counts overlap, returning
	// domain.ErrNoAvailability when every unit is taken. A totalQuantity
	// of zero or less means inventory is untracked and the guard is
	// skipped. This is the only write path that may consume inventory.
	CreateIfAvailable(ctx context.Context, b *domain.Booking, totalQuantity int32) error
	UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) error
	ListByTenant(ctx context.Context, tenantID, status string, page, pageSize int32) ([]domain.Booking, int32, error)
}

type APIKeyRepository interface {
	Create(ctx context.Context, key *domain.APIKey) error
	GetByID(ctx context.Context, id string) (*domain.APIKey, error)
	TouchLastUsed(ctx context.Context, id string) error
}
