package service

import (
	"context"
	"time"

	"partyrent-backend/internal/domain"
	"partyrent-backend/internal/pricing"
)

// BookingQuote is the result of pricing + availability resolution for a
// requested window, computed without any writes.
type BookingQuote struct {
	Pricing      domain.Pricing        `json:"pricing"`
	Cost         pricing.CostBreakdown `json:"cost"`
	Availability domain.Availability   `json:"availability"`
}

// BookingRequest carries the inputs for the guarded booking creation path.
type BookingRequest struct {
	TenantID      string
	VariationID   string
	CustomerName  string
	CustomerEmail string
	StartDate     time.Time
	EndDate       time.Time
}

type AvailabilityService interface {
	// CheckAvailability is scoped to the caller's tenant; a variation owned
	// by another tenant reads as not found.
	CheckAvailability(ctx context.Context, tenantID, variationID string, start, end time.Time) (*domain.Availability, error)
}

type BookingService interface {
	Quote(ctx context.Context, tenantID, variationID string, start, end time.Time) (*BookingQuote, error)
	CreateBooking(ctx context.Context, req *BookingRequest) (*domain.Booking, error)
	CancelBooking(ctx context.Context, tenantID, bookingID string) (*domain.Booking, error)
	ListBookings(ctx context.Context, tenantID, status string, page, pageSize int32) ([]domain.Booking, int32, error)
	// ListOverlapping returns the bookings that block a window, for staff
	// calendar views.
	ListOverlapping(ctx context.Context, tenantID, variationID string, start, end time.Time) ([]domain.Booking, error)
}

type VariationService interface {
	CreateVariation(ctx context.Context, v *domain.Variation) error
	UpdateVariation(ctx context.Context, v *domain.Variation) error
	GetVariation(ctx context.Context, id string) (*domain.Variation, error)
	ListByItem(ctx context.Context, tenantID, rentalItemID string, onlyActive bool) ([]domain.Variation, error)
	IsSKUUnique(ctx context.Context, tenantID, sku, excludeID string) (bool, error)
	ResolvePricing(ctx context.Context, variationID string) (*domain.Pricing, error)
	Images(ctx context.Context, v *domain.Variation) ([]domain.Image, error)
}

type ItemService interface {
	CreateItem(ctx context.Context, item *domain.RentalItem) error
	UpdateItem(ctx context.Context, item *domain.RentalItem) error
	GetItem(ctx context.Context, id string) (*domain.RentalItem, error)
	ListItems(ctx context.Context, tenantID string, page, pageSize int32) ([]domain.RentalItem, int32, error)
}

type NotifierService interface {
	SendBookingConfirmation(ctx context.Context, email, name, itemName string, start, end time.Time) error
	SendBookingReminder(ctx context.Context, email, name, itemName string, start time.Time) error
	SendBookingCancellation(ctx context.Context, email, name, itemName string) error
}
