package service

import (
	"context"
	"fmt"
	"time"

	"partyrent-backend/internal/domain"
	"partyrent-backend/internal/logger"
	"partyrent-backend/internal/pricing"
	"partyrent-backend/internal/repository"
)

type bookingService struct {
	bookingRepo   repository.BookingRepository
	variationRepo repository.VariationRepository
	itemRepo      repository.RentalItemRepository
	availability  AvailabilityService
	notifier      NotifierService
}

func NewBookingService(
	bookingRepo repository.BookingRepository,
	variationRepo repository.VariationRepository,
	itemRepo repository.RentalItemRepository,
	availability AvailabilityService,
	notifier NotifierService,
) BookingService {
	return &bookingService{
		bookingRepo:   bookingRepo,
		variationRepo: variationRepo,
		itemRepo:      itemRepo,
		availability:  availability,
		notifier:      notifier,
	}
}

// Quote resolves the effective pricing and availability for a window without
// writing anything. This is the widget/storefront read path.
func (s *bookingService) Quote(ctx context.Context, tenantID, variationID string, start, end time.Time) (*BookingQuote, error) {
	variation, err := s.variationRepo.GetByID(ctx, variationID)
	if err != nil {
		return nil, err
	}
	if variation.TenantID != tenantID {
		return nil, fmt.Errorf("variation %s: %w", variationID, domain.ErrNotFound)
	}
	parent, err := variation.RentalItem.Resolve(ctx, s.itemRepo.GetByID)
	if err != nil {
		return nil, err
	}

	effective, err := pricing.ResolvePricing(parent.Pricing, variation)
	if err != nil {
		return nil, err
	}

	cost, err := pricing.EstimateCost(effective, start, end)
	if err != nil {
		return nil, err
	}
	if cost.TotalCents < 0 {
		// Negative totals are possible with large negative adjustments;
		// they are surfaced, not clamped or rejected.
		logger.Warn("Quote produced negative total",
			"variation_id", variationID, "total_cents", cost.TotalCents)
	}

	avail, err := s.availability.CheckAvailability(ctx, tenantID, variationID, start, end)
	if err != nil {
		return nil, err
	}

	return &BookingQuote{
		Pricing:      effective,
		Cost:         cost,
		Availability: *avail,
	}, nil
}

func (s *bookingService) CreateBooking(ctx context.Context, req *BookingRequest) (*domain.Booking, error) {
	if req.CustomerEmail == "" {
		return nil, fmt.Errorf("%w: customer email is required", domain.ErrInvalidInput)
	}

	variation, err := s.variationRepo.GetByID(ctx, req.VariationID)
	if err != nil {
		return nil, err
	}
	if variation.TenantID != req.TenantID {
		return nil, fmt.Errorf("variation %s: %w", req.VariationID, domain.ErrNotFound)
	}
	// Inactive variations are hidden from storefronts and not bookable.
	if variation.Status == domain.VariationStatusInactive {
		return nil, fmt.Errorf("variation %s: %w", req.VariationID, domain.ErrNotFound)
	}

	quote, err := s.Quote(ctx, req.TenantID, req.VariationID, req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}
	if !quote.Availability.Available {
		return nil, fmt.Errorf("variation %s: %w", req.VariationID, domain.ErrNoAvailability)
	}

	booking := &domain.Booking{
		TenantID:       req.TenantID,
		VariationID:    req.VariationID,
		CustomerName:   req.CustomerName,
		CustomerEmail:  req.CustomerEmail,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
		Status:         domain.BookingStatusConfirmed,
		TotalCostCents: quote.Cost.TotalCents,
	}

	// Untracked variations skip the overlap guard (totalQuantity 0).
	totalQuantity := int32(0)
	if variation.TrackInventory {
		totalQuantity = variation.EffectiveQuantity()
	}
	if err := s.bookingRepo.CreateIfAvailable(ctx, booking, totalQuantity); err != nil {
		return nil, err
	}

	// Notification failures don't fail the booking.
	_ = s.notifier.SendBookingConfirmation(ctx, booking.CustomerEmail, booking.CustomerName,
		variation.Name, booking.StartDate, booking.EndDate)

	logger.Info("Booking created", "booking_id", booking.ID,
		"variation_id", booking.VariationID, "total_cents", booking.TotalCostCents)
	return booking, nil
}

func (s *bookingService) CancelBooking(ctx context.Context, tenantID, bookingID string) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.TenantID != tenantID {
		return nil, fmt.Errorf("booking %s: %w", bookingID, domain.ErrNotFound)
	}
	if booking.Status == domain.BookingStatusCancelled {
		return booking, nil
	}

	if err := s.bookingRepo.UpdateStatus(ctx, bookingID, domain.BookingStatusCancelled); err != nil {
		return nil, err
	}
	booking.Status = domain.BookingStatusCancelled

	variationName := booking.VariationID
	if variation, err := s.variationRepo.GetByID(ctx, booking.VariationID); err == nil {
		variationName = variation.Name
	}
	_ = s.notifier.SendBookingCancellation(ctx, booking.CustomerEmail, booking.CustomerName, variationName)

	return booking, nil
}

func (s *bookingService) ListOverlapping(ctx context.Context, tenantID, variationID string, start, end time.Time) ([]domain.Booking, error) {
	if !end.After(start) {
		return nil, fmt.Errorf("%w: end date must be after start date", domain.ErrInvalidInput)
	}
	variation, err := s.variationRepo.GetByID(ctx, variationID)
	if err != nil {
		return nil, err
	}
	if variation.TenantID != tenantID {
		return nil, fmt.Errorf("variation %s: %w", variationID, domain.ErrNotFound)
	}
	return s.bookingRepo.FindOverlapping(ctx, variationID, start, end)
}

func (s *bookingService) ListBookings(ctx context.Context, tenantID, status string, page, pageSize int32) ([]domain.Booking, int32, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return s.bookingRepo.ListByTenant(ctx, tenantID, status, page, pageSize)
}
