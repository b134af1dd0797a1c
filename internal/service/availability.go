package service

import (
	"context"
	"fmt"
	"time"

	"partyrent-backend/internal/domain"
	"partyrent-backend/internal/repository"
)

type availabilityService struct {
	variationRepo repository.VariationRepository
	bookingRepo   repository.BookingRepository
}

func NewAvailabilityService(
	variationRepo repository.VariationRepository,
	bookingRepo repository.BookingRepository,
) AvailabilityService {
	return &availabilityService{
		variationRepo: variationRepo,
		bookingRepo:   bookingRepo,
	}
}

// CheckAvailability answers "is at least one unit of this variation free for
// the half-open [start, end) window". It is an advisory read; the binding
// re-check happens inside BookingRepository.CreateIfAvailable.
func (s *availabilityService) CheckAvailability(ctx context.Context, tenantID, variationID string, start, end time.Time) (*domain.Availability, error) {
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

	total := variation.EffectiveQuantity()

	// Untracked variations never run out, regardless of existing bookings.
	if !variation.TrackInventory {
		return &domain.Availability{
			Available:      true,
			TotalQuantity:  total,
			BookedQuantity: 0,
		}, nil
	}

	booked, err := s.bookingRepo.CountOverlapping(ctx, variationID, start, end)
	if err != nil {
		return nil, err
	}

	return &domain.Availability{
		Available:      total-booked > 0,
		TotalQuantity:  total,
		BookedQuantity: booked,
	}, nil
}
