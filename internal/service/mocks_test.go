package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"partyrent-backend/internal/domain"
)

type mockVariationRepo struct {
	mock.Mock
}

func (m *mockVariationRepo) Create(ctx context.Context, v *domain.Variation) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

func (m *mockVariationRepo) GetByID(ctx context.Context, id string) (*domain.Variation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Variation), args.Error(1)
}

func (m *mockVariationRepo) Update(ctx context.Context, v *domain.Variation) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

func (m *mockVariationRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockVariationRepo) ListByItem(ctx context.Context, rentalItemID string, onlyActive bool) ([]domain.Variation, error) {
	args := m.Called(ctx, rentalItemID, onlyActive)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Variation), args.Error(1)
}

func (m *mockVariationRepo) FindByTenantAndSKU(ctx context.Context, tenantID, sku, excludeID string) ([]domain.Variation, error) {
	args := m.Called(ctx, tenantID, sku, excludeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Variation), args.Error(1)
}

type mockItemRepo struct {
	mock.Mock
}

func (m *mockItemRepo) Create(ctx context.Context, item *domain.RentalItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *mockItemRepo) GetByID(ctx context.Context, id string) (*domain.RentalItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RentalItem), args.Error(1)
}

func (m *mockItemRepo) Update(ctx context.Context, item *domain.RentalItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *mockItemRepo) ListByTenant(ctx context.Context, tenantID string, page, pageSize int32) ([]domain.RentalItem, int32, error) {
	args := m.Called(ctx, tenantID, page, pageSize)
	if args.Get(0) == nil {
		return nil, int32(args.Int(1)), args.Error(2)
	}
	return args.Get(0).([]domain.RentalItem), int32(args.Int(1)), args.Error(2)
}

type mockBookingRepo struct {
	mock.Mock
}

func (m *mockBookingRepo) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *mockBookingRepo) CountOverlapping(ctx context.Context, variationID string, start, end time.Time) (int32, error) {
	args := m.Called(ctx, variationID, start, end)
	return int32(args.Int(0)), args.Error(1)
}

func (m *mockBookingRepo) FindOverlapping(ctx context.Context, variationID string, start, end time.Time) ([]domain.Booking, error) {
	args := m.Called(ctx, variationID, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *mockBookingRepo) CreateIfAvailable(ctx context.Context, b *domain.Booking, totalQuantity int32) error {
	args := m.Called(ctx, b, totalQuantity)
	return args.Error(0)
}

func (m *mockBookingRepo) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *mockBookingRepo) ListByTenant(ctx context.Context, tenantID, status string, page, pageSize int32) ([]domain.Booking, int32, error) {
	args := m.Called(ctx, tenantID, status, page, pageSize)
	if args.Get(0) == nil {
		return nil, int32(args.Int(1)), args.Error(2)
	}
	return args.Get(0).([]domain.Booking), int32(args.Int(1)), args.Error(2)
}

type mockNotifier struct {
	mock.Mock
}

func (m *mockNotifier) SendBookingConfirmation(ctx context.Context, email, name, itemName string, start, end time.Time) error {
	args := m.Called(ctx, email, name, itemName, start, end)
	return args.Error(0)
}

func (m *mockNotifier) SendBookingReminder(ctx context.Context, email, name, itemName string, start time.Time) error {
	args := m.Called(ctx, email, name, itemName, start)
	return args.Error(0)
}

func (m *mockNotifier) SendBookingCancellation(ctx context.Context, email, name, itemName string) error {
	args := m.Called(ctx, email, name, itemName)
	return args.Error(0)
}
