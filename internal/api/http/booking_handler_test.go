package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"partyrent-backend/internal/domain"
	"partyrent-backend/internal/service"
)

type mockBookingService struct {
	mock.Mock
}

func (m *mockBookingService) Quote(ctx context.Context, tenantID, variationID string, start, end time.Time) (*service.BookingQuote, error) {
	args := m.Called(ctx, tenantID, variationID, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.BookingQuote), args.Error(1)
}

func (m *mockBookingService) CreateBooking(ctx context.Context, req *service.BookingRequest) (*domain.Booking, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *mockBookingService) CancelBooking(ctx context.Context, tenantID, bookingID string) (*domain.Booking, error) {
	args := m.Called(ctx, tenantID, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *mockBookingService) ListBookings(ctx context.Context, tenantID, status string, page, pageSize int32) ([]domain.Booking, int32, error) {
	args := m.Called(ctx, tenantID, status, page, pageSize)
	if args.Get(0) == nil {
		return nil, int32(args.Int(1)), args.Error(2)
	}
	return args.Get(0).([]domain.Booking), int32(args.Int(1)), args.Error(2)
}

func (m *mockBookingService) ListOverlapping(ctx context.Context, tenantID, variationID string, start, end time.Time) ([]domain.Booking, error) {
	args := m.Called(ctx, tenantID, variationID, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func withTenant(r *http.Request, tenantID string) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), contextKeyTenantID, tenantID))
}

func TestBookingHandlerCreate(t *testing.T) {
	t.Run("creates a booking from a valid payload", func(t *testing.T) {
		svc := new(mockBookingService)
		svc.On("CreateBooking", mock.Anything, mock.MatchedBy(func(req *service.BookingRequest) bool {
			return req.TenantID == "ten-1" && req.VariationID == "var-1"
		})).Return(&domain.Booking{ID: "bk-1", Status: domain.BookingStatusConfirmed}, nil)

		h := NewBookingHandler(svc)
		body := `{"variation_id":"var-1","customer_name":"Pat","customer_email":"pat@example.com",
			"start_date":"2026-09-10","end_date":"2026-09-12"}`
		req := withTenant(httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body)), "ten-1")
		rec := httptest.NewRecorder()

		h.Create(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), "bk-1")
		svc.AssertExpectations(t)
	})

	t.Run("malformed body is a bad request", func(t *testing.T) {
		h := NewBookingHandler(new(mockBookingService))
		req := withTenant(httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader("{")), "ten-1")
		rec := httptest.NewRecorder()

		h.Create(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("invalid date is a bad request", func(t *testing.T) {
		h := NewBookingHandler(new(mockBookingService))
		body := `{"variation_id":"var-1","customer_email":"pat@example.com","start_date":"tomorrow","end_date":"2026-09-12"}`
		req := withTenant(httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body)), "ten-1")
		rec := httptest.NewRecorder()

		h.Create(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("no availability maps to conflict", func(t *testing.T) {
		svc := new(mockBookingService)
		svc.On("CreateBooking", mock.Anything, mock.Anything).Return(nil, domain.ErrNoAvailability)

		h := NewBookingHandler(svc)
		body := `{"variation_id":"var-1","customer_email":"pat@example.com","start_date":"2026-09-10","end_date":"2026-09-12"}`
		req := withTenant(httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body)), "ten-1")
		rec := httptest.NewRecorder()

		h.Create(rec, req)
		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestBookingHandlerCancel(t *testing.T) {
	svc := new(mockBookingService)
	svc.On("CancelBooking", mock.Anything, "ten-1", "bk-1").
		Return(&domain.Booking{ID: "bk-1", Status: domain.BookingStatusCancelled}, nil)

	h := NewBookingHandler(svc)
	req := withTenant(httptest.NewRequest(http.MethodDelete, "/api/v1/bookings/bk-1", nil), "ten-1")
	req = mux.SetURLVars(req, map[string]string{"id": "bk-1"})
	rec := httptest.NewRecorder()

	h.Cancel(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "cancelled")
	svc.AssertExpectations(t)
}

func TestParseDate(t *testing.T) {
	t.Run("bare date", func(t *testing.T) {
		got, err := parseDate("2026-09-10")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, time.September, 10, 0, 0, 0, 0, time.UTC), got)
	})

	t.Run("rfc3339", func(t *testing.T) {
		_, err := parseDate("2026-09-10T14:00:00Z")
		assert.NoError(t, err)
	})

	t.Run("empty is invalid", func(t *testing.T) {
		_, err := parseDate("")
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}
