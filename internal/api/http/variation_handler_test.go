package http

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"partyrent-backend/internal/domain"
	"partyrent-backend/internal/service"
)

type mockAvailabilityService struct {
	mock.Mock
}

func (m *mockAvailabilityService) CheckAvailability(ctx context.Context, tenantID, variationID string, start, end time.Time) (*domain.Availability, error) {
	args := m.Called(ctx, tenantID, variationID, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Availability), args.Error(1)
}

func TestVariationHandlerQuote(t *testing.T) {
	t.Run("quotes with the caller's tenant", func(t *testing.T) {
		svc := new(mockBookingService)
		svc.On("Quote", mock.Anything, "ten-1", "var-1", mock.Anything, mock.Anything).
			Return(&service.BookingQuote{Availability: domain.Availability{Available: true}}, nil)

		h := NewVariationHandler(nil, nil, svc)
		req := withTenant(httptest.NewRequest(http.MethodGet,
			"/api/v1/variations/var-1/quote?start=2026-09-10&end=2026-09-12", nil), "ten-1")
		req = mux.SetURLVars(req, map[string]string{"id": "var-1"})
		rec := httptest.NewRecorder()

		h.Quote(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		svc.AssertExpectations(t)
	})

	t.Run("another tenant's variation is not found", func(t *testing.T) {
		svc := new(mockBookingService)
		svc.On("Quote", mock.Anything, "ten-1", "var-2", mock.Anything, mock.Anything).
			Return(nil, fmt.Errorf("variation var-2: %w", domain.ErrNotFound))

		h := NewVariationHandler(nil, nil, svc)
		req := withTenant(httptest.NewRequest(http.MethodGet,
			"/api/v1/variations/var-2/quote?start=2026-09-10&end=2026-09-12", nil), "ten-1")
		req = mux.SetURLVars(req, map[string]string{"id": "var-2"})
		rec := httptest.NewRecorder()

		h.Quote(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.NotContains(t, rec.Body.String(), "daily_cents")
		svc.AssertExpectations(t)
	})

	t.Run("missing window is a bad request", func(t *testing.T) {
		h := NewVariationHandler(nil, nil, new(mockBookingService))
		req := withTenant(httptest.NewRequest(http.MethodGet, "/api/v1/variations/var-1/quote", nil), "ten-1")
		req = mux.SetURLVars(req, map[string]string{"id": "var-1"})
		rec := httptest.NewRecorder()

		h.Quote(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestVariationHandlerAvailability(t *testing.T) {
	t.Run("another tenant's variation is not found", func(t *testing.T) {
		svc := new(mockAvailabilityService)
		svc.On("CheckAvailability", mock.Anything, "ten-1", "var-2", mock.Anything, mock.Anything).
			Return(nil, fmt.Errorf("variation var-2: %w", domain.ErrNotFound))

		h := NewVariationHandler(nil, svc, nil)
		req := withTenant(httptest.NewRequest(http.MethodGet,
			"/api/v1/variations/var-2/availability?start=2026-09-10&end=2026-09-12", nil), "ten-1")
		req = mux.SetURLVars(req, map[string]string{"id": "var-2"})
		rec := httptest.NewRecorder()

		h.Availability(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		svc.AssertExpectations(t)
	})
}
