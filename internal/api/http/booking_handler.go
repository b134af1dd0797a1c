package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"partyrent-backend/internal/domain"
	"partyrent-backend/internal/service"
)

type BookingHandler struct {
	bookings service.BookingService
}

func NewBookingHandler(bookings service.BookingService) *BookingHandler {
	return &BookingHandler{bookings: bookings}
}

type createBookingRequest struct {
	VariationID   string `json:"variation_id"`
	CustomerName  string `json:"customer_name"`
	CustomerEmail string `json:"customer_email"`
	StartDate     string `json:"start_date"`
	EndDate       string `json:"end_date"`
}

func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, fmt.Errorf("%w: malformed request body", domain.ErrInvalidInput))
		return
	}

	start, err := parseDate(req.StartDate)
	if err != nil {
		writeError(w, err)
		return
	}
	end, err := parseDate(req.EndDate)
	if err != nil {
		writeError(w, err)
		return
	}

	booking, err := h.bookings.CreateBooking(r.Context(), &service.BookingRequest{
		TenantID:      TenantID(r.Context()),
		VariationID:   req.VariationID,
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		StartDate:     start,
		EndDate:       end,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, booking)
}

func (h *BookingHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	bookingID := mux.Vars(r)["id"]
	booking, err := h.bookings.CancelBooking(r.Context(), TenantID(r.Context()), bookingID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, booking)
}

func (h *BookingHandler) List(w http.ResponseWriter, r *http.Request) {
	page := queryInt32(r, "page", 1)
	pageSize := queryInt32(r, "page_size", 20)
	status := r.URL.Query().Get("status")

	bookings, total, err := h.bookings.ListBookings(r.Context(), TenantID(r.Context()), status, page, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"bookings": bookings,
		"total":    total,
	})
}

// parseDate accepts either a bare date (2006-01-02) or RFC 3339.
func parseDate(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, fmt.Errorf("%w: missing date", domain.ErrInvalidInput)
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("%w: invalid date %q, expected yyyy-mm-dd or RFC 3339", domain.ErrInvalidInput, raw)
}

func queryInt32(r *http.Request, key string, fallback int32) int32 {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback
	}
	n, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return fallback
	}
	return int32(n)
}
