package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"partyrent-backend/internal/domain"
	"partyrent-backend/internal/service"
)

type VariationHandler struct {
	variations   service.VariationService
	availability service.AvailabilityService
	bookings     service.BookingService
}

func NewVariationHandler(
	variations service.VariationService,
	availability service.AvailabilityService,
	bookings service.BookingService,
) *VariationHandler {
	return &VariationHandler{
		variations:   variations,
		availability: availability,
		bookings:     bookings,
	}
}

type variationPayload struct {
	RentalItemID    string                  `json:"rental_item_id"`
	Name            string                  `json:"name"`
	SKU             string                  `json:"sku"`
	Attributes      []domain.AttributeValue `json:"attributes"`
	PricingPolicy   domain.PricingPolicy    `json:"pricing_policy"`
	AdjustmentCents int32                   `json:"adjustment_cents"`
	OverridePrice   *domain.PriceOverride   `json:"override_price"`
	Quantity        int32                   `json:"quantity"`
	TrackInventory  bool                    `json:"track_inventory"`
	Status          domain.VariationStatus  `json:"status"`
	Images          []domain.Image          `json:"images"`
}

func (p *variationPayload) toDomain(tenantID, id string) *domain.Variation {
	return &domain.Variation{
		ID:              id,
		TenantID:        tenantID,
		RentalItem:      domain.RefID[domain.RentalItem](p.RentalItemID),
		Name:            p.Name,
		SKU:             p.SKU,
		Attributes:      p.Attributes,
		PricingPolicy:   p.PricingPolicy,
		AdjustmentCents: p.AdjustmentCents,
		OverridePrice:   p.OverridePrice,
		Quantity:        p.Quantity,
		TrackInventory:  p.TrackInventory,
		Status:          p.Status,
		Images:          p.Images,
	}
}

func (h *VariationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var payload variationPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, fmt.Errorf("%w: malformed request body", domain.ErrInvalidInput))
		return
	}

	v := payload.toDomain(TenantID(r.Context()), "")
	if err := h.variations.CreateVariation(r.Context(), v); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, v)
}

func (h *VariationHandler) Update(w http.ResponseWriter, r *http.Request) {
	var payload variationPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, fmt.Errorf("%w: malformed request body", domain.ErrInvalidInput))
		return
	}

	v := payload.toDomain(TenantID(r.Context()), mux.Vars(r)["id"])
	if err := h.variations.UpdateVariation(r.Context(), v); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, v)
}

func (h *VariationHandler) Get(w http.ResponseWriter, r *http.Request) {
	v, err := h.variations.GetVariation(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	if v.TenantID != TenantID(r.Context()) {
		writeError(w, fmt.Errorf("variation %s: %w", v.ID, domain.ErrNotFound))
		return
	}

	images, err := h.variations.Images(r.Context(), v)
	if err == nil {
		v.Images = images
	}
	writeJSON(w, http.StatusOK, v)
}

func (h *VariationHandler) ListByItem(w http.ResponseWriter, r *http.Request) {
	onlyActive := r.URL.Query().Get("active") != "false"
	variations, err := h.variations.ListByItem(r.Context(), TenantID(r.Context()), mux.Vars(r)["id"], onlyActive)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"variations": variations})
}

// Availability answers the widget's "is this free" query.
func (h *VariationHandler) Availability(w http.ResponseWriter, r *http.Request) {
	start, end, err := parseWindow(r)
	if err != nil {
		writeError(w, err)
		return
	}

	avail, err := h.availability.CheckAvailability(r.Context(), TenantID(r.Context()), mux.Vars(r)["id"], start, end)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, avail)
}

// Bookings lists the bookings blocking a window on this variation, for the
// staff calendar.
func (h *VariationHandler) Bookings(w http.ResponseWriter, r *http.Request) {
	start, end, err := parseWindow(r)
	if err != nil {
		writeError(w, err)
		return
	}

	bookings, err := h.bookings.ListOverlapping(r.Context(), TenantID(r.Context()), mux.Vars(r)["id"], start, end)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"bookings": bookings})
}

// Quote returns effective pricing, estimated cost and availability for a
// window, without creating anything.
func (h *VariationHandler) Quote(w http.ResponseWriter, r *http.Request) {
	start, end, err := parseWindow(r)
	if err != nil {
		writeError(w, err)
		return
	}

	quote, err := h.bookings.Quote(r.Context(), TenantID(r.Context()), mux.Vars(r)["id"], start, end)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, quote)
}

func parseWindow(r *http.Request) (time.Time, time.Time, error) {
	start, err := parseDate(r.URL.Query().Get("start"))
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := parseDate(r.URL.Query().Get("end"))
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end, nil
}
