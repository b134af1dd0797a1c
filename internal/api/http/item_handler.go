package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"partyrent-backend/internal/domain"
	"partyrent-backend/internal/service"
)

type ItemHandler struct {
	items service.ItemService
}

func NewItemHandler(items service.ItemService) *ItemHandler {
	return &ItemHandler{items: items}
}

type itemPayload struct {
	Name            string                      `json:"name"`
	Description     string                      `json:"description"`
	Pricing         *domain.Pricing             `json:"pricing"`
	HasVariations   bool                        `json:"has_variations"`
	AttributeSchema []domain.VariationAttribute `json:"attribute_schema"`
	Images          []domain.Image              `json:"images"`
}

func (p *itemPayload) toDomain(tenantID, id string) *domain.RentalItem {
	return &domain.RentalItem{
		ID:              id,
		TenantID:        tenantID,
		Name:            p.Name,
		Description:     p.Description,
		Pricing:         p.Pricing,
		HasVariations:   p.HasVariations,
		AttributeSchema: p.AttributeSchema,
		Images:          p.Images,
	}
}

func (h *ItemHandler) Create(w http.ResponseWriter, r *http.Request) {
	var payload itemPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, fmt.Errorf("%w: malformed request body", domain.ErrInvalidInput))
		return
	}

	item := payload.toDomain(TenantID(r.Context()), "")
	if err := h.items.CreateItem(r.Context(), item); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

func (h *ItemHandler) Update(w http.ResponseWriter, r *http.Request) {
	var payload itemPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, fmt.Errorf("%w: malformed request body", domain.ErrInvalidInput))
		return
	}

	item := payload.toDomain(TenantID(r.Context()), mux.Vars(r)["id"])
	if err := h.items.UpdateItem(r.Context(), item); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *ItemHandler) Get(w http.ResponseWriter, r *http.Request) {
	item, err := h.items.GetItem(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	if item.TenantID != TenantID(r.Context()) {
		writeError(w, fmt.Errorf("rental item %s: %w", item.ID, domain.ErrNotFound))
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *ItemHandler) List(w http.ResponseWriter, r *http.Request) {
	page := queryInt32(r, "page", 1)
	pageSize := queryInt32(r, "page_size", 20)

	items, total, err := h.items.ListItems(r.Context(), TenantID(r.Context()), page, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"items": items,
		"total": total,
	})
}
