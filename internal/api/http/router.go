package http

import (
	"net/http"

	"github.com/gorilla/mux"
)

// NewRouter builds the versioned API surface. Every route below /api/v1 is
// tenant-scoped through the auth middleware.
func NewRouter(
	bookingHandler *BookingHandler,
	variationHandler *VariationHandler,
	itemHandler *ItemHandler,
	auth *AuthMiddleware,
) *mux.Router {
	r := mux.NewRouter()
	r.Use(RequestIDMiddleware)

	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(auth.Handler)

	api.HandleFunc("/bookings", bookingHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/bookings", bookingHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{id}", bookingHandler.Cancel).Methods(http.MethodDelete)

	api.HandleFunc("/variations", variationHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/variations/{id}", variationHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/variations/{id}", variationHandler.Update).Methods(http.MethodPut)
	api.HandleFunc("/variations/{id}/availability", variationHandler.Availability).Methods(http.MethodGet)
	api.HandleFunc("/variations/{id}/quote", variationHandler.Quote).Methods(http.MethodGet)
	api.HandleFunc("/variations/{id}/bookings", variationHandler.Bookings).Methods(http.MethodGet)

	api.HandleFunc("/items", itemHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/items", itemHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/items/{id}", itemHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/items/{id}", itemHandler.Update).Methods(http.MethodPut)
	api.HandleFunc("/items/{id}/variations", variationHandler.ListByItem).Methods(http.MethodGet)

	return r
}
