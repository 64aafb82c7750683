// Package search_salons exposes GET /salons.
package search_salons

import (
	"net/http"

	"github.com/salonplein/booking-platform/internal/api/handlers"
)

// Handler serves the public salon search.
type Handler struct {
	service SalonsService
	logger  Logger
}

// NewHandler creates the handler.
func NewHandler(service SalonsService, logger Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Handle lists the active salons, optionally filtered by city.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var city *string
	if raw := r.URL.Query().Get("city"); raw != "" {
		city = &raw
	}

	salons, err := h.service.Search(r.Context(), city)
	if err != nil {
		h.logger.Error("search salons: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomain(salons))
}
