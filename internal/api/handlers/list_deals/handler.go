// Package list_deals exposes GET /deals.
package list_deals

import (
	"net/http"

	"github.com/salonplein/booking-platform/internal/api/handlers"
)

// Handler serves the public deal listing.
type Handler struct {
	service DealsService
	logger  Logger
}

// NewHandler creates the handler.
func NewHandler(service DealsService, logger Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Handle lists every active, unexpired deal whose slot is still upcoming.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	deals, err := h.service.ListPublic(r.Context())
	if err != nil {
		h.logger.Error("list deals: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomain(deals))
}
