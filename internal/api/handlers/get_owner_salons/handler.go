// Package get_owner_salons exposes GET /users/me/salons.
package get_owner_salons

import (
	"net/http"

	"github.com/salonplein/booking-platform/internal/api/handlers"
)

// Handler serves the caller's salon list.
type Handler struct {
	service SalonsService
	logger  Logger
}

// NewHandler creates the handler.
func NewHandler(service SalonsService, logger Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Handle lists every salon owned by the authenticated user, any status.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	ownerID, err := handlers.UserIDFromContext(r)
	if err != nil {
		h.logger.Error("get owner salons: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	salons, err := h.service.ListByOwner(r.Context(), ownerID)
	if err != nil {
		h.logger.Error("get owner salons: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomain(salons))
}
