// Package get_user_bookings exposes GET /users/me/bookings.
package get_user_bookings

import (
	"net/http"

	"github.com/salonplein/booking-platform/internal/api/handlers"
)

// Handler serves the caller's booking list.
type Handler struct {
	service BookingsService
	logger  Logger
}

// NewHandler creates the handler.
func NewHandler(service BookingsService, logger Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Handle lists the authenticated user's bookings, soonest start first.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, err := handlers.UserIDFromContext(r)
	if err != nil {
		h.logger.Error("get user bookings: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	bookings, err := h.service.ListMine(r.Context(), userID)
	if err != nil {
		h.logger.Error("get user bookings: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomain(bookings))
}
