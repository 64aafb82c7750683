// Package get_salon_bookings exposes GET /salons/{salonId}/bookings.
package get_salon_bookings

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/salonplein/booking-platform/internal/api/handlers"
	"github.com/salonplein/booking-platform/internal/service/bookings"
)

const (
	msgInvalidSalonID = "ongeldige salon-id"
	msgSalonNotFound  = "salon niet gevonden"
	msgAccessDenied   = "geen toegang tot deze salon"
)

// Handler serves the salon agenda for its owner.
type Handler struct {
	service BookingsService
	logger  Logger
}

// NewHandler creates the handler.
func NewHandler(service BookingsService, logger Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Handle lists all bookings of the caller's salon.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	ownerID, err := handlers.UserIDFromContext(r)
	if err != nil {
		h.logger.Error("get salon bookings: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	salonID, err := uuid.Parse(mux.Vars(r)["salonId"])
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidSalonID)
		return
	}

	list, err := h.service.ListForSalon(r.Context(), ownerID, salonID)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrSalonNotFound):
			handlers.RespondNotFound(w, msgSalonNotFound)
		case errors.Is(err, bookings.ErrAccessDenied):
			handlers.RespondForbidden(w, msgAccessDenied)
		default:
			h.logger.Error("get salon bookings: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomain(list))
}
