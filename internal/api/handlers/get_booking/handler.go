// Package get_booking exposes GET /bookings/{bookingId}.
package get_booking

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/salonplein/booking-platform/internal/api/handlers"
	"github.com/salonplein/booking-platform/internal/service/bookings"
)

const (
	msgInvalidBookingID = "ongeldige boeking-id"
	msgBookingNotFound  = "boeking niet gevonden"
)

// Handler serves a single booking of the caller.
type Handler struct {
	service BookingsService
	logger  Logger
}

// NewHandler creates the handler.
func NewHandler(service BookingsService, logger Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Handle fetches one booking. Other users' bookings read as not found.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, err := handlers.UserIDFromContext(r)
	if err != nil {
		h.logger.Error("get booking: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	bookingID, err := uuid.Parse(mux.Vars(r)["bookingId"])
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	booking, err := h.service.GetMine(r.Context(), userID, bookingID)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound),
			errors.Is(err, bookings.ErrAccessDenied):
			handlers.RespondNotFound(w, msgBookingNotFound)
		default:
			h.logger.Error("get booking: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomain(booking))
}
