// Package cancel_booking exposes PATCH /bookings/{bookingId}/cancel.
package cancel_booking

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
	msgAlreadyCancelled = "boeking is al geannuleerd"
	msgDeadlinePassed   = "de annuleringstermijn is verstreken"
)

// Handler serves booking cancellation.
type Handler struct {
	service BookingsService
	logger  Logger
}

// NewHandler creates the handler.
func NewHandler(service BookingsService, logger Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Handle cancels the booking when the notice period still allows it.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, err := handlers.UserIDFromContext(r)
	if err != nil {
		h.logger.Error("cancel booking: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	bookingID, err := uuid.Parse(mux.Vars(r)["bookingId"])
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	booking, err := h.service.Cancel(r.Context(), userID, bookingID)
	if err != nil {
		h.respondError(w, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomain(booking))
}

func (h *Handler) respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, bookings.ErrBookingNotFound),
		errors.Is(err, bookings.ErrAccessDenied):
		handlers.RespondNotFound(w, msgBookingNotFound)
	case errors.Is(err, bookings.ErrAlreadyCancelled):
		handlers.RespondError(w, http.StatusConflict, msgAlreadyCancelled)
	case errors.Is(err, bookings.ErrCancelDeadlinePassed):
		handlers.RespondError(w, http.StatusUnprocessableEntity, msgDeadlinePassed)
	default:
		h.logger.Error("cancel booking: %v", err)
		handlers.RespondInternalError(w)
	}
}
