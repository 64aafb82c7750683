// Package create_booking exposes POST /bookings.
package create_booking

import (
	"errors"
	"net/http"

	"github.com/salonplein/booking-platform/internal/api/handlers"
	createBooking "github.com/salonplein/booking-platform/internal/usecase/create_booking"
)

const (
	msgInvalidBody      = "ongeldige aanvraag"
	msgSalonNotFound    = "salon niet gevonden"
	msgServiceNotFound  = "behandeling niet gevonden"
	msgStaffNotFound    = "medewerker niet gevonden"
	msgStaffNotEligible = "deze medewerker biedt deze behandeling niet aan"
	msgSlotConflict     = "dit tijdslot is niet meer beschikbaar"
	msgInvalidDeal      = "deze aanbieding is niet geldig voor deze boeking"
	msgStartInPast      = "het gekozen tijdstip ligt in het verleden"
	msgInvalidService   = "behandeling heeft een ongeldige duur"
)

// Handler serves the booking creation endpoint.
type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

// NewHandler creates the booking handler.
func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{useCase: useCase, logger: logger}
}

// Handle books a slot for the authenticated user.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, err := handlers.UserIDFromContext(r)
	if err != nil {
		h.logger.Error("create booking: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	var req Request
	if err := handlers.DecodeJSON(r, &req); err != nil {
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	res, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(userID))
	if err != nil {
		h.respondError(w, err)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(res))
}

func (h *Handler) respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, createBooking.ErrSalonNotFound):
		handlers.RespondNotFound(w, msgSalonNotFound)
	case errors.Is(err, createBooking.ErrServiceNotFound):
		handlers.RespondNotFound(w, msgServiceNotFound)
	case errors.Is(err, createBooking.ErrStaffNotFound):
		handlers.RespondNotFound(w, msgStaffNotFound)
	case errors.Is(err, createBooking.ErrStaffNotEligible):
		handlers.RespondError(w, http.StatusUnprocessableEntity, msgStaffNotEligible)
	case errors.Is(err, createBooking.ErrSlotConflict):
		handlers.RespondError(w, http.StatusConflict, msgSlotConflict)
	case errors.Is(err, createBooking.ErrInvalidDeal):
		handlers.RespondError(w, http.StatusUnprocessableEntity, msgInvalidDeal)
	case errors.Is(err, createBooking.ErrStartInPast):
		handlers.RespondError(w, http.StatusUnprocessableEntity, msgStartInPast)
	case errors.Is(err, createBooking.ErrInvalidService):
		handlers.RespondError(w, http.StatusUnprocessableEntity, msgInvalidService)
	case errors.Is(err, createBooking.ErrInvalidInput):
		handlers.RespondBadRequest(w, msgInvalidBody)
	default:
		h.logger.Error("create booking: %v", err)
		handlers.RespondInternalError(w)
	}
}
