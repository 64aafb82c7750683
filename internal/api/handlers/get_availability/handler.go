// Package get_availability exposes GET /salons/{salonId}/availability.
package get_availability

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/salonplein/booking-platform/internal/api/handlers"
	getAvailability "github.com/salonplein/booking-platform/internal/usecase/get_availability"
)

const (
	msgInvalidSalonID   = "ongeldige salon-id"
	msgInvalidServiceID = "ongeldige behandeling-id"
	msgInvalidStaffID   = "ongeldige medewerker-id"
	msgInvalidDate      = "ongeldige datum, gebruik JJJJ-MM-DD"
	msgSalonNotFound    = "salon niet gevonden"
	msgServiceNotFound  = "behandeling niet gevonden"
	msgInvalidService   = "behandeling heeft een ongeldige duur"
	msgInvalidInput     = "ongeldige aanvraag"
)

// Handler serves the availability endpoint.
type Handler struct {
	useCase AvailabilityUseCase
	logger  Logger
}

// NewHandler creates the availability handler.
func NewHandler(useCase AvailabilityUseCase, logger Logger) *Handler {
	return &Handler{useCase: useCase, logger: logger}
}

// Handle computes the bookable slots of one service on one calendar date.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	salonID, err := uuid.Parse(mux.Vars(r)["salonId"])
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidSalonID)
		return
	}

	query := r.URL.Query()

	serviceID, err := uuid.Parse(query.Get("serviceId"))
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	date, err := time.Parse("2006-01-02", query.Get("date"))
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	req := &getAvailability.Request{
		SalonID:   salonID,
		ServiceID: serviceID,
		Date:      date,
	}

	if raw := query.Get("staffId"); raw != "" {
		staffID, err := uuid.Parse(raw)
		if err != nil {
			handlers.RespondBadRequest(w, msgInvalidStaffID)
			return
		}
		req.StaffID = &staffID
	}

	res, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		h.respondError(w, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(res))
}

func (h *Handler) respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, getAvailability.ErrSalonNotFound):
		handlers.RespondNotFound(w, msgSalonNotFound)
	case errors.Is(err, getAvailability.ErrServiceNotFound):
		handlers.RespondNotFound(w, msgServiceNotFound)
	case errors.Is(err, getAvailability.ErrInvalidService):
		handlers.RespondError(w, http.StatusUnprocessableEntity, msgInvalidService)
	case errors.Is(err, getAvailability.ErrInvalidInput):
		handlers.RespondBadRequest(w, msgInvalidInput)
	default:
		h.logger.Error("get availability: %v", err)
		handlers.RespondInternalError(w)
	}
}
