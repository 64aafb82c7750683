// Package manage_hours exposes PUT and GET /staff/{staffId}/hours.
package manage_hours

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/salonplein/booking-platform/internal/api/handlers"
	"github.com/salonplein/booking-platform/internal/service/schedule"
)

const (
	msgInvalidBody    = "ongeldige aanvraag"
	msgInvalidStaffID = "ongeldige medewerker-id"
	msgStaffNotFound  = "medewerker niet gevonden"
	msgAccessDenied   = "geen toegang tot deze medewerker"
	msgInvalidInput   = "ongeldige openingstijden"
)

// Handler serves the opening hours endpoints.
type Handler struct {
	service ScheduleService
	logger  Logger
}

// NewHandler creates the handler.
func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// HandleSet replaces the opening hours of one weekday.
func (h *Handler) HandleSet(w http.ResponseWriter, r *http.Request) {
	ownerID, err := handlers.UserIDFromContext(r)
	if err != nil {
		h.logger.Error("set opening hours: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	staffID, err := uuid.Parse(mux.Vars(r)["staffId"])
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidStaffID)
		return
	}

	var req SetRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	hours, err := h.service.SetOpeningHours(r.Context(), ownerID, staffID, req.Weekday, req.ToServiceIntervals())
	if err != nil {
		h.respondError(w, "set opening hours", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomain(hours))
}

// HandleList lists every opening interval of the staff member.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ownerID, err := handlers.UserIDFromContext(r)
	if err != nil {
		h.logger.Error("list opening hours: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	staffID, err := uuid.Parse(mux.Vars(r)["staffId"])
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidStaffID)
		return
	}

	hours, err := h.service.ListOpeningHours(r.Context(), ownerID, staffID)
	if err != nil {
		h.respondError(w, "list opening hours", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomain(hours))
}

func (h *Handler) respondError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, schedule.ErrStaffNotFound):
		handlers.RespondNotFound(w, msgStaffNotFound)
	case errors.Is(err, schedule.ErrAccessDenied):
		handlers.RespondForbidden(w, msgAccessDenied)
	case errors.Is(err, schedule.ErrInvalidInput):
		handlers.RespondBadRequest(w, msgInvalidInput)
	default:
		h.logger.Error("%s: %v", op, err)
		handlers.RespondInternalError(w)
	}
}
