// Package manage_staff exposes the staff roster endpoints of the owner
// dashboard: POST and GET /salons/{salonId}/staff, PATCH /staff/{staffId}.
package manage_staff

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/salonplein/booking-platform/internal/api/handlers"
	"github.com/salonplein/booking-platform/internal/service/staff"
)

const (
	msgInvalidBody    = "ongeldige aanvraag"
	msgInvalidSalonID = "ongeldige salon-id"
	msgInvalidStaffID = "ongeldige medewerker-id"
	msgSalonNotFound  = "salon niet gevonden"
	msgStaffNotFound  = "medewerker niet gevonden"
	msgAccessDenied   = "geen toegang tot deze salon"
	msgInvalidInput   = "ongeldige gegevens"
)

// Handler serves the staff roster endpoints.
type Handler struct {
	service StaffService
	logger  Logger
}

// NewHandler creates the handler.
func NewHandler(service StaffService, logger Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// HandleCreate adds a staff member to the caller's salon.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ownerID, err := handlers.UserIDFromContext(r)
	if err != nil {
		h.logger.Error("create staff: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	salonID, err := uuid.Parse(mux.Vars(r)["salonId"])
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidSalonID)
		return
	}

	var req CreateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	member, err := h.service.Create(r.Context(), ownerID, salonID, req.Name)
	if err != nil {
		h.respondError(w, "create staff", err)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, FromDomain(member))
}

// HandleList lists the staff roster of the caller's salon.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ownerID, err := handlers.UserIDFromContext(r)
	if err != nil {
		h.logger.Error("list staff: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	salonID, err := uuid.Parse(mux.Vars(r)["salonId"])
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidSalonID)
		return
	}

	members, err := h.service.ListForSalon(r.Context(), ownerID, salonID)
	if err != nil {
		h.respondError(w, "list staff", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomainList(members))
}

// HandleUpdate renames or (de)activates a staff member.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ownerID, err := handlers.UserIDFromContext(r)
	if err != nil {
		h.logger.Error("update staff: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	staffID, err := uuid.Parse(mux.Vars(r)["staffId"])
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidStaffID)
		return
	}

	var req UpdateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	member, err := h.service.Update(r.Context(), ownerID, staffID, req.Name, req.IsActive)
	if err != nil {
		h.respondError(w, "update staff", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomain(member))
}

func (h *Handler) respondError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, staff.ErrSalonNotFound):
		handlers.RespondNotFound(w, msgSalonNotFound)
	case errors.Is(err, staff.ErrStaffNotFound):
		handlers.RespondNotFound(w, msgStaffNotFound)
	case errors.Is(err, staff.ErrAccessDenied):
		handlers.RespondForbidden(w, msgAccessDenied)
	case errors.Is(err, staff.ErrInvalidInput):
		handlers.RespondBadRequest(w, msgInvalidInput)
	default:
		h.logger.Error("%s: %v", op, err)
		handlers.RespondInternalError(w)
	}
}
