// Package manage_services exposes the catalog endpoints of the owner
// dashboard: POST and GET /salons/{salonId}/services, PATCH
// /services/{serviceId}, and the staff eligibility links under
// /services/{serviceId}/staff.
package manage_services

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/salonplein/booking-platform/internal/api/handlers"
	"github.com/salonplein/booking-platform/internal/service/catalog"
)

const (
	msgInvalidBody      = "ongeldige aanvraag"
	msgInvalidSalonID   = "ongeldige salon-id"
	msgInvalidServiceID = "ongeldige behandeling-id"
	msgInvalidStaffID   = "ongeldige medewerker-id"
	msgSalonNotFound    = "salon niet gevonden"
	msgServiceNotFound  = "behandeling niet gevonden"
	msgStaffNotFound    = "medewerker niet gevonden"
	msgStaffMismatch    = "medewerker hoort bij een andere salon"
	msgAccessDenied     = "geen toegang tot deze salon"
	msgInvalidInput     = "ongeldige gegevens"
)

// Handler serves the catalog endpoints.
type Handler struct {
	service CatalogService
	logger  Logger
}

// NewHandler creates the handler.
func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// HandleCreate adds a service to the caller's salon.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ownerID, err := handlers.UserIDFromContext(r)
	if err != nil {
		h.logger.Error("create service: %v", err)
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

	created, err := h.service.Create(r.Context(), ownerID, req.ToServiceRequest(salonID))
	if err != nil {
		h.respondError(w, "create service", err)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, FromDomain(created))
}

// HandleList lists the full catalog of the caller's salon, inactive
// services included.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ownerID, err := handlers.UserIDFromContext(r)
	if err != nil {
		h.logger.Error("list services: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	salonID, err := uuid.Parse(mux.Vars(r)["salonId"])
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidSalonID)
		return
	}

	services, err := h.service.ListForSalon(r.Context(), ownerID, salonID)
	if err != nil {
		h.respondError(w, "list services", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomainList(services))
}

// HandleUpdate changes a service. Existing bookings keep their footprint.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ownerID, err := handlers.UserIDFromContext(r)
	if err != nil {
		h.logger.Error("update service: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	serviceID, err := uuid.Parse(mux.Vars(r)["serviceId"])
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	var req UpdateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	updated, err := h.service.Update(r.Context(), ownerID, serviceID, req.ToServiceRequest())
	if err != nil {
		h.respondError(w, "update service", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomain(updated))
}

// HandleLinkStaff marks a staff member as performing the service.
func (h *Handler) HandleLinkStaff(w http.ResponseWriter, r *http.Request) {
	ownerID, serviceID, staffID, ok := h.linkParams(w, r)
	if !ok {
		return
	}

	if err := h.service.LinkStaff(r.Context(), ownerID, serviceID, staffID); err != nil {
		h.respondError(w, "link staff", err)
		return
	}

	handlers.RespondJSON(w, http.StatusNoContent, nil)
}

// HandleUnlinkStaff removes the eligibility link.
func (h *Handler) HandleUnlinkStaff(w http.ResponseWriter, r *http.Request) {
	ownerID, serviceID, staffID, ok := h.linkParams(w, r)
	if !ok {
		return
	}

	if err := h.service.UnlinkStaff(r.Context(), ownerID, serviceID, staffID); err != nil {
		h.respondError(w, "unlink staff", err)
		return
	}

	handlers.RespondJSON(w, http.StatusNoContent, nil)
}

// HandleListStaff lists the staff ids eligible for the service.
func (h *Handler) HandleListStaff(w http.ResponseWriter, r *http.Request) {
	ownerID, err := handlers.UserIDFromContext(r)
	if err != nil {
		h.logger.Error("list service staff: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	serviceID, err := uuid.Parse(mux.Vars(r)["serviceId"])
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	ids, err := h.service.ListEligibleStaffIDs(r.Context(), ownerID, serviceID)
	if err != nil {
		h.respondError(w, "list service staff", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromStaffIDs(ids))
}

func (h *Handler) linkParams(w http.ResponseWriter, r *http.Request) (ownerID, serviceID, staffID uuid.UUID, ok bool) {
	ownerID, err := handlers.UserIDFromContext(r)
	if err != nil {
		h.logger.Error("service staff link: %v", err)
		handlers.RespondInternalError(w)
		return uuid.Nil, uuid.Nil, uuid.Nil, false
	}

	vars := mux.Vars(r)

	serviceID, err = uuid.Parse(vars["serviceId"])
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return uuid.Nil, uuid.Nil, uuid.Nil, false
	}

	staffID, err = uuid.Parse(vars["staffId"])
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidStaffID)
		return uuid.Nil, uuid.Nil, uuid.Nil, false
	}

	return ownerID, serviceID, staffID, true
}

func (h *Handler) respondError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, catalog.ErrSalonNotFound):
		handlers.RespondNotFound(w, msgSalonNotFound)
	case errors.Is(err, catalog.ErrServiceNotFound):
		handlers.RespondNotFound(w, msgServiceNotFound)
	case errors.Is(err, catalog.ErrStaffNotFound):
		handlers.RespondNotFound(w, msgStaffNotFound)
	case errors.Is(err, catalog.ErrStaffMismatch):
		handlers.RespondError(w, http.StatusUnprocessableEntity, msgStaffMismatch)
	case errors.Is(err, catalog.ErrAccessDenied):
		handlers.RespondForbidden(w, msgAccessDenied)
	case errors.Is(err, catalog.ErrInvalidInput):
		handlers.RespondBadRequest(w, msgInvalidInput)
	default:
		h.logger.Error("%s: %v", op, err)
		handlers.RespondInternalError(w)
	}
}
