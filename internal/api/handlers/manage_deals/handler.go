// Package manage_deals exposes the deal endpoints of the owner dashboard:
// POST and GET /salons/{salonId}/deals, PATCH /deals/{dealId}/deactivate and
// DELETE /deals/{dealId}.
package manage_deals

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/salonplein/booking-platform/internal/api/handlers"
	"github.com/salonplein/booking-platform/internal/service/deals"
)

const (
	msgInvalidBody      = "ongeldige aanvraag"
	msgInvalidSalonID   = "ongeldige salon-id"
	msgInvalidDealID    = "ongeldige aanbieding-id"
	msgSalonNotFound    = "salon niet gevonden"
	msgDealNotFound     = "aanbieding niet gevonden"
	msgServiceNotFound  = "behandeling niet gevonden"
	msgStaffNotFound    = "medewerker niet gevonden"
	msgStaffNotEligible = "deze medewerker biedt deze behandeling niet aan"
	msgAccessDenied     = "geen toegang tot deze salon"
	msgInvalidInput     = "ongeldige aanbieding"
)

// Handler serves the deal management endpoints.
type Handler struct {
	service DealsService
	logger  Logger
}

// NewHandler creates the handler.
func NewHandler(service DealsService, logger Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// HandleCreate publishes a deal for the caller's salon.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ownerID, err := handlers.UserIDFromContext(r)
	if err != nil {
		h.logger.Error("create deal: %v", err)
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

	deal, err := h.service.Create(r.Context(), ownerID, req.ToServiceRequest(salonID))
	if err != nil {
		h.respondError(w, "create deal", err)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, FromDomain(deal))
}

// HandleList lists every deal of the caller's salon, redeemed ones included.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ownerID, err := handlers.UserIDFromContext(r)
	if err != nil {
		h.logger.Error("list salon deals: %v", err)
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
		h.respondError(w, "list salon deals", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomainList(list))
}

// HandleDeactivate withdraws a deal without deleting it.
func (h *Handler) HandleDeactivate(w http.ResponseWriter, r *http.Request) {
	ownerID, dealID, ok := h.dealParams(w, r)
	if !ok {
		return
	}

	if err := h.service.Deactivate(r.Context(), ownerID, dealID); err != nil {
		h.respondError(w, "deactivate deal", err)
		return
	}

	handlers.RespondJSON(w, http.StatusNoContent, nil)
}

// HandleDelete removes a deal.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ownerID, dealID, ok := h.dealParams(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), ownerID, dealID); err != nil {
		h.respondError(w, "delete deal", err)
		return
	}

	handlers.RespondJSON(w, http.StatusNoContent, nil)
}

func (h *Handler) dealParams(w http.ResponseWriter, r *http.Request) (ownerID, dealID uuid.UUID, ok bool) {
	ownerID, err := handlers.UserIDFromContext(r)
	if err != nil {
		h.logger.Error("deal params: %v", err)
		handlers.RespondInternalError(w)
		return uuid.Nil, uuid.Nil, false
	}

	dealID, err = uuid.Parse(mux.Vars(r)["dealId"])
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidDealID)
		return uuid.Nil, uuid.Nil, false
	}

	return ownerID, dealID, true
}

func (h *Handler) respondError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, deals.ErrSalonNotFound):
		handlers.RespondNotFound(w, msgSalonNotFound)
	case errors.Is(err, deals.ErrDealNotFound):
		handlers.RespondNotFound(w, msgDealNotFound)
	case errors.Is(err, deals.ErrServiceNotFound):
		handlers.RespondNotFound(w, msgServiceNotFound)
	case errors.Is(err, deals.ErrStaffNotFound):
		handlers.RespondNotFound(w, msgStaffNotFound)
	case errors.Is(err, deals.ErrStaffNotEligible):
		handlers.RespondError(w, http.StatusUnprocessableEntity, msgStaffNotEligible)
	case errors.Is(err, deals.ErrAccessDenied):
		handlers.RespondForbidden(w, msgAccessDenied)
	case errors.Is(err, deals.ErrInvalidInput):
		handlers.RespondBadRequest(w, msgInvalidInput)
	default:
		h.logger.Error("%s: %v", op, err)
		handlers.RespondInternalError(w)
	}
}
