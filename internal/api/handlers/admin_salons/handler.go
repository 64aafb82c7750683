// Package admin_salons exposes the moderation endpoints: GET /admin/salons,
// PATCH and DELETE /admin/salons/{salonId}.
package admin_salons

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/salonplein/booking-platform/internal/api/handlers"
	"github.com/salonplein/booking-platform/internal/domain"
	"github.com/salonplein/booking-platform/internal/service/salons"
)

const (
	msgInvalidBody    = "ongeldige aanvraag"
	msgInvalidSalonID = "ongeldige salon-id"
	msgInvalidStatus  = "ongeldige status"
	msgSalonNotFound  = "salon niet gevonden"
	msgAccessDenied   = "alleen voor beheerders"
)

// Handler serves the salon moderation endpoints.
type Handler struct {
	service SalonsService
	logger  Logger
}

// NewHandler creates the handler.
func NewHandler(service SalonsService, logger Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// HandleList lists every salon regardless of status.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	adminID, err := handlers.UserIDFromContext(r)
	if err != nil {
		h.logger.Error("admin list salons: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	list, err := h.service.ListAll(r.Context(), adminID)
	if err != nil {
		h.respondError(w, "admin list salons", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomainList(list))
}

// HandleModerate approves or rejects a salon.
func (h *Handler) HandleModerate(w http.ResponseWriter, r *http.Request) {
	adminID, err := handlers.UserIDFromContext(r)
	if err != nil {
		h.logger.Error("moderate salon: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	salonID, err := uuid.Parse(mux.Vars(r)["salonId"])
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidSalonID)
		return
	}

	var req ModerateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	salon, err := h.service.Moderate(r.Context(), adminID, salonID, domain.SalonStatus(req.Status))
	if err != nil {
		h.respondError(w, "moderate salon", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomain(salon))
}

// HandleDelete removes a salon from the platform.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	adminID, err := handlers.UserIDFromContext(r)
	if err != nil {
		h.logger.Error("delete salon: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	salonID, err := uuid.Parse(mux.Vars(r)["salonId"])
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidSalonID)
		return
	}

	if err := h.service.Delete(r.Context(), adminID, salonID); err != nil {
		h.respondError(w, "delete salon", err)
		return
	}

	handlers.RespondJSON(w, http.StatusNoContent, nil)
}

func (h *Handler) respondError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, salons.ErrSalonNotFound):
		handlers.RespondNotFound(w, msgSalonNotFound)
	case errors.Is(err, salons.ErrAccessDenied):
		handlers.RespondForbidden(w, msgAccessDenied)
	case errors.Is(err, salons.ErrInvalidStatus):
		handlers.RespondBadRequest(w, msgInvalidStatus)
	default:
		h.logger.Error("%s: %v", op, err)
		handlers.RespondInternalError(w)
	}
}
