// Package register_salon exposes POST /salons.
package register_salon

import (
	"errors"
	"net/http"

	"github.com/salonplein/booking-platform/internal/api/handlers"
	"github.com/salonplein/booking-platform/internal/service/salons"
)

const (
	msgInvalidBody  = "ongeldige aanvraag"
	msgInvalidInput = "naam en plaats zijn verplicht"
)

// Handler serves salon registration.
type Handler struct {
	service SalonsService
	logger  Logger
}

// NewHandler creates the handler.
func NewHandler(service SalonsService, logger Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Handle registers a new salon for the authenticated user. The salon starts
// as pending until an administrator approves it.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	ownerID, err := handlers.UserIDFromContext(r)
	if err != nil {
		h.logger.Error("register salon: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	var req Request
	if err := handlers.DecodeJSON(r, &req); err != nil {
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	salon, err := h.service.Register(r.Context(), req.ToServiceRequest(ownerID))
	if err != nil {
		if errors.Is(err, salons.ErrInvalidInput) {
			handlers.RespondBadRequest(w, msgInvalidInput)
			return
		}
		h.logger.Error("register salon: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, FromDomain(salon))
}
