// Package manage_blocks exposes POST and GET /staff/{staffId}/blocks and
// DELETE /blocks/{blockId}.
package manage_blocks

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
	msgInvalidBlockID = "ongeldige blokkering-id"
	msgStaffNotFound  = "medewerker niet gevonden"
	msgBlockNotFound  = "blokkering niet gevonden"
	msgAccessDenied   = "geen toegang tot deze medewerker"
	msgInvalidInput   = "ongeldige periode"
)

// Handler serves the blocked times endpoints.
type Handler struct {
	service ScheduleService
	logger  Logger
}

// NewHandler creates the handler.
func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// HandleCreate blocks a time window for the staff member.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ownerID, err := handlers.UserIDFromContext(r)
	if err != nil {
		h.logger.Error("create block: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	staffID, err := uuid.Parse(mux.Vars(r)["staffId"])
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidStaffID)
		return
	}

	var req CreateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	block, err := h.service.CreateBlock(r.Context(), ownerID, staffID, req.StartAt, req.EndAt, req.Reason)
	if err != nil {
		h.respondError(w, "create block", err)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, FromDomain(block))
}

// HandleList lists the blocked times of the staff member.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ownerID, err := handlers.UserIDFromContext(r)
	if err != nil {
		h.logger.Error("list blocks: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	staffID, err := uuid.Parse(mux.Vars(r)["staffId"])
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidStaffID)
		return
	}

	blocks, err := h.service.ListBlocks(r.Context(), ownerID, staffID)
	if err != nil {
		h.respondError(w, "list blocks", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomainList(blocks))
}

// HandleDelete removes a blocked time window.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ownerID, err := handlers.UserIDFromContext(r)
	if err != nil {
		h.logger.Error("delete block: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	blockID, err := uuid.Parse(mux.Vars(r)["blockId"])
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidBlockID)
		return
	}

	if err := h.service.DeleteBlock(r.Context(), ownerID, blockID); err != nil {
		h.respondError(w, "delete block", err)
		return
	}

	handlers.RespondJSON(w, http.StatusNoContent, nil)
}

func (h *Handler) respondError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, schedule.ErrStaffNotFound):
		handlers.RespondNotFound(w, msgStaffNotFound)
	case errors.Is(err, schedule.ErrBlockNotFound):
		handlers.RespondNotFound(w, msgBlockNotFound)
	case errors.Is(err, schedule.ErrAccessDenied):
		handlers.RespondForbidden(w, msgAccessDenied)
	case errors.Is(err, schedule.ErrInvalidInput):
		handlers.RespondBadRequest(w, msgInvalidInput)
	default:
		h.logger.Error("%s: %v", op, err)
		handlers.RespondInternalError(w)
	}
}
