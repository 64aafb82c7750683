// Package admin_users exposes GET /admin/users.
package admin_users

import (
	"errors"
	"net/http"

	"github.com/salonplein/booking-platform/internal/api/handlers"
	"github.com/salonplein/booking-platform/internal/service/stats"
)

const msgAccessDenied = "alleen voor beheerders"

// Handler serves the platform user list.
type Handler struct {
	service StatsService
	logger  Logger
}

// NewHandler creates the handler.
func NewHandler(service StatsService, logger Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Handle lists every platform user.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	adminID, err := handlers.UserIDFromContext(r)
	if err != nil {
		h.logger.Error("admin users: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	users, err := h.service.ListUsers(r.Context(), adminID)
	if err != nil {
		if errors.Is(err, stats.ErrAccessDenied) {
			handlers.RespondForbidden(w, msgAccessDenied)
			return
		}
		h.logger.Error("admin users: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomain(users))
}
