// Package admin_stats exposes GET /admin/stats.
package admin_stats

import (
	"errors"
	"net/http"

	"github.com/salonplein/booking-platform/internal/api/handlers"
	"github.com/salonplein/booking-platform/internal/service/stats"
)

const msgAccessDenied = "alleen voor beheerders"

// Handler serves the platform statistics.
type Handler struct {
	service StatsService
	logger  Logger
}

// NewHandler creates the handler.
func NewHandler(service StatsService, logger Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Handle computes the admin dashboard snapshot.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	adminID, err := handlers.UserIDFromContext(r)
	if err != nil {
		h.logger.Error("admin stats: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	res, err := h.service.GetPlatformStats(r.Context(), adminID)
	if err != nil {
		if errors.Is(err, stats.ErrAccessDenied) {
			handlers.RespondForbidden(w, msgAccessDenied)
			return
		}
		h.logger.Error("admin stats: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromService(res))
}
