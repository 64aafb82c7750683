// Package get_salon exposes GET /salons/{salonId}.
package get_salon

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/salonplein/booking-platform/internal/api/handlers"
	"github.com/salonplein/booking-platform/internal/service/catalog"
	"github.com/salonplein/booking-platform/internal/service/salons"
	"github.com/salonplein/booking-platform/internal/service/staff"
)

const (
	msgInvalidSalonID = "ongeldige salon-id"
	msgSalonNotFound  = "salon niet gevonden"
)

// Handler serves the public salon detail page.
type Handler struct {
	salons  SalonsService
	catalog CatalogService
	staff   StaffService
	logger  Logger
}

// NewHandler creates the handler.
func NewHandler(salonsService SalonsService, catalogService CatalogService, staffService StaffService, logger Logger) *Handler {
	return &Handler{salons: salonsService, catalog: catalogService, staff: staffService, logger: logger}
}

// Handle fetches one active salon with its bookable services and staff.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	salonID, err := uuid.Parse(mux.Vars(r)["salonId"])
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidSalonID)
		return
	}

	salon, err := h.salons.GetPublic(r.Context(), salonID)
	if err != nil {
		if errors.Is(err, salons.ErrSalonNotFound) {
			handlers.RespondNotFound(w, msgSalonNotFound)
			return
		}
		h.logger.Error("get salon: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	services, err := h.catalog.ListPublic(r.Context(), salonID)
	if err != nil {
		if errors.Is(err, catalog.ErrSalonNotFound) {
			handlers.RespondNotFound(w, msgSalonNotFound)
			return
		}
		h.logger.Error("get salon: list services: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	members, err := h.staff.ListPublic(r.Context(), salonID)
	if err != nil {
		if errors.Is(err, staff.ErrSalonNotFound) {
			handlers.RespondNotFound(w, msgSalonNotFound)
			return
		}
		h.logger.Error("get salon: list staff: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomain(salon, services, members))
}
