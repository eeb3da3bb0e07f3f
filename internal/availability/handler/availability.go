package handler

import (
	"net/http"
	"time"

	"fundi/internal/availability/service"
	apperrors "fundi/pkg/errors"
	httputil "fundi/pkg/http"
	"fundi/pkg/logger"

	"github.com/julienschmidt/httprouter"
)

type AvailabilityHandler struct {
	service service.AvailabilityService
	log     *logger.Logger
}

func NewAvailabilityHandler(service service.AvailabilityService, log *logger.Logger) *AvailabilityHandler {
	return &AvailabilityHandler{
		service: service,
		log:     log,
	}
}

// ProviderAvailability handles GET requests for a provider's booked
// slots on a given day. The date query parameter is required.
func (h *AvailabilityHandler) ProviderAvailability(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	providerID := ps.ByName("providerId")

	day, err := service.ParseDate(r.URL.Query().Get("date"))
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "ProviderAvailability", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	availability, err := h.service.ProviderAvailability(r.Context(), providerID, day)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "ProviderAvailability", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, availability); err != nil {
		h.log.Error("failed to write success response", "handler", "ProviderAvailability", "operation", "WriteSuccess", "error", err)
	}
}

// AvailableProviders handles provider matching: which approved providers
// in a category are free at a given date and time slot.
func (h *AvailabilityHandler) AvailableProviders(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	query := r.URL.Query()

	categoryID := query.Get("category_id")
	if categoryID == "" {
		if writeErr := httputil.WriteError(w, apperrors.InvalidInput("category_id query parameter is required")); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "AvailableProviders", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	// Without a time slot the lookup is category-only: every approved
	// provider in the category is returned.
	var slot *time.Time
	if timeSlot := query.Get("time_slot"); timeSlot != "" {
		day, err := service.ParseDate(query.Get("date"))
		if err != nil {
			if writeErr := httputil.WriteError(w, err); writeErr != nil {
				h.log.Error("failed to write error response", "handler", "AvailableProviders", "operation", "WriteError", "error", writeErr)
			}
			return
		}

		parsed, err := service.ParseTimeSlot(day, timeSlot)
		if err != nil {
			if writeErr := httputil.WriteError(w, err); writeErr != nil {
				h.log.Error("failed to write error response", "handler", "AvailableProviders", "operation", "WriteError", "error", writeErr)
			}
			return
		}
		slot = &parsed
	}

	providers, err := h.service.FindAvailableProviders(r.Context(), categoryID, slot)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "AvailableProviders", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, providers); err != nil {
		h.log.Error("failed to write success response", "handler", "AvailableProviders", "operation", "WriteSuccess", "error", err)
	}
}

func (h *AvailabilityHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/api/v1/availability/provider/:providerId", h.ProviderAvailability)
	router.GET("/api/v1/availability/providers", h.AvailableProviders)
}
