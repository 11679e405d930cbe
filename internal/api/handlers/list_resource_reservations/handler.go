package list_resource_reservations

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AssistantBooking/internal/api/handlers"
	"github.com/m04kA/SMC-AssistantBooking/internal/domain"
	"github.com/m04kA/SMC-AssistantBooking/internal/service/reservations"
	"github.com/m04kA/SMC-AssistantBooking/internal/service/reservations/models"
)

const (
	msgInvalidStatus = "некорректный статус бронирования"
	msgNotFound      = "ресурс не найден"
)

type Handler struct {
	service ReservationService
	kind    domain.ResourceKind
	route   string
	logger  Logger
}

func NewHandler(service ReservationService, kind domain.ResourceKind, logger Logger) *Handler {
	return &Handler{
		service: service,
		kind:    kind,
		route:   "GET " + handlers.ResourcesPath(kind) + "/{id}/bookings",
		logger:  logger,
	}
}

// Handle GET /api/v1/timeslots/{resourceId}/bookings?status=ACCEPTED
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	resourceID := mux.Vars(r)["resourceId"]

	var filter models.ListFilter
	if status := r.URL.Query().Get("status"); status != "" {
		filter.Status = &status
	}

	list, err := h.service.ListByResource(r.Context(), h.kind, resourceID, filter)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrInvalidInput):
			h.logger.Warn("%s - Invalid status filter: resource_id=%s", h.route, resourceID)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, reservations.ErrResourceNotFound):
			h.logger.Warn("%s - Resource not found: resource_id=%s", h.route, resourceID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("%s - Failed to list reservations: resource_id=%s, error=%v", h.route, resourceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("%s - Reservations listed: resource_id=%s, total=%d", h.route, resourceID, list.Total)
	handlers.RespondJSON(w, http.StatusOK, list)
}
