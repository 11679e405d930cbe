package list_period_reservations

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
	msgNotFound      = "период не найден"
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
		route:   "GET /periods/{id}" + handlers.ReservationsPath(kind),
		logger:  logger,
	}
}

// Handle GET /api/v1/periods/{periodId}/bookings, GET /api/v1/periods/{periodId}/activity-bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	periodID := mux.Vars(r)["periodId"]

	var filter models.ListFilter
	if status := r.URL.Query().Get("status"); status != "" {
		filter.Status = &status
	}

	list, err := h.service.ListByPeriod(r.Context(), h.kind, periodID, filter)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrInvalidInput):
			h.logger.Warn("%s - Invalid status filter: period_id=%s", h.route, periodID)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, reservations.ErrPeriodNotFound):
			h.logger.Warn("%s - Period not found: period_id=%s", h.route, periodID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("%s - Failed to list reservations: period_id=%s, error=%v", h.route, periodID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("%s - Reservations listed: period_id=%s, total=%d", h.route, periodID, list.Total)
	handlers.RespondJSON(w, http.StatusOK, list)
}
