package list_periods

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AssistantBooking/internal/api/handlers"
	"github.com/m04kA/SMC-AssistantBooking/internal/service/periods"
)

const msgInvalidStatus = "статус должен быть PREPARE, OPEN, CLOSED или ARCHIVED"

type Handler struct {
	service PeriodService
	logger  Logger
}

func NewHandler(service PeriodService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/periods?status=OPEN
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")

	list, err := h.service.List(r.Context(), status)
	if err != nil {
		if errors.Is(err, periods.ErrInvalidStatus) {
			h.logger.Warn("GET /periods - Invalid status filter: status=%s", status)
			handlers.RespondBadRequest(w, msgInvalidStatus)
			return
		}
		h.logger.Error("GET /periods - Failed to list periods: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /periods - Periods listed: status=%s, total=%d", status, list.Total)
	handlers.RespondJSON(w, http.StatusOK, list)
}
