package get_period

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AssistantBooking/internal/api/handlers"
	"github.com/m04kA/SMC-AssistantBooking/internal/service/periods"
)

const msgNotFound = "период не найден"

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

// Handle GET /api/v1/periods/{periodId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	periodID := mux.Vars(r)["periodId"]

	period, err := h.service.GetByID(r.Context(), periodID)
	if err != nil {
		if errors.Is(err, periods.ErrPeriodNotFound) {
			h.logger.Warn("GET /periods/{id} - Period not found: period_id=%s", periodID)
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		h.logger.Error("GET /periods/{id} - Failed to get period: period_id=%s, error=%v", periodID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, period)
}
