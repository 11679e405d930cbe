package update_period_status

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AssistantBooking/internal/api/handlers"
	"github.com/m04kA/SMC-AssistantBooking/internal/api/middleware"
	"github.com/m04kA/SMC-AssistantBooking/internal/service/periods"
	"github.com/m04kA/SMC-AssistantBooking/internal/service/periods/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgInvalidStatus      = "статус должен быть PREPARE, OPEN, CLOSED или ARCHIVED"
	msgNotFound           = "период не найден"
	msgForbidden          = "доступно только администратору"
)

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

// Handle PATCH /api/v1/periods/{periodId}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	periodID := mux.Vars(r)["periodId"]

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /periods/{id}/status - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req models.UpdateStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /periods/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.UserID = userID

	period, err := h.service.UpdateStatus(r.Context(), periodID, &req)
	if err != nil {
		switch {
		case errors.Is(err, periods.ErrInvalidStatus):
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, periods.ErrAccessDenied):
			h.logger.Warn("PATCH /periods/{id}/status - Access denied: user_id=%s", userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, periods.ErrPeriodNotFound):
			h.logger.Warn("PATCH /periods/{id}/status - Period not found: period_id=%s", periodID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("PATCH /periods/{id}/status - Failed to update period: period_id=%s, error=%v", periodID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /periods/{id}/status - Period updated: period_id=%s, status=%s, user_id=%s",
		periodID, period.Status, userID)
	handlers.RespondJSON(w, http.StatusOK, period)
}
