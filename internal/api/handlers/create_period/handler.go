package create_period

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AssistantBooking/internal/api/handlers"
	"github.com/m04kA/SMC-AssistantBooking/internal/api/middleware"
	"github.com/m04kA/SMC-AssistantBooking/internal/service/periods"
	"github.com/m04kA/SMC-AssistantBooking/internal/service/periods/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgInvalidInput       = "некорректные название или даты периода"
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

// Handle POST /api/v1/periods
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /periods - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req models.CreatePeriodRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /periods - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.UserID = userID

	period, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, periods.ErrInvalidInput):
			h.logger.Warn("POST /periods - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, periods.ErrAccessDenied):
			h.logger.Warn("POST /periods - Access denied: user_id=%s", userID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("POST /periods - Failed to create period: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /periods - Period created: period_id=%s, user_id=%s", period.ID, userID)
	handlers.RespondJSON(w, http.StatusCreated, period)
}
