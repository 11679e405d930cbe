package create_reservation

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AssistantBooking/internal/api/handlers"
	"github.com/m04kA/SMC-AssistantBooking/internal/api/middleware"
	"github.com/m04kA/SMC-AssistantBooking/internal/domain"
	createReservation "github.com/m04kA/SMC-AssistantBooking/internal/usecase/create_reservation"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgInvalidInput       = "не указан ресурс или ассистент"
	msgResourceNotFound   = "ресурс не найден"
	msgAssistantNotFound  = "ассистент не найден"
	msgAssistantDisabled  = "ассистент отключен"
	msgPeriodClosed       = "период не открыт для изменений"
	msgForbidden          = "нет прав на бронирование этого ассистента"
)

type Handler struct {
	useCase CreateReservationUseCase
	kind    domain.ResourceKind
	route   string
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, kind domain.ResourceKind, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		kind:    kind,
		route:   "POST " + handlers.ReservationsPath(kind),
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings, POST /api/v1/activity-bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("%s - Missing user ID", h.route)
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("%s - Invalid request body: %v", h.route, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(userID, h.kind))
	if err != nil {
		switch {
		case errors.Is(err, createReservation.ErrInvalidInput):
			h.logger.Warn("%s - Invalid input: user_id=%s, error=%v", h.route, userID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createReservation.ErrResourceNotFound):
			h.logger.Warn("%s - Resource not found: resource_id=%s", h.route, req.ResourceID)
			handlers.RespondNotFound(w, msgResourceNotFound)

		case errors.Is(err, createReservation.ErrAssistantNotFound):
			h.logger.Warn("%s - Assistant not found: assistant_id=%s", h.route, req.AssistantID)
			handlers.RespondNotFound(w, msgAssistantNotFound)

		case errors.Is(err, createReservation.ErrAssistantDisabled):
			h.logger.Warn("%s - Assistant disabled: assistant_id=%s", h.route, req.AssistantID)
			handlers.RespondNotAcceptable(w, msgAssistantDisabled)

		case errors.Is(err, createReservation.ErrPeriodClosed):
			h.logger.Warn("%s - Period closed: resource_id=%s", h.route, req.ResourceID)
			handlers.RespondNotAcceptable(w, msgPeriodClosed)

		case errors.Is(err, createReservation.ErrAccessDenied):
			h.logger.Warn("%s - Access denied: user_id=%s, assistant_id=%s", h.route, userID, req.AssistantID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("%s - Failed to create reservation: user_id=%s, resource_id=%s, error=%v",
				h.route, userID, req.ResourceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("%s - Reservation processed: reservation_id=%s, status=%s", h.route, result.ID, result.Status)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
