package update_reservation

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AssistantBooking/internal/api/handlers"
	"github.com/m04kA/SMC-AssistantBooking/internal/api/middleware"
	"github.com/m04kA/SMC-AssistantBooking/internal/domain"
	updateReservation "github.com/m04kA/SMC-AssistantBooking/internal/usecase/update_reservation"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgInvalidInput       = "некорректный статус или комментарий"
	msgNotFound           = "бронирование не найдено"
	msgPeriodClosed       = "период не открыт для изменений"
	msgForbidden          = "доступ запрещен"
	msgRemoved            = "бронирование удалено и не может быть изменено"
)

type Handler struct {
	useCase UpdateReservationUseCase
	kind    domain.ResourceKind
	route   string
	logger  Logger
}

func NewHandler(useCase UpdateReservationUseCase, kind domain.ResourceKind, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		kind:    kind,
		route:   "PATCH " + handlers.ReservationsPath(kind) + "/{id}",
		logger:  logger,
	}
}

// Handle PATCH /api/v1/bookings/{reservationId}, PATCH /api/v1/activity-bookings/{reservationId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	reservationID := mux.Vars(r)["reservationId"]

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("%s - Missing user ID", h.route)
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req UpdateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("%s - Invalid request body: %v", h.route, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(userID, reservationID, h.kind))
	if err != nil {
		switch {
		case errors.Is(err, updateReservation.ErrInvalidInput):
			h.logger.Warn("%s - Invalid input: reservation_id=%s, error=%v", h.route, reservationID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, updateReservation.ErrReservationNotFound):
			h.logger.Warn("%s - Reservation not found: reservation_id=%s", h.route, reservationID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, updateReservation.ErrPeriodClosed):
			h.logger.Warn("%s - Period closed: reservation_id=%s", h.route, reservationID)
			handlers.RespondNotAcceptable(w, msgPeriodClosed)

		case errors.Is(err, updateReservation.ErrAccessDenied):
			h.logger.Warn("%s - Access denied: reservation_id=%s, user_id=%s", h.route, reservationID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, updateReservation.ErrReservationRemoved):
			h.logger.Warn("%s - Reservation removed: reservation_id=%s", h.route, reservationID)
			handlers.RespondConflict(w, msgRemoved)

		default:
			h.logger.Error("%s - Failed to update reservation: reservation_id=%s, error=%v",
				h.route, reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("%s - Reservation updated: reservation_id=%s, status=%s, user_id=%s",
		h.route, reservationID, result.Status, userID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
