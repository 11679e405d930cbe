package process_reservation

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AssistantBooking/internal/api/handlers"
	"github.com/m04kA/SMC-AssistantBooking/internal/api/middleware"
	"github.com/m04kA/SMC-AssistantBooking/internal/domain"
	"github.com/m04kA/SMC-AssistantBooking/internal/service/reservations"
	"github.com/m04kA/SMC-AssistantBooking/internal/service/reservations/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgInvalidAction      = "действие должно быть request или removal"
	msgNotFound           = "бронирование не найдено"
	msgForbidden          = "доступно только администратору"
	msgPeriodClosed       = "период не открыт для изменений"
	msgRemoved            = "бронирование удалено и не может быть изменено"
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
		route:   "POST " + handlers.ReservationsPath(kind) + "/{id}/process",
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/{reservationId}/process
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	reservationID := mux.Vars(r)["reservationId"]

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("%s - Missing user ID", h.route)
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req models.ProcessRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("%s - Invalid request body: %v", h.route, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.UserID = userID

	result, err := h.service.Process(r.Context(), h.kind, reservationID, &req)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidAction)

		case errors.Is(err, reservations.ErrAccessDenied):
			h.logger.Warn("%s - Access denied: user_id=%s", h.route, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, reservations.ErrReservationNotFound):
			h.logger.Warn("%s - Reservation not found: reservation_id=%s", h.route, reservationID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, reservations.ErrPeriodClosed):
			h.logger.Warn("%s - Period closed: reservation_id=%s", h.route, reservationID)
			handlers.RespondNotAcceptable(w, msgPeriodClosed)

		case errors.Is(err, reservations.ErrReservationRemoved):
			handlers.RespondConflict(w, msgRemoved)

		default:
			h.logger.Error("%s - Failed to process reservation: reservation_id=%s, error=%v", h.route, reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("%s - Reservation processed: reservation_id=%s, action=%s, status=%s",
		h.route, reservationID, req.Action, result.Status)
	handlers.RespondJSON(w, http.StatusOK, result)
}
