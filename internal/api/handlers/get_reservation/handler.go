package get_reservation

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AssistantBooking/internal/api/handlers"
	"github.com/m04kA/SMC-AssistantBooking/internal/domain"
	"github.com/m04kA/SMC-AssistantBooking/internal/service/reservations"
)

const msgNotFound = "бронирование не найдено"

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
		route:   "GET " + handlers.ReservationsPath(kind) + "/{id}",
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings/{reservationId}, GET /api/v1/activity-bookings/{reservationId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	reservationID := mux.Vars(r)["reservationId"]

	reservation, err := h.service.GetByID(r.Context(), h.kind, reservationID)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrReservationNotFound):
			h.logger.Warn("%s - Reservation not found: reservation_id=%s", h.route, reservationID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("%s - Failed to get reservation: reservation_id=%s, error=%v", h.route, reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, reservation)
}
