package update_resource_slots

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AssistantBooking/internal/api/handlers"
	"github.com/m04kA/SMC-AssistantBooking/internal/api/middleware"
	"github.com/m04kA/SMC-AssistantBooking/internal/domain"
	"github.com/m04kA/SMC-AssistantBooking/internal/service/resources"
	"github.com/m04kA/SMC-AssistantBooking/internal/service/resources/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgInvalidSlots       = "некорректное количество мест"
	msgSlotsInUse         = "количество мест меньше числа принятых бронирований"
	msgNotFound           = "ресурс не найден"
	msgForbidden          = "доступно только администратору"
)

type Handler struct {
	service ResourceService
	kind    domain.ResourceKind
	route   string
	logger  Logger
}

func NewHandler(service ResourceService, kind domain.ResourceKind, logger Logger) *Handler {
	return &Handler{
		service: service,
		kind:    kind,
		route:   "PATCH " + handlers.ResourcesPath(kind) + "/{id}/slots",
		logger:  logger,
	}
}

// Handle PATCH /api/v1/timeslots/{resourceId}/slots, PATCH /api/v1/activities/{resourceId}/slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	resourceID := mux.Vars(r)["resourceId"]

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("%s - Missing user ID", h.route)
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req models.UpdateSlotsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("%s - Invalid request body: %v", h.route, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.UserID = userID

	resource, err := h.service.UpdateSlots(r.Context(), h.kind, resourceID, &req)
	if err != nil {
		switch {
		case errors.Is(err, resources.ErrInvalidInput):
			h.logger.Warn("%s - Invalid slots: resource_id=%s, error=%v", h.route, resourceID, err)
			handlers.RespondBadRequest(w, msgInvalidSlots)

		case errors.Is(err, resources.ErrSlotsInUse):
			h.logger.Warn("%s - Slots in use: resource_id=%s, error=%v", h.route, resourceID, err)
			handlers.RespondConflict(w, msgSlotsInUse)

		case errors.Is(err, resources.ErrAccessDenied):
			h.logger.Warn("%s - Access denied: user_id=%s", h.route, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, resources.ErrResourceNotFound):
			h.logger.Warn("%s - Resource not found: resource_id=%s", h.route, resourceID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("%s - Failed to update slots: resource_id=%s, error=%v", h.route, resourceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("%s - Slots updated: resource_id=%s, slots=%v, user_id=%s", h.route, resourceID, resource.AssistantSlots, userID)
	handlers.RespondJSON(w, http.StatusOK, resource)
}
