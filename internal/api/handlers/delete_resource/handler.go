package delete_resource

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AssistantBooking/internal/api/handlers"
	"github.com/m04kA/SMC-AssistantBooking/internal/api/middleware"
	"github.com/m04kA/SMC-AssistantBooking/internal/domain"
	"github.com/m04kA/SMC-AssistantBooking/internal/service/resources"
)

const (
	msgMissingUserID = "отсутствует ID пользователя"
	msgNotFound      = "ресурс не найден"
	msgForbidden     = "доступно только администратору"
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
		route:   "DELETE " + handlers.ResourcesPath(kind) + "/{id}",
		logger:  logger,
	}
}

// Handle DELETE /api/v1/timeslots/{resourceId}, DELETE /api/v1/activities/{resourceId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	resourceID := mux.Vars(r)["resourceId"]

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("%s - Missing user ID", h.route)
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	if err := h.service.Delete(r.Context(), h.kind, resourceID, userID); err != nil {
		switch {
		case errors.Is(err, resources.ErrAccessDenied):
			h.logger.Warn("%s - Access denied: user_id=%s", h.route, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, resources.ErrResourceNotFound):
			h.logger.Warn("%s - Resource not found: resource_id=%s", h.route, resourceID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("%s - Failed to delete resource: resource_id=%s, error=%v", h.route, resourceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("%s - Resource deleted: resource_id=%s, user_id=%s", h.route, resourceID, userID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
