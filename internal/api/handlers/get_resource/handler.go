package get_resource

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AssistantBooking/internal/api/handlers"
	"github.com/m04kA/SMC-AssistantBooking/internal/domain"
	"github.com/m04kA/SMC-AssistantBooking/internal/service/resources"
)

const msgNotFound = "ресурс не найден"

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
		route:   "GET " + handlers.ResourcesPath(kind) + "/{id}",
		logger:  logger,
	}
}

// Handle GET /api/v1/timeslots/{resourceId}, GET /api/v1/activities/{resourceId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	resourceID := mux.Vars(r)["resourceId"]

	resource, err := h.service.GetByID(r.Context(), h.kind, resourceID)
	if err != nil {
		if errors.Is(err, resources.ErrResourceNotFound) {
			h.logger.Warn("%s - Resource not found: resource_id=%s", h.route, resourceID)
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		h.logger.Error("%s - Failed to get resource: resource_id=%s, error=%v", h.route, resourceID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, resource)
}
