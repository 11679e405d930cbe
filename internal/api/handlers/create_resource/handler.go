package create_resource

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AssistantBooking/internal/api/handlers"
	"github.com/m04kA/SMC-AssistantBooking/internal/api/middleware"
	"github.com/m04kA/SMC-AssistantBooking/internal/domain"
	"github.com/m04kA/SMC-AssistantBooking/internal/service/resources"
	"github.com/m04kA/SMC-AssistantBooking/internal/service/resources/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgInvalidInput       = "некорректные дата, время или количество мест"
	msgPeriodNotFound     = "период не найден"
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
		route:   "POST " + handlers.ResourcesPath(kind),
		logger:  logger,
	}
}

// Handle POST /api/v1/timeslots, POST /api/v1/activities
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("%s - Missing user ID", h.route)
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req models.CreateResourceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("%s - Invalid request body: %v", h.route, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.UserID = userID

	resource, err := h.service.Create(r.Context(), h.kind, &req)
	if err != nil {
		switch {
		case errors.Is(err, resources.ErrInvalidInput):
			h.logger.Warn("%s - Invalid input: %v", h.route, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, resources.ErrAccessDenied):
			h.logger.Warn("%s - Access denied: user_id=%s", h.route, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, resources.ErrPeriodNotFound):
			h.logger.Warn("%s - Period not found: period_id=%s", h.route, req.PeriodID)
			handlers.RespondNotFound(w, msgPeriodNotFound)

		default:
			h.logger.Error("%s - Failed to create resource: period_id=%s, error=%v", h.route, req.PeriodID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("%s - Resource created: resource_id=%s, user_id=%s", h.route, resource.ID, userID)
	handlers.RespondJSON(w, http.StatusCreated, resource)
}
