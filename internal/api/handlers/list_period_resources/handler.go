package list_period_resources

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AssistantBooking/internal/api/handlers"
	"github.com/m04kA/SMC-AssistantBooking/internal/domain"
	"github.com/m04kA/SMC-AssistantBooking/internal/service/resources"
)

const msgNotFound = "период не найден"

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
		route:   "GET " + handlers.ResourcesPath(kind) + "/period/{id}",
		logger:  logger,
	}
}

// Handle GET /api/v1/timeslots/period/{periodId}, GET /api/v1/activities/period/{periodId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	periodID := mux.Vars(r)["periodId"]

	list, err := h.service.ListByPeriod(r.Context(), h.kind, periodID)
	if err != nil {
		if errors.Is(err, resources.ErrPeriodNotFound) {
			h.logger.Warn("%s - Period not found: period_id=%s", h.route, periodID)
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		h.logger.Error("%s - Failed to list resources: period_id=%s, error=%v", h.route, periodID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("%s - Resources listed: period_id=%s, total=%d", h.route, periodID, list.Total)
	handlers.RespondJSON(w, http.StatusOK, list)
}
