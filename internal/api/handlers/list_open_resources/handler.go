package list_open_resources

import (
	"net/http"

	"github.com/m04kA/SMC-AssistantBooking/internal/api/handlers"
	"github.com/m04kA/SMC-AssistantBooking/internal/domain"
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
		route:   "GET " + handlers.ResourcesPath(kind) + "/open",
		logger:  logger,
	}
}

// Handle GET /api/v1/timeslots/open, GET /api/v1/activities/open
// Ресурсы открытых периодов начиная с сегодняшнего дня
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.ListOpen(r.Context(), h.kind)
	if err != nil {
		h.logger.Error("%s - Failed to list open resources: error=%v", h.route, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("%s - Open resources listed: total=%d", h.route, list.Total)
	handlers.RespondJSON(w, http.StatusOK, list)
}
