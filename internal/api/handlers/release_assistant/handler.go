package release_assistant

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AssistantBooking/internal/api/handlers"
	"github.com/m04kA/SMC-AssistantBooking/internal/api/middleware"
	releaseAssistant "github.com/m04kA/SMC-AssistantBooking/internal/usecase/release_assistant"
)

const (
	msgMissingUserID = "отсутствует ID пользователя"
	msgInvalidInput  = "не указан ассистент"
	msgNotFound      = "ассистент не найден"
	msgForbidden     = "доступно только администратору"
)

type Handler struct {
	useCase ReleaseAssistantUseCase
	mode    releaseAssistant.Mode
	route   string
	logger  Logger
}

// NewHandler создает обработчик отключения (ModeDisable) или удаления (ModeDelete) ассистента
func NewHandler(useCase ReleaseAssistantUseCase, mode releaseAssistant.Mode, logger Logger) *Handler {
	route := "POST /assistants/{id}/disable"
	if mode == releaseAssistant.ModeDelete {
		route = "DELETE /assistants/{id}"
	}
	return &Handler{
		useCase: useCase,
		mode:    mode,
		route:   route,
		logger:  logger,
	}
}

// Handle POST /api/v1/assistants/{assistantId}/disable, DELETE /api/v1/assistants/{assistantId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	assistantID := mux.Vars(r)["assistantId"]

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("%s - Missing user ID", h.route)
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &releaseAssistant.Request{
		UserID:      userID,
		AssistantID: assistantID,
		Mode:        h.mode,
	})
	if err != nil {
		switch {
		case errors.Is(err, releaseAssistant.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, releaseAssistant.ErrAccessDenied):
			h.logger.Warn("%s - Access denied: user_id=%s", h.route, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, releaseAssistant.ErrAssistantNotFound):
			h.logger.Warn("%s - Assistant not found: assistant_id=%s", h.route, assistantID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("%s - Failed to release assistant: assistant_id=%s, error=%v", h.route, assistantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("%s - Assistant released: assistant_id=%s, removed=%d, skipped=%d",
		h.route, assistantID, len(result.Removed), len(result.Skipped))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
