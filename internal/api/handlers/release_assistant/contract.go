package release_assistant

import (
	"context"

	releaseAssistant "github.com/m04kA/SMC-AssistantBooking/internal/usecase/release_assistant"
)

type ReleaseAssistantUseCase interface {
	Execute(ctx context.Context, req *releaseAssistant.Request) (*releaseAssistant.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
