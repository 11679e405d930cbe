package delete_resource

import (
	"context"

	"github.com/m04kA/SMC-AssistantBooking/internal/domain"
)

type ResourceService interface {
	Delete(ctx context.Context, kind domain.ResourceKind, id, userID string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
