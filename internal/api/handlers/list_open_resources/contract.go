package list_open_resources

import (
	"context"

	"github.com/m04kA/SMC-AssistantBooking/internal/domain"
	"github.com/m04kA/SMC-AssistantBooking/internal/service/resources/models"
)

type ResourceService interface {
	ListOpen(ctx context.Context, kind domain.ResourceKind) (*models.ResourceListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
