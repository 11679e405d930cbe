package create_resource

import (
	"context"

	"github.com/m04kA/SMC-AssistantBooking/internal/domain"
	"github.com/m04kA/SMC-AssistantBooking/internal/service/resources/models"
)

type ResourceService interface {
	Create(ctx context.Context, kind domain.ResourceKind, req *models.CreateResourceRequest) (*models.ResourceResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
