package update_resource_slots

import (
	"context"

	"github.com/m04kA/SMC-AssistantBooking/internal/domain"
	"github.com/m04kA/SMC-AssistantBooking/internal/service/resources/models"
)

type ResourceService interface {
	UpdateSlots(ctx context.Context, kind domain.ResourceKind, id string, req *models.UpdateSlotsRequest) (*models.ResourceResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
