package update_period_status

import (
	"context"

	"github.com/m04kA/SMC-AssistantBooking/internal/service/periods/models"
)

type PeriodService interface {
	UpdateStatus(ctx context.Context, id string, req *models.UpdateStatusRequest) (*models.PeriodResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
