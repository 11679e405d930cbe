package create_period

import (
	"context"

	"github.com/m04kA/SMC-AssistantBooking/internal/service/periods/models"
)

type PeriodService interface {
	Create(ctx context.Context, req *models.CreatePeriodRequest) (*models.PeriodResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
