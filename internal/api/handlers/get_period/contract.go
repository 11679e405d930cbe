package get_period

import (
	"context"

	"github.com/m04kA/SMC-AssistantBooking/internal/service/periods/models"
)

type PeriodService interface {
	GetByID(ctx context.Context, id string) (*models.PeriodResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
