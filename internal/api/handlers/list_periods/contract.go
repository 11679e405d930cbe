package list_periods

import (
	"context"

	"github.com/m04kA/SMC-AssistantBooking/internal/service/periods/models"
)

type PeriodService interface {
	List(ctx context.Context, status string) (*models.PeriodListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
