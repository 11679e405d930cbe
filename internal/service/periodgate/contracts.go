package periodgate

import (
	"context"

	"github.com/m04kA/SMC-AssistantBooking/internal/domain"
)

// PeriodRepository интерфейс репозитория периодов
type PeriodRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Period, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
