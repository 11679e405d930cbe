package periods

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AssistantBooking/internal/domain"
)

// PeriodRepository интерфейс репозитория периодов
type PeriodRepository interface {
	Create(ctx context.Context, period *domain.Period) (*domain.Period, error)
	GetByID(ctx context.Context, id string) (*domain.Period, error)
	List(ctx context.Context, filter domain.PeriodFilter) ([]*domain.Period, error)
	UpdateStatus(ctx context.Context, id string, status domain.PeriodStatus) error
}

// AccessClient интерфейс клиента сервиса доступа
type AccessClient interface {
	IsAdmin(ctx context.Context, userID string) (bool, error)
}

// IDGenerator генератор идентификаторов периодов
type IDGenerator interface {
	NewID() string
}

// TimeProvider источник текущего времени
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
