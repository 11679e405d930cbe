package resources

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AssistantBooking/internal/domain"
)

// ResourceRepository интерфейс репозитория ресурсов
type ResourceRepository interface {
	Create(ctx context.Context, resource *domain.Resource) (*domain.Resource, error)
	GetByID(ctx context.Context, id string) (*domain.Resource, error)
	GetByIDForUpdate(ctx context.Context, id string) (*domain.Resource, error)
	UpdateLedger(ctx context.Context, id string, ledger domain.Ledger) error
	List(ctx context.Context, filter domain.ResourceFilter) ([]*domain.Resource, error)
	Delete(ctx context.Context, id string) error
}

// PeriodRepository интерфейс репозитория периодов
type PeriodRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Period, error)
}

// AccessClient интерфейс клиента сервиса доступа
type AccessClient interface {
	IsAdmin(ctx context.Context, userID string) (bool, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider источник текущего времени
type TimeProvider interface {
	Now() time.Time
}

type utcClock struct{}

func (utcClock) Now() time.Time { return time.Now().UTC() }

// IDGenerator генератор идентификаторов ресурсов
type IDGenerator interface {
	NewID() string
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
