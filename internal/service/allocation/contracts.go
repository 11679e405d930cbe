package allocation

import (
	"context"

	"github.com/m04kA/SMC-AssistantBooking/internal/domain"
)

// ResourceRepository интерфейс репозитория ресурсов
type ResourceRepository interface {
	GetByIDForUpdate(ctx context.Context, id string) (*domain.Resource, error)
	UpdateLedger(ctx context.Context, id string, ledger domain.Ledger) error
}

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Reservation, error)
	GetByIDForUpdate(ctx context.Context, id string) (*domain.Reservation, error)
	Update(ctx context.Context, reservation *domain.Reservation) error
}

// PeriodGate проверка открытости периода
type PeriodGate interface {
	Check(ctx context.Context, periodID string) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Metrics счетчики исходов распределения мест
type Metrics interface {
	IncAllocation(kind, outcome string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
