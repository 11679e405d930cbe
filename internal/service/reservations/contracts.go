package reservations

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AssistantBooking/internal/domain"
	"github.com/m04kA/SMC-AssistantBooking/internal/service/allocation"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Reservation, error)
	List(ctx context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error)
}

// ResourceRepository интерфейс репозитория ресурсов
type ResourceRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Resource, error)
}

// PeriodRepository интерфейс репозитория периодов
type PeriodRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Period, error)
}

// AccessClient интерфейс клиента сервиса доступа
type AccessClient interface {
	IsAdmin(ctx context.Context, userID string) (bool, error)
}

// Allocator обработчики распределения мест
type Allocator interface {
	ProcessRequest(ctx context.Context, reservationID string, opts ...allocation.Option) (*domain.Reservation, error)
	ProcessRemoval(ctx context.Context, reservationID string, opts ...allocation.Option) (*domain.Reservation, error)
}

// TimeProvider источник текущего времени
type TimeProvider interface {
	Now() time.Time
}

type utcClock struct{}

func (utcClock) Now() time.Time { return time.Now().UTC() }

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
