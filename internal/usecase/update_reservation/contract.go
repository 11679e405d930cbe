package update_reservation

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AssistantBooking/internal/domain"
	"github.com/m04kA/SMC-AssistantBooking/internal/service/allocation"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Reservation, error)
	Update(ctx context.Context, reservation *domain.Reservation) error
}

// PeriodGate проверка открытости периода
type PeriodGate interface {
	Check(ctx context.Context, periodID string) error
}

// AccessClient интерфейс клиента сервиса доступа
type AccessClient interface {
	IsAdmin(ctx context.Context, userID string) (bool, error)
	IsUserForAssistant(ctx context.Context, userID, assistantID string) (bool, error)
}

// Allocator обработчики распределения мест
type Allocator interface {
	ProcessRequest(ctx context.Context, reservationID string, opts ...allocation.Option) (*domain.Reservation, error)
	ProcessRemoval(ctx context.Context, reservationID string, opts ...allocation.Option) (*domain.Reservation, error)
	ReleaseAsRejected(ctx context.Context, reservationID string, opts ...allocation.Option) (*domain.Reservation, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now().UTC()
}
