package release_assistant

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AssistantBooking/internal/domain"
	"github.com/m04kA/SMC-AssistantBooking/internal/service/allocation"
)

// AssistantRepository интерфейс репозитория ассистентов
type AssistantRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Assistant, error)
	SetDisabled(ctx context.Context, id string, disabled bool) error
	Delete(ctx context.Context, id string) error
}

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	List(ctx context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error)
}

// AccessClient интерфейс клиента сервиса доступа
type AccessClient interface {
	IsAdmin(ctx context.Context, userID string) (bool, error)
}

// Allocator обработчик удаления бронирований
type Allocator interface {
	ProcessRemoval(ctx context.Context, reservationID string, opts ...allocation.Option) (*domain.Reservation, error)
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
