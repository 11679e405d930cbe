package create_reservation

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-AssistantBooking/internal/domain"
	"github.com/m04kA/SMC-AssistantBooking/internal/service/allocation"
)

// ResourceRepository интерфейс репозитория ресурсов
type ResourceRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Resource, error)
}

// AssistantRepository интерфейс репозитория ассистентов
type AssistantRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Assistant, error)
}

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	Create(ctx context.Context, reservation *domain.Reservation) (*domain.Reservation, error)
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

// Allocator обработчик запроса на место
type Allocator interface {
	ProcessRequest(ctx context.Context, reservationID string, opts ...allocation.Option) (*domain.Reservation, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// IDGenerator генератор идентификаторов бронирований
type IDGenerator interface {
	NewID() string
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

// UUIDGenerator генерирует UUID v4
type UUIDGenerator struct{}

// NewID возвращает новый UUID
func (g *UUIDGenerator) NewID() string {
	return uuid.NewString()
}
