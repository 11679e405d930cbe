package list_period_reservations

import (
	"context"

	"github.com/m04kA/SMC-AssistantBooking/internal/domain"
	"github.com/m04kA/SMC-AssistantBooking/internal/service/reservations/models"
)

type ReservationService interface {
	ListByPeriod(ctx context.Context, kind domain.ResourceKind, periodID string, f models.ListFilter) (*models.ReservationListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
