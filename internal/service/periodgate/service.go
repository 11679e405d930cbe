package periodgate

import (
	"context"
	"errors"
	"fmt"

	periodRepo "github.com/m04kA/SMC-AssistantBooking/internal/infra/storage/period"
)

// Service решает, можно ли изменять бронирования в периоде
type Service struct {
	periodRepo PeriodRepository
	logger     Logger
}

// NewService создает новый экземпляр сервиса
func NewService(periodRepo PeriodRepository, logger Logger) *Service {
	return &Service{
		periodRepo: periodRepo,
		logger:     logger,
	}
}

// Check возвращает nil, если период открыт
// ErrPeriodNotFound и ErrInternal означают нарушение целостности данных,
// ErrPeriodClosed - обычный отказ
func (s *Service) Check(ctx context.Context, periodID string) error {
	period, err := s.periodRepo.GetByID(ctx, periodID)
	if err != nil {
		if errors.Is(err, periodRepo.ErrPeriodNotFound) {
			s.logger.Error("PeriodGate: period id=%s not found", periodID)
			return ErrPeriodNotFound
		}
		s.logger.Error("PeriodGate: failed to load period id=%s: %v", periodID, err)
		return fmt.Errorf("%w: Check - repository error: %w", ErrInternal, err)
	}

	if !period.IsOpen() {
		s.logger.Info("PeriodGate: period id=%s is %s", periodID, period.Status)
		return ErrPeriodClosed
	}

	return nil
}

// IsOpenForMutation возвращает true только для существующего периода в статусе OPEN
// Любая ошибка чтения трактуется как закрытый период
func (s *Service) IsOpenForMutation(ctx context.Context, periodID string) bool {
	return s.Check(ctx, periodID) == nil
}
