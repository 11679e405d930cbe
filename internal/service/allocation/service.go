package allocation

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AssistantBooking/internal/domain"
	resourceRepo "github.com/m04kA/SMC-AssistantBooking/internal/infra/storage/resource"
	reservationRepo "github.com/m04kA/SMC-AssistantBooking/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-AssistantBooking/internal/service/periodgate"
)

// Service распределяет места ресурса между бронированиями.
//
// Каждый вызов выполняется в одной SERIALIZABLE транзакции: строка ресурса
// блокируется FOR UPDATE, затем бронирование; реестр мест и статус
// бронирования сохраняются вместе. Если вызывающий код уже открыл
// транзакцию, используется она.
type Service struct {
	resourceRepo    ResourceRepository
	reservationRepo ReservationRepository
	gate            PeriodGate
	txManager       TransactionManager
	metrics         Metrics
	logger          Logger
}

// NewService создает новый экземпляр сервиса распределения
func NewService(
	resourceRepo ResourceRepository,
	reservationRepo ReservationRepository,
	gate PeriodGate,
	txManager TransactionManager,
	metrics Metrics,
	logger Logger,
) *Service {
	return &Service{
		resourceRepo:    resourceRepo,
		reservationRepo: reservationRepo,
		gate:            gate,
		txManager:       txManager,
		metrics:         metrics,
		logger:          logger,
	}
}

// ProcessRequest пытается выделить место под бронирование.
// Итоговый статус ACCEPTED или REJECTED с сообщением; отсутствие места,
// ресурса или закрытый период не являются ошибкой вызова.
func (s *Service) ProcessRequest(ctx context.Context, reservationID string, opts ...Option) (*domain.Reservation, error) {
	var result *domain.Reservation
	var outcome string

	err := s.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		reservation, resource, err := s.lock(ctx, reservationID)
		if err != nil {
			return err
		}
		if reservation.IsTerminal() {
			s.logger.Warn("ProcessRequest: reservation id=%s is removed", reservationID)
			return ErrReservationRemoved
		}

		status, message, err := s.allocate(ctx, reservation, resource)
		if err != nil {
			return err
		}

		if err := s.save(ctx, reservation, status, message, opts); err != nil {
			return err
		}

		result = reservation
		outcome = OutcomeRejected
		if status == domain.StatusAccepted {
			outcome = OutcomeAccepted
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.metrics.IncAllocation(string(result.Kind), outcome)
	s.logger.Info("ProcessRequest: reservation id=%s resource id=%s status=%s",
		reservationID, result.ResourceID, result.Status)
	return result, nil
}

// ProcessRemoval освобождает место бронирования и помечает его REMOVED.
// Повторное удаление ничего не меняет. При закрытом периоде возвращает
// ErrPeriodClosed и ничего не сохраняет, ошибка чтения периода дает ErrInternal.
func (s *Service) ProcessRemoval(ctx context.Context, reservationID string, opts ...Option) (*domain.Reservation, error) {
	return s.release(ctx, "ProcessRemoval", reservationID, domain.StatusRemoved, opts)
}

// ReleaseAsRejected освобождает место так же, как ProcessRemoval, но
// оставляет бронирование в статусе REJECTED. Бронирование без места просто
// получает новый статус.
func (s *Service) ReleaseAsRejected(ctx context.Context, reservationID string, opts ...Option) (*domain.Reservation, error) {
	return s.release(ctx, "ReleaseAsRejected", reservationID, domain.StatusRejected, opts)
}

func (s *Service) release(
	ctx context.Context,
	op string,
	reservationID string,
	final domain.ReservationStatus,
	opts []Option,
) (*domain.Reservation, error) {
	var result *domain.Reservation
	outcome := OutcomeNoop

	err := s.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		outcome = OutcomeNoop

		reservation, resource, err := s.lock(ctx, reservationID)
		if err != nil {
			return err
		}

		if reservation.IsTerminal() {
			if final == domain.StatusRemoved {
				s.logger.Info("%s: reservation id=%s already removed", op, reservationID)
				result = reservation
				return nil
			}
			s.logger.Warn("%s: reservation id=%s is removed", op, reservationID)
			return ErrReservationRemoved
		}

		released := false
		if resource == nil {
			s.logger.Warn("%s: resource id=%s of reservation id=%s not found, ledger untouched",
				op, reservation.ResourceID, reservationID)
		} else {
			if err := s.gate.Check(ctx, resource.PeriodID); err != nil {
				if errors.Is(err, periodgate.ErrPeriodClosed) {
					s.logger.Warn("%s: period id=%s is not open for reservation id=%s", op, resource.PeriodID, reservationID)
					return ErrPeriodClosed
				}
				s.logger.Error("%s: period id=%s of reservation id=%s unavailable: %v", op, resource.PeriodID, reservationID, err)
				return fmt.Errorf("%w: %s - period check: %w", ErrInternal, op, err)
			}

			t := resource.EffectiveTypeIndex(reservation.AssistantType)
			released = resource.Ledger.Release(t, reservationID)
			if released {
				if err := s.resourceRepo.UpdateLedger(ctx, resource.ID, resource.Ledger); err != nil {
					s.logger.Error("%s: failed to save ledger of resource id=%s: %v", op, resource.ID, err)
					return fmt.Errorf("%w: %s - update ledger: %w", ErrInternal, op, err)
				}
			} else {
				s.logger.Info("%s: reservation id=%s holds no slot on resource id=%s", op, reservationID, resource.ID)
			}
		}

		if err := s.save(ctx, reservation, final, "", opts); err != nil {
			return err
		}

		result = reservation
		switch {
		case !released:
			outcome = OutcomeNoop
		case final == domain.StatusRejected:
			outcome = OutcomeRejected
		default:
			outcome = OutcomeRemoved
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.metrics.IncAllocation(string(result.Kind), outcome)
	s.logger.Info("%s: reservation id=%s status=%s", op, reservationID, result.Status)
	return result, nil
}

// lock блокирует ресурс, затем бронирование. Ресурс равен nil, если он удален.
func (s *Service) lock(ctx context.Context, reservationID string) (*domain.Reservation, *domain.Resource, error) {
	unlocked, err := s.reservationRepo.GetByID(ctx, reservationID)
	if err != nil {
		return nil, nil, s.reservationError(reservationID, err)
	}

	resource, err := s.resourceRepo.GetByIDForUpdate(ctx, unlocked.ResourceID)
	if err != nil && !errors.Is(err, resourceRepo.ErrResourceNotFound) {
		s.logger.Error("lock: failed to load resource id=%s: %v", unlocked.ResourceID, err)
		return nil, nil, fmt.Errorf("%w: lock - get resource: %w", ErrInternal, err)
	}

	reservation, err := s.reservationRepo.GetByIDForUpdate(ctx, reservationID)
	if err != nil {
		return nil, nil, s.reservationError(reservationID, err)
	}

	return reservation, resource, nil
}

// allocate возвращает итоговый статус и сообщение для бронирования
func (s *Service) allocate(
	ctx context.Context,
	reservation *domain.Reservation,
	resource *domain.Resource,
) (domain.ReservationStatus, string, error) {
	if resource == nil {
		s.logger.Error("ProcessRequest: resource id=%s of reservation id=%s not found",
			reservation.ResourceID, reservation.ID)
		return domain.StatusRejected, fmt.Sprintf(domain.MsgResourceNotFound, reservation.ResourceID), nil
	}

	if err := s.gate.Check(ctx, resource.PeriodID); err != nil {
		if errors.Is(err, periodgate.ErrPeriodClosed) {
			s.logger.Warn("ProcessRequest: period id=%s is not open for reservation id=%s", resource.PeriodID, reservation.ID)
			return domain.StatusRejected, domain.MsgPeriodNotOpen, nil
		}
		s.logger.Error("ProcessRequest: period id=%s of reservation id=%s unavailable: %v", resource.PeriodID, reservation.ID, err)
		return "", "", fmt.Errorf("%w: ProcessRequest - period check: %w", ErrInternal, err)
	}

	t := resource.EffectiveTypeIndex(reservation.AssistantType)
	if resource.Ledger.IsAccepted(reservation.ID) {
		return domain.StatusAccepted, "", nil
	}

	if !resource.Ledger.TryAllocate(t, reservation.ID) {
		s.logger.Info("ProcessRequest: no free slots of type %s on resource id=%s", resource.BucketLabel(t), resource.ID)
		return domain.StatusRejected, fmt.Sprintf(domain.MsgNoAvailableSlots, resource.BucketLabel(t)), nil
	}

	if err := s.resourceRepo.UpdateLedger(ctx, resource.ID, resource.Ledger); err != nil {
		s.logger.Error("ProcessRequest: failed to save ledger of resource id=%s: %v", resource.ID, err)
		return "", "", fmt.Errorf("%w: ProcessRequest - update ledger: %w", ErrInternal, err)
	}

	return domain.StatusAccepted, "", nil
}

func (s *Service) save(
	ctx context.Context,
	reservation *domain.Reservation,
	status domain.ReservationStatus,
	message string,
	opts []Option,
) error {
	c := collect(opts)
	if c.message != nil {
		message = *c.message
	}
	reservation.Finalize(status, message)

	if c.updatedBy != nil {
		reservation.UpdatedBy = c.updatedBy
		reservation.UpdatedAt = c.updatedAt
	}
	if c.setComment {
		reservation.Comment = c.comment
	}

	if err := s.reservationRepo.Update(ctx, reservation); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			return ErrReservationNotFound
		}
		s.logger.Error("save: failed to update reservation id=%s: %v", reservation.ID, err)
		return fmt.Errorf("%w: save - update reservation: %w", ErrInternal, err)
	}
	return nil
}

func (s *Service) reservationError(reservationID string, err error) error {
	if errors.Is(err, reservationRepo.ErrReservationNotFound) {
		s.logger.Warn("lock: reservation id=%s not found", reservationID)
		return ErrReservationNotFound
	}
	s.logger.Error("lock: failed to load reservation id=%s: %v", reservationID, err)
	return fmt.Errorf("%w: lock - get reservation: %w", ErrInternal, err)
}
