package update_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AssistantBooking/internal/domain"
	reservationRepo "github.com/m04kA/SMC-AssistantBooking/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-AssistantBooking/internal/service/allocation"
	"github.com/m04kA/SMC-AssistantBooking/internal/service/periodgate"
)

// UseCase use case для изменения статуса и комментария бронирования
type UseCase struct {
	reservationRepo ReservationRepository
	gate            PeriodGate
	access          AccessClient
	allocator       Allocator
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// Option опция use case
type Option func(*UseCase)

// WithTimeProvider подменяет источник времени
func WithTimeProvider(tp TimeProvider) Option {
	return func(uc *UseCase) { uc.timeProvider = tp }
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	gate PeriodGate,
	access AccessClient,
	allocator Allocator,
	txManager TransactionManager,
	logger Logger,
	opts ...Option,
) *UseCase {
	uc := &UseCase{
		reservationRepo: reservationRepo,
		gate:            gate,
		access:          access,
		allocator:       allocator,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Execute выполняет use case изменения бронирования.
//
// Пользователь ассистента может только удалить бронирование (REMOVED).
// Администратор может выставить любой статус, кроме REQUESTED, но реестр
// мест при этом не обходится: ACCEPTED запускает распределение (и может
// закончиться REJECTED), REJECTED и REMOVED освобождают занятое место.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateReservation: user=%s, kind=%s, reservation=%s", req.UserID, req.Kind, req.ReservationID)

	// 1. Валидация входных данных
	status, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("UpdateReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Бронирование
	reservation, err := uc.reservationRepo.GetByID(ctx, req.ReservationID)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			uc.logger.Warn("UpdateReservation: reservation id=%s not found", req.ReservationID)
			return nil, ErrReservationNotFound
		}
		uc.logger.Error("UpdateReservation: failed to get reservation id=%s: %v", req.ReservationID, err)
		return nil, fmt.Errorf("%w: failed to get reservation: %v", ErrInternal, err)
	}
	if reservation.Kind != req.Kind {
		uc.logger.Warn("UpdateReservation: reservation id=%s is %s, not %s", req.ReservationID, reservation.Kind, req.Kind)
		return nil, ErrReservationNotFound
	}

	// 3. Период должен быть открыт
	if err := uc.gate.Check(ctx, reservation.PeriodID); err != nil {
		if errors.Is(err, periodgate.ErrPeriodClosed) {
			uc.logger.Warn("UpdateReservation: period id=%s is not open", reservation.PeriodID)
			return nil, ErrPeriodClosed
		}
		uc.logger.Error("UpdateReservation: period id=%s of reservation id=%s unavailable: %v",
			reservation.PeriodID, reservation.ID, err)
		return nil, fmt.Errorf("%w: period check: %v", ErrInternal, err)
	}

	// 4. Права
	isAdmin, err := uc.authorize(ctx, req.UserID, reservation.AssistantID)
	if err != nil {
		return nil, err
	}
	if status != nil && !isAdmin && *status != domain.StatusRemoved {
		uc.logger.Warn("UpdateReservation: user=%s may only remove reservation id=%s", req.UserID, reservation.ID)
		return nil, ErrAccessDenied
	}

	// 5. Применяем изменения
	opts := []allocation.Option{allocation.WithStamp(req.UserID, uc.timeProvider.Now())}
	if req.Comment != nil {
		opts = append(opts, allocation.WithComment(req.Comment))
	}

	var updated *domain.Reservation
	switch {
	case status == nil:
		updated, err = uc.updateComment(ctx, reservation.ID, req)
	case *status == domain.StatusAccepted:
		updated, err = uc.allocator.ProcessRequest(ctx, reservation.ID, opts...)
	case *status == domain.StatusRejected:
		updated, err = uc.allocator.ReleaseAsRejected(ctx, reservation.ID, opts...)
	case *status == domain.StatusRemoved:
		updated, err = uc.allocator.ProcessRemoval(ctx, reservation.ID, opts...)
	}
	if err != nil {
		return nil, uc.mapAllocationError(reservation.ID, err)
	}

	uc.logger.Info("UpdateReservation: reservation id=%s status=%s", updated.ID, updated.Status)
	return newResponse(updated), nil
}

// updateComment меняет только комментарий и отметку об изменении
func (uc *UseCase) updateComment(ctx context.Context, reservationID string, req *Request) (*domain.Reservation, error) {
	var updated *domain.Reservation
	err := uc.txManager.Do(ctx, func(ctx context.Context) error {
		reservation, err := uc.reservationRepo.GetByID(ctx, reservationID)
		if err != nil {
			return err
		}
		reservation.Comment = req.Comment
		reservation.Touch(req.UserID, uc.timeProvider.Now())
		if err := uc.reservationRepo.Update(ctx, reservation); err != nil {
			return err
		}
		updated = reservation
		return nil
	})
	if errors.Is(err, reservationRepo.ErrReservationNotFound) {
		return nil, allocation.ErrReservationNotFound
	}
	return updated, err
}

func (uc *UseCase) mapAllocationError(reservationID string, err error) error {
	switch {
	case errors.Is(err, allocation.ErrReservationNotFound):
		uc.logger.Warn("UpdateReservation: reservation id=%s disappeared", reservationID)
		return ErrReservationNotFound
	case errors.Is(err, allocation.ErrReservationRemoved):
		uc.logger.Warn("UpdateReservation: reservation id=%s is already removed", reservationID)
		return ErrReservationRemoved
	case errors.Is(err, allocation.ErrPeriodClosed):
		uc.logger.Warn("UpdateReservation: period closed while updating reservation id=%s", reservationID)
		return ErrPeriodClosed
	default:
		uc.logger.Error("UpdateReservation: failed to update reservation id=%s: %v", reservationID, err)
		return fmt.Errorf("%w: failed to update reservation: %v", ErrInternal, err)
	}
}

// authorize возвращает признак администратора; не-администратор должен быть
// пользователем ассистента бронирования
func (uc *UseCase) authorize(ctx context.Context, userID, assistantID string) (bool, error) {
	isAdmin, err := uc.access.IsAdmin(ctx, userID)
	if err != nil {
		uc.logger.Error("UpdateReservation: failed to check admin role for user=%s: %v", userID, err)
		return false, fmt.Errorf("%w: access check: %v", ErrInternal, err)
	}
	if isAdmin {
		return true, nil
	}

	allowed, err := uc.access.IsUserForAssistant(ctx, userID, assistantID)
	if err != nil {
		uc.logger.Error("UpdateReservation: failed to check assistant access for user=%s: %v", userID, err)
		return false, fmt.Errorf("%w: access check: %v", ErrInternal, err)
	}
	if !allowed {
		uc.logger.Warn("UpdateReservation: user=%s may not manage assistant id=%s", userID, assistantID)
		return false, ErrAccessDenied
	}
	return false, nil
}
