package release_assistant

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-AssistantBooking/internal/domain"
	assistantRepo "github.com/m04kA/SMC-AssistantBooking/internal/infra/storage/assistant"
	"github.com/m04kA/SMC-AssistantBooking/internal/service/allocation"
	"github.com/m04kA/SMC-AssistantBooking/pkg/ptr"
)

// UseCase use case для отключения или удаления ассистента
type UseCase struct {
	assistantRepo   AssistantRepository
	reservationRepo ReservationRepository
	access          AccessClient
	allocator       Allocator
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
	assistantRepo AssistantRepository,
	reservationRepo ReservationRepository,
	access AccessClient,
	allocator Allocator,
	logger Logger,
	opts ...Option,
) *UseCase {
	uc := &UseCase{
		assistantRepo:   assistantRepo,
		reservationRepo: reservationRepo,
		access:          access,
		allocator:       allocator,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Execute отключает ассистента, затем удаляет все его бронирования начиная
// с сегодняшнего дня через обработчик удаления. Бронирования в закрытых
// периодах пропускаются. В режиме delete ассистент удаляется в конце.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ReleaseAssistant: user=%s, assistant=%s, mode=%s", req.UserID, req.AssistantID, req.Mode)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ReleaseAssistant: validation failed: %v", err)
		return nil, err
	}

	// 2. Только администратор
	isAdmin, err := uc.access.IsAdmin(ctx, req.UserID)
	if err != nil {
		uc.logger.Error("ReleaseAssistant: failed to check admin role for user=%s: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: access check: %v", ErrInternal, err)
	}
	if !isAdmin {
		uc.logger.Warn("ReleaseAssistant: user=%s is not an admin", req.UserID)
		return nil, ErrAccessDenied
	}

	// 3. Отключаем ассистента, чтобы новые бронирования не появлялись
	if _, err := uc.assistantRepo.GetByID(ctx, req.AssistantID); err != nil {
		return nil, uc.assistantError("get", req.AssistantID, err)
	}
	if err := uc.assistantRepo.SetDisabled(ctx, req.AssistantID, true); err != nil {
		return nil, uc.assistantError("disable", req.AssistantID, err)
	}

	// 4. Текущие и будущие бронирования
	now := uc.timeProvider.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	reservations, err := uc.reservationRepo.List(ctx, domain.ReservationFilter{
		AssistantID: ptr.Ptr(req.AssistantID),
		FromDate:    &today,
		Statuses:    []domain.ReservationStatus{domain.StatusRequested, domain.StatusAccepted, domain.StatusRejected},
	})
	if err != nil {
		uc.logger.Error("ReleaseAssistant: failed to list reservations of assistant id=%s: %v", req.AssistantID, err)
		return nil, fmt.Errorf("%w: failed to list reservations: %v", ErrInternal, err)
	}

	resp := &Response{
		AssistantID: req.AssistantID,
		Mode:        req.Mode,
		Removed:     make([]string, 0, len(reservations)),
		Skipped:     make([]string, 0),
	}

	message := domain.MsgAssistantInactivated
	if req.Mode == ModeDelete {
		message = domain.MsgAssistantDeleted
	}

	for _, reservation := range reservations {
		_, err := uc.allocator.ProcessRemoval(ctx, reservation.ID,
			allocation.WithStamp(req.UserID, now),
			allocation.WithMessage(message))
		switch {
		case err == nil:
			resp.Removed = append(resp.Removed, reservation.ID)
		case errors.Is(err, allocation.ErrPeriodClosed):
			uc.logger.Warn("ReleaseAssistant: reservation id=%s skipped, period id=%s is not open", reservation.ID, reservation.PeriodID)
			resp.Skipped = append(resp.Skipped, reservation.ID)
		case errors.Is(err, allocation.ErrReservationNotFound):
			uc.logger.Info("ReleaseAssistant: reservation id=%s disappeared", reservation.ID)
		default:
			uc.logger.Error("ReleaseAssistant: failed to remove reservation id=%s: %v", reservation.ID, err)
			return nil, fmt.Errorf("%w: failed to remove reservation %s: %v", ErrInternal, reservation.ID, err)
		}
	}

	// 5. Удаляем ассистента
	if req.Mode == ModeDelete {
		if err := uc.assistantRepo.Delete(ctx, req.AssistantID); err != nil {
			return nil, uc.assistantError("delete", req.AssistantID, err)
		}
	}

	uc.logger.Info("ReleaseAssistant: assistant id=%s released, removed=%d, skipped=%d",
		req.AssistantID, len(resp.Removed), len(resp.Skipped))
	return resp, nil
}

func (uc *UseCase) assistantError(op, assistantID string, err error) error {
	if errors.Is(err, assistantRepo.ErrAssistantNotFound) {
		uc.logger.Warn("ReleaseAssistant: assistant id=%s not found", assistantID)
		return ErrAssistantNotFound
	}
	uc.logger.Error("ReleaseAssistant: failed to %s assistant id=%s: %v", op, assistantID, err)
	return fmt.Errorf("%w: failed to %s assistant: %v", ErrInternal, op, err)
}
