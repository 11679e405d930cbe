package create_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AssistantBooking/internal/domain"
	assistantRepo "github.com/m04kA/SMC-AssistantBooking/internal/infra/storage/assistant"
	resourceRepo "github.com/m04kA/SMC-AssistantBooking/internal/infra/storage/resource"
	"github.com/m04kA/SMC-AssistantBooking/internal/service/periodgate"
)

// UseCase use case для создания бронирования ассистента
type UseCase struct {
	resourceRepo    ResourceRepository
	assistantRepo   AssistantRepository
	reservationRepo ReservationRepository
	gate            PeriodGate
	access          AccessClient
	allocator       Allocator
	timeProvider    TimeProvider
	idGenerator     IDGenerator
	logger          Logger
}

// Option опция use case
type Option func(*UseCase)

// WithTimeProvider подменяет источник времени
func WithTimeProvider(tp TimeProvider) Option {
	return func(uc *UseCase) { uc.timeProvider = tp }
}

// WithIDGenerator подменяет генератор идентификаторов
func WithIDGenerator(g IDGenerator) Option {
	return func(uc *UseCase) { uc.idGenerator = g }
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	resourceRepo ResourceRepository,
	assistantRepo AssistantRepository,
	reservationRepo ReservationRepository,
	gate PeriodGate,
	access AccessClient,
	allocator Allocator,
	logger Logger,
	opts ...Option,
) *UseCase {
	uc := &UseCase{
		resourceRepo:    resourceRepo,
		assistantRepo:   assistantRepo,
		reservationRepo: reservationRepo,
		gate:            gate,
		access:          access,
		allocator:       allocator,
		timeProvider:    &RealTimeProvider{},
		idGenerator:     &UUIDGenerator{},
		logger:          logger,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Execute выполняет use case создания бронирования
// Бронирование сохраняется в статусе REQUESTED, затем сразу обрабатывается;
// в ответе итоговый статус (ACCEPTED или REJECTED)
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: user=%s, kind=%s, resource=%s, assistant=%s",
		req.UserID, req.Kind, req.ResourceID, req.AssistantID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Ресурс
	resource, err := uc.resourceRepo.GetByID(ctx, req.ResourceID)
	if err != nil {
		if errors.Is(err, resourceRepo.ErrResourceNotFound) {
			uc.logger.Warn("CreateReservation: resource id=%s not found", req.ResourceID)
			return nil, ErrResourceNotFound
		}
		uc.logger.Error("CreateReservation: failed to get resource id=%s: %v", req.ResourceID, err)
		return nil, fmt.Errorf("%w: failed to get resource: %v", ErrInternal, err)
	}
	if resource.Kind != req.Kind {
		uc.logger.Warn("CreateReservation: resource id=%s is %s, not %s", req.ResourceID, resource.Kind, req.Kind)
		return nil, ErrResourceNotFound
	}

	// 3. Период должен быть открыт
	if err := uc.gate.Check(ctx, resource.PeriodID); err != nil {
		if errors.Is(err, periodgate.ErrPeriodClosed) {
			uc.logger.Warn("CreateReservation: period id=%s is not open", resource.PeriodID)
			return nil, ErrPeriodClosed
		}
		uc.logger.Error("CreateReservation: period id=%s of resource id=%s unavailable: %v", resource.PeriodID, resource.ID, err)
		return nil, fmt.Errorf("%w: period check: %v", ErrInternal, err)
	}

	// 4. Ассистент
	assistant, err := uc.assistantRepo.GetByID(ctx, req.AssistantID)
	if err != nil {
		if errors.Is(err, assistantRepo.ErrAssistantNotFound) {
			uc.logger.Warn("CreateReservation: assistant id=%s not found", req.AssistantID)
			return nil, ErrAssistantNotFound
		}
		uc.logger.Error("CreateReservation: failed to get assistant id=%s: %v", req.AssistantID, err)
		return nil, fmt.Errorf("%w: failed to get assistant: %v", ErrInternal, err)
	}
	if assistant.Disabled {
		uc.logger.Warn("CreateReservation: assistant id=%s is disabled", req.AssistantID)
		return nil, ErrAssistantDisabled
	}

	// 5. Права: администратор или пользователь ассистента
	if err := uc.authorize(ctx, req.UserID, req.AssistantID); err != nil {
		return nil, err
	}

	// 6. Сохраняем запрос с денормализованными данными
	reservation := &domain.Reservation{
		ID:              uc.idGenerator.NewID(),
		Kind:            resource.Kind,
		ResourceID:      resource.ID,
		PeriodID:        resource.PeriodID,
		ResourceDate:    resource.Date,
		ResourceWeekday: resource.Weekday(),
		ResourceTime:    resource.TimeRange(),
		AssistantID:     assistant.ID,
		AssistantType:   assistant.Type,
		AssistantName:   assistant.Fullname,
		BookedBy:        req.UserID,
		BookedAt:        uc.timeProvider.Now(),
		Comment:         req.Comment,
		Status:          domain.StatusRequested,
	}

	if _, err := uc.reservationRepo.Create(ctx, reservation); err != nil {
		uc.logger.Error("CreateReservation: failed to create reservation: %v", err)
		return nil, fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
	}

	// 7. Распределяем место
	processed, err := uc.allocator.ProcessRequest(ctx, reservation.ID)
	if err != nil {
		uc.logger.Error("CreateReservation: reservation id=%s left REQUESTED, processing failed: %v", reservation.ID, err)
		return nil, fmt.Errorf("%w: failed to process reservation: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateReservation: reservation id=%s status=%s", processed.ID, processed.Status)
	return newResponse(processed), nil
}

func (uc *UseCase) authorize(ctx context.Context, userID, assistantID string) error {
	isAdmin, err := uc.access.IsAdmin(ctx, userID)
	if err != nil {
		uc.logger.Error("CreateReservation: failed to check admin role for user=%s: %v", userID, err)
		return fmt.Errorf("%w: access check: %v", ErrInternal, err)
	}
	if isAdmin {
		return nil
	}

	allowed, err := uc.access.IsUserForAssistant(ctx, userID, assistantID)
	if err != nil {
		uc.logger.Error("CreateReservation: failed to check assistant access for user=%s: %v", userID, err)
		return fmt.Errorf("%w: access check: %v", ErrInternal, err)
	}
	if !allowed {
		uc.logger.Warn("CreateReservation: user=%s may not book for assistant id=%s", userID, assistantID)
		return ErrAccessDenied
	}
	return nil
}
