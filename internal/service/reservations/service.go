package reservations

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-AssistantBooking/internal/domain"
	periodRepo "github.com/m04kA/SMC-AssistantBooking/internal/infra/storage/period"
	resourceRepo "github.com/m04kA/SMC-AssistantBooking/internal/infra/storage/resource"
	reservationRepo "github.com/m04kA/SMC-AssistantBooking/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-AssistantBooking/internal/service/allocation"
	"github.com/m04kA/SMC-AssistantBooking/internal/service/reservations/models"
)

// Service сервис чтения бронирований и прямого запуска обработчиков
type Service struct {
	reservationRepo ReservationRepository
	resourceRepo    ResourceRepository
	periodRepo      PeriodRepository
	access          AccessClient
	allocator       Allocator
	timeProvider    TimeProvider
	logger          Logger
}

// Option опция сервиса
type Option func(*Service)

// WithTimeProvider подменяет источник времени
func WithTimeProvider(tp TimeProvider) Option {
	return func(s *Service) { s.timeProvider = tp }
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	reservationRepo ReservationRepository,
	resourceRepo ResourceRepository,
	periodRepo PeriodRepository,
	access AccessClient,
	allocator Allocator,
	logger Logger,
	opts ...Option,
) *Service {
	s := &Service{
		reservationRepo: reservationRepo,
		resourceRepo:    resourceRepo,
		periodRepo:      periodRepo,
		access:          access,
		allocator:       allocator,
		timeProvider:    utcClock{},
		logger:          logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, kind domain.ResourceKind, id string) (*models.ReservationResponse, error) {
	s.logger.Info("GetByID: fetching %s reservation id=%s", kind, id)

	reservation, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("GetByID: reservation id=%s not found", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("GetByID: repository error for reservation id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}
	if reservation.Kind != kind {
		s.logger.Warn("GetByID: reservation id=%s is %s, not %s", id, reservation.Kind, kind)
		return nil, ErrReservationNotFound
	}

	return models.FromDomainReservation(reservation), nil
}

// ListByResource получает бронирования ресурса
func (s *Service) ListByResource(ctx context.Context, kind domain.ResourceKind, resourceID string, f models.ListFilter) (*models.ReservationListResponse, error) {
	s.logger.Info("ListByResource: fetching reservations for %s id=%s", kind, resourceID)

	resource, err := s.resourceRepo.GetByID(ctx, resourceID)
	if err != nil {
		if errors.Is(err, resourceRepo.ErrResourceNotFound) {
			s.logger.Warn("ListByResource: resource id=%s not found", resourceID)
			return nil, ErrResourceNotFound
		}
		s.logger.Error("ListByResource: repository error for resource id=%s: %v", resourceID, err)
		return nil, fmt.Errorf("%w: ListByResource - get resource: %v", ErrInternal, err)
	}
	if resource.Kind != kind {
		return nil, ErrResourceNotFound
	}

	filter := domain.ReservationFilter{Kind: &kind, ResourceID: &resourceID}
	return s.list(ctx, "ListByResource", filter, f)
}

// ListByPeriod получает бронирования периода
func (s *Service) ListByPeriod(ctx context.Context, kind domain.ResourceKind, periodID string, f models.ListFilter) (*models.ReservationListResponse, error) {
	s.logger.Info("ListByPeriod: fetching %s reservations for period id=%s", kind, periodID)

	if _, err := s.periodRepo.GetByID(ctx, periodID); err != nil {
		if errors.Is(err, periodRepo.ErrPeriodNotFound) {
			s.logger.Warn("ListByPeriod: period id=%s not found", periodID)
			return nil, ErrPeriodNotFound
		}
		s.logger.Error("ListByPeriod: repository error for period id=%s: %v", periodID, err)
		return nil, fmt.Errorf("%w: ListByPeriod - get period: %v", ErrInternal, err)
	}

	filter := domain.ReservationFilter{Kind: &kind, PeriodID: &periodID}
	return s.list(ctx, "ListByPeriod", filter, f)
}

func (s *Service) list(ctx context.Context, op string, filter domain.ReservationFilter, f models.ListFilter) (*models.ReservationListResponse, error) {
	if f.Status != nil {
		status := domain.ReservationStatus(strings.ToUpper(*f.Status))
		if !status.IsValid() {
			s.logger.Warn("%s: invalid status=%s", op, *f.Status)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		filter.Statuses = []domain.ReservationStatus{status}
	}

	list, err := s.reservationRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("%s: repository error: %v", op, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}

	s.logger.Info("%s: fetched %d reservations", op, len(list))
	return models.FromDomainReservationList(list), nil
}

// Process запускает обработчик запроса или удаления для бронирования
// Доступно только администраторам
func (s *Service) Process(ctx context.Context, kind domain.ResourceKind, id string, req *models.ProcessRequest) (*models.ReservationResponse, error) {
	s.logger.Info("Process: action=%s for %s reservation id=%s by user=%s", req.Action, kind, id, req.UserID)

	isAdmin, err := s.access.IsAdmin(ctx, req.UserID)
	if err != nil {
		s.logger.Error("Process: failed to check admin role for user=%s: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: Process - access check: %v", ErrInternal, err)
	}
	if !isAdmin {
		s.logger.Warn("Process: access denied for user=%s", req.UserID)
		return nil, ErrAccessDenied
	}

	if _, err := s.GetByID(ctx, kind, id); err != nil {
		return nil, err
	}

	stamp := allocation.WithStamp(req.UserID, s.timeProvider.Now())
	var processed *domain.Reservation
	switch strings.ToLower(req.Action) {
	case models.ActionRequest:
		processed, err = s.allocator.ProcessRequest(ctx, id, stamp)
	case models.ActionRemoval:
		processed, err = s.allocator.ProcessRemoval(ctx, id, stamp)
	default:
		s.logger.Warn("Process: unknown action=%s", req.Action)
		return nil, fmt.Errorf("%w: unknown action %q", ErrInvalidInput, req.Action)
	}

	if err != nil {
		switch {
		case errors.Is(err, allocation.ErrReservationNotFound):
			return nil, ErrReservationNotFound
		case errors.Is(err, allocation.ErrReservationRemoved):
			return nil, ErrReservationRemoved
		case errors.Is(err, allocation.ErrPeriodClosed):
			return nil, ErrPeriodClosed
		}
		s.logger.Error("Process: allocation error for reservation id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Process - allocation: %v", ErrInternal, err)
	}

	s.logger.Info("Process: reservation id=%s status=%s", id, processed.Status)
	return models.FromDomainReservation(processed), nil
}
