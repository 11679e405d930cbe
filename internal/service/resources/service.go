package resources

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-AssistantBooking/internal/domain"
	periodRepo "github.com/m04kA/SMC-AssistantBooking/internal/infra/storage/period"
	resourceRepo "github.com/m04kA/SMC-AssistantBooking/internal/infra/storage/resource"
	"github.com/m04kA/SMC-AssistantBooking/internal/service/resources/models"
)

type uuidGenerator struct{}

func (uuidGenerator) NewID() string { return uuid.NewString() }

// Service сервис администрирования таймслотов и активностей
type Service struct {
	resourceRepo ResourceRepository
	periodRepo   PeriodRepository
	access       AccessClient
	txManager    TransactionManager
	idGenerator  IDGenerator
	timeProvider TimeProvider
	logger       Logger
}

// Option опция сервиса
type Option func(*Service)

// WithIDGenerator подменяет генератор идентификаторов
func WithIDGenerator(g IDGenerator) Option {
	return func(s *Service) { s.idGenerator = g }
}

// WithTimeProvider подменяет источник времени
func WithTimeProvider(tp TimeProvider) Option {
	return func(s *Service) { s.timeProvider = tp }
}

// NewService создает новый экземпляр сервиса ресурсов
func NewService(
	resourceRepo ResourceRepository,
	periodRepo PeriodRepository,
	access AccessClient,
	txManager TransactionManager,
	logger Logger,
	opts ...Option,
) *Service {
	s := &Service{
		resourceRepo: resourceRepo,
		periodRepo:   periodRepo,
		access:       access,
		txManager:    txManager,
		idGenerator:  uuidGenerator{},
		timeProvider: utcClock{},
		logger:       logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create создает ресурс с нулевым вектором распределения
// Доступно только администраторам
func (s *Service) Create(ctx context.Context, kind domain.ResourceKind, req *models.CreateResourceRequest) (*models.ResourceResponse, error) {
	s.logger.Info("Create: %s in period id=%s on %s by user=%s", kind, req.PeriodID, req.Date, req.UserID)

	if err := s.requireAdmin(ctx, "Create", req.UserID); err != nil {
		return nil, err
	}

	resource, err := buildResource(kind, req)
	if err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	if _, err := s.periodRepo.GetByID(ctx, req.PeriodID); err != nil {
		if errors.Is(err, periodRepo.ErrPeriodNotFound) {
			s.logger.Warn("Create: period id=%s not found", req.PeriodID)
			return nil, ErrPeriodNotFound
		}
		s.logger.Error("Create: repository error for period id=%s: %v", req.PeriodID, err)
		return nil, fmt.Errorf("%w: Create - get period: %v", ErrInternal, err)
	}

	resource.ID = s.idGenerator.NewID()
	created, err := s.resourceRepo.Create(ctx, resource)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: created %s id=%s", kind, created.ID)
	return models.FromDomainResource(created), nil
}

// GetByID получает ресурс с реестром мест и свободными местами по типам
func (s *Service) GetByID(ctx context.Context, kind domain.ResourceKind, id string) (*models.ResourceResponse, error) {
	s.logger.Info("GetByID: fetching %s id=%s", kind, id)

	resource, err := s.get(ctx, "GetByID", kind, id)
	if err != nil {
		return nil, err
	}
	return models.FromDomainResource(resource), nil
}

// Delete удаляет ресурс вместе с его бронированиями
// Доступно только администраторам
func (s *Service) Delete(ctx context.Context, kind domain.ResourceKind, id, userID string) error {
	s.logger.Info("Delete: deleting %s id=%s by user=%s", kind, id, userID)

	if err := s.requireAdmin(ctx, "Delete", userID); err != nil {
		return err
	}

	if _, err := s.get(ctx, "Delete", kind, id); err != nil {
		return err
	}

	if err := s.resourceRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, resourceRepo.ErrResourceNotFound) {
			return ErrResourceNotFound
		}
		s.logger.Error("Delete: repository error for %s id=%s: %v", kind, id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: deleted %s id=%s", kind, id)
	return nil
}

// ListByPeriod возвращает все ресурсы периода
func (s *Service) ListByPeriod(ctx context.Context, kind domain.ResourceKind, periodID string) (*models.ResourceListResponse, error) {
	s.logger.Info("ListByPeriod: fetching %s resources of period id=%s", kind, periodID)

	var list []*domain.Resource
	err := s.txManager.DoReadOnly(ctx, func(ctx context.Context) error {
		if _, err := s.periodRepo.GetByID(ctx, periodID); err != nil {
			if errors.Is(err, periodRepo.ErrPeriodNotFound) {
				s.logger.Warn("ListByPeriod: period id=%s not found", periodID)
				return ErrPeriodNotFound
			}
			s.logger.Error("ListByPeriod: repository error for period id=%s: %v", periodID, err)
			return fmt.Errorf("%w: ListByPeriod - get period: %v", ErrInternal, err)
		}

		var err error
		list, err = s.resourceRepo.List(ctx, domain.ResourceFilter{Kind: &kind, PeriodID: &periodID})
		if err != nil {
			s.logger.Error("ListByPeriod: repository error: %v", err)
			return fmt.Errorf("%w: ListByPeriod - repository error: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("ListByPeriod: fetched %d %s resources", len(list), kind)
	return models.FromDomainResourceList(list), nil
}

// ListOpen возвращает ресурсы открытых периодов начиная с сегодняшнего дня
func (s *Service) ListOpen(ctx context.Context, kind domain.ResourceKind) (*models.ResourceListResponse, error) {
	now := s.timeProvider.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	status := domain.PeriodOpen
	s.logger.Info("ListOpen: fetching open %s resources from %s", kind, today.Format(domain.DateFormat))

	var list []*domain.Resource
	err := s.txManager.DoReadOnly(ctx, func(ctx context.Context) error {
		var err error
		list, err = s.resourceRepo.List(ctx, domain.ResourceFilter{
			Kind:         &kind,
			PeriodStatus: &status,
			FromDate:     &today,
		})
		return err
	})
	if err != nil {
		s.logger.Error("ListOpen: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListOpen - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListOpen: fetched %d %s resources", len(list), kind)
	return models.FromDomainResourceList(list), nil
}

// UpdateSlots меняет емкость ресурса, сохраняя текущие распределения
// Емкость типа не может стать меньше числа занятых мест
// Доступно только администраторам
func (s *Service) UpdateSlots(ctx context.Context, kind domain.ResourceKind, id string, req *models.UpdateSlotsRequest) (*models.ResourceResponse, error) {
	s.logger.Info("UpdateSlots: %s id=%s slots=%v by user=%s", kind, id, req.AssistantSlots, req.UserID)

	if err := s.requireAdmin(ctx, "UpdateSlots", req.UserID); err != nil {
		return nil, err
	}
	if err := validateSlots(req.AssistantSlots); err != nil {
		s.logger.Warn("UpdateSlots: validation failed: %v", err)
		return nil, err
	}

	var updated *domain.Resource
	err := s.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		resource, err := s.resourceRepo.GetByIDForUpdate(ctx, id)
		if err != nil {
			if errors.Is(err, resourceRepo.ErrResourceNotFound) {
				s.logger.Warn("UpdateSlots: %s id=%s not found", kind, id)
				return ErrResourceNotFound
			}
			s.logger.Error("UpdateSlots: repository error for %s id=%s: %v", kind, id, err)
			return fmt.Errorf("%w: UpdateSlots - get resource: %v", ErrInternal, err)
		}
		if resource.Kind != kind {
			s.logger.Warn("UpdateSlots: resource id=%s is %s, not %s", id, resource.Kind, kind)
			return ErrResourceNotFound
		}
		if resource.SlotMode == domain.SlotModeTypeless && len(req.AssistantSlots) != 1 {
			return fmt.Errorf("%w: typeless slots need exactly one capacity value", ErrInvalidInput)
		}

		if err := resource.Ledger.Resize(req.AssistantSlots); err != nil {
			s.logger.Warn("UpdateSlots: %s id=%s can not be resized: %v", kind, id, err)
			return fmt.Errorf("%w: %v", ErrSlotsInUse, err)
		}

		if err := s.resourceRepo.UpdateLedger(ctx, id, resource.Ledger); err != nil {
			s.logger.Error("UpdateSlots: failed to save ledger of %s id=%s: %v", kind, id, err)
			return fmt.Errorf("%w: UpdateSlots - update ledger: %v", ErrInternal, err)
		}
		updated = resource
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("UpdateSlots: %s id=%s slots=%v allocations=%v", kind, id, updated.Ledger.Slots, updated.Ledger.Allocations)
	return models.FromDomainResource(updated), nil
}

func (s *Service) get(ctx context.Context, op string, kind domain.ResourceKind, id string) (*domain.Resource, error) {
	resource, err := s.resourceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, resourceRepo.ErrResourceNotFound) {
			s.logger.Warn("%s: %s id=%s not found", op, kind, id)
			return nil, ErrResourceNotFound
		}
		s.logger.Error("%s: repository error for %s id=%s: %v", op, kind, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	if resource.Kind != kind {
		s.logger.Warn("%s: resource id=%s is %s, not %s", op, id, resource.Kind, kind)
		return nil, ErrResourceNotFound
	}
	return resource, nil
}

func (s *Service) requireAdmin(ctx context.Context, op, userID string) error {
	isAdmin, err := s.access.IsAdmin(ctx, userID)
	if err != nil {
		s.logger.Error("%s: failed to check admin role for user=%s: %v", op, userID, err)
		return fmt.Errorf("%w: %s - access check: %v", ErrInternal, op, err)
	}
	if !isAdmin {
		s.logger.Warn("%s: access denied for user=%s", op, userID)
		return ErrAccessDenied
	}
	return nil
}
