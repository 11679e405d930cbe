package periods

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-AssistantBooking/internal/domain"
	periodRepo "github.com/m04kA/SMC-AssistantBooking/internal/infra/storage/period"
	"github.com/m04kA/SMC-AssistantBooking/internal/service/periods/models"
)

type uuidGenerator struct{}

func (uuidGenerator) NewID() string { return uuid.NewString() }

type utcClock struct{}

func (utcClock) Now() time.Time { return time.Now().UTC() }

// Service сервис периодов
type Service struct {
	periodRepo   PeriodRepository
	access       AccessClient
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

// NewService создает новый экземпляр сервиса периодов
func NewService(periodRepo PeriodRepository, access AccessClient, logger Logger, opts ...Option) *Service {
	s := &Service{
		periodRepo:   periodRepo,
		access:       access,
		idGenerator:  uuidGenerator{},
		timeProvider: utcClock{},
		logger:       logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create создает период в статусе PREPARE
// Доступно только администраторам
func (s *Service) Create(ctx context.Context, req *models.CreatePeriodRequest) (*models.PeriodResponse, error) {
	s.logger.Info("Create: period name=%s from=%s to=%s by user=%s", req.Name, req.From, req.To, req.UserID)

	if err := s.requireAdmin(ctx, "Create", req.UserID); err != nil {
		return nil, err
	}

	period, err := buildPeriod(req, s.timeProvider.Now())
	if err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	period.ID = s.idGenerator.NewID()
	created, err := s.periodRepo.Create(ctx, period)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: created period id=%s", created.ID)
	return models.FromDomainPeriod(created), nil
}

// List возвращает периоды, самые поздние первыми
// Пустой статус означает все периоды
func (s *Service) List(ctx context.Context, status string) (*models.PeriodListResponse, error) {
	s.logger.Info("List: fetching periods status=%s", status)

	var filter domain.PeriodFilter
	if strings.TrimSpace(status) != "" {
		st, err := parseStatus(status)
		if err != nil {
			s.logger.Warn("List: invalid status=%s", status)
			return nil, err
		}
		filter.Status = &st
	}

	list, err := s.periodRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d periods", len(list))
	return models.FromDomainPeriodList(list), nil
}

// GetByID получает период по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.PeriodResponse, error) {
	s.logger.Info("GetByID: fetching period id=%s", id)

	period, err := s.periodRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, periodRepo.ErrPeriodNotFound) {
			s.logger.Warn("GetByID: period id=%s not found", id)
			return nil, ErrPeriodNotFound
		}
		s.logger.Error("GetByID: repository error for period id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainPeriod(period), nil
}

// UpdateStatus меняет статус периода
// Доступно только администраторам
func (s *Service) UpdateStatus(ctx context.Context, id string, req *models.UpdateStatusRequest) (*models.PeriodResponse, error) {
	s.logger.Info("UpdateStatus: period id=%s to status=%s by user=%s", id, req.Status, req.UserID)

	status, err := parseStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s", req.Status)
		return nil, err
	}

	if err := s.requireAdmin(ctx, "UpdateStatus", req.UserID); err != nil {
		return nil, err
	}

	if err := s.periodRepo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, periodRepo.ErrPeriodNotFound) {
			s.logger.Warn("UpdateStatus: period id=%s not found", id)
			return nil, ErrPeriodNotFound
		}
		s.logger.Error("UpdateStatus: repository error for period id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: period id=%s is now %s", id, status)
	return s.GetByID(ctx, id)
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
