package resources

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-AssistantBooking/internal/domain"
	"github.com/m04kA/SMC-AssistantBooking/internal/service/resources/models"
	"github.com/m04kA/SMC-AssistantBooking/pkg/types"
)

// buildResource валидирует запрос и собирает ресурс с пустым реестром мест
func buildResource(kind domain.ResourceKind, req *models.CreateResourceRequest) (*domain.Resource, error) {
	if !kind.IsValid() {
		return nil, fmt.Errorf("%w: unknown resource kind %q", ErrInvalidInput, kind)
	}

	if strings.TrimSpace(req.PeriodID) == "" {
		return nil, fmt.Errorf("%w: periodId is required", ErrInvalidInput)
	}

	date, err := time.Parse(domain.DateFormat, req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidInput)
	}

	start, err := types.NewTimeStringFromString(req.StartTime)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid startTime: %v", ErrInvalidInput, err)
	}
	end, err := types.NewTimeStringFromString(req.EndTime)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid endTime: %v", ErrInvalidInput, err)
	}
	if !start.IsBefore(end) {
		return nil, fmt.Errorf("%w: startTime must be before endTime", ErrInvalidInput)
	}

	mode := domain.SlotModeTyped
	if req.Typeless {
		if !kind.SupportsTypeless() {
			return nil, fmt.Errorf("%w: typeless slots are only supported for activities", ErrInvalidInput)
		}
		if len(req.AssistantSlots) != 1 {
			return nil, fmt.Errorf("%w: typeless slots need exactly one capacity value", ErrInvalidInput)
		}
		mode = domain.SlotModeTypeless
	}

	if err := validateSlots(req.AssistantSlots); err != nil {
		return nil, err
	}

	ledger, err := domain.NewLedger(req.AssistantSlots)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	return &domain.Resource{
		Kind:        kind,
		PeriodID:    req.PeriodID,
		Date:        date,
		StartTime:   start,
		EndTime:     end,
		Color:       req.Color,
		Description: req.Description,
		SlotMode:    mode,
		Ledger:      ledger,
	}, nil
}

// validateSlots проверяет вектор емкости до обращения к реестру
func validateSlots(slots []int) error {
	if len(slots) == 0 {
		return fmt.Errorf("%w: assistantSlots is required", ErrInvalidInput)
	}
	if len(slots) > domain.MaxAssistantTypes {
		return fmt.Errorf("%w: at most %d slot buckets are allowed", ErrInvalidInput, domain.MaxAssistantTypes)
	}
	for i, s := range slots {
		if s < 0 {
			return fmt.Errorf("%w: slot %d is negative", ErrInvalidInput, i)
		}
		if s > domain.MaxSlotsPerType {
			return fmt.Errorf("%w: slot %d exceeds %d", ErrInvalidInput, i, domain.MaxSlotsPerType)
		}
	}
	return nil
}
