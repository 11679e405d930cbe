package periods

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-AssistantBooking/internal/domain"
	"github.com/m04kA/SMC-AssistantBooking/internal/service/periods/models"
)

func parseStatus(raw string) (domain.PeriodStatus, error) {
	status := domain.PeriodStatus(strings.ToUpper(strings.TrimSpace(raw)))
	if !status.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, raw)
	}
	return status, nil
}

// buildPeriod валидирует запрос: границы не раньше текущего года и from <= to
func buildPeriod(req *models.CreatePeriodRequest, now time.Time) (*domain.Period, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if req.From == "" || req.To == "" {
		return nil, fmt.Errorf("%w: from and to are required", ErrInvalidInput)
	}

	from, err := time.Parse(domain.DateFormat, req.From)
	if err != nil {
		return nil, fmt.Errorf("%w: from must be YYYY-MM-DD", ErrInvalidInput)
	}
	to, err := time.Parse(domain.DateFormat, req.To)
	if err != nil {
		return nil, fmt.Errorf("%w: to must be YYYY-MM-DD", ErrInvalidInput)
	}

	if from.Year() < now.Year() || to.Year() < now.Year() {
		return nil, fmt.Errorf("%w: from and to can not be before year %d", ErrInvalidInput, now.Year())
	}
	if from.After(to) {
		return nil, fmt.Errorf("%w: from is after to", ErrInvalidInput)
	}

	return &domain.Period{
		Name:        name,
		From:        from,
		To:          to,
		Status:      domain.PeriodPrepare,
		Description: req.Description,
	}, nil
}
