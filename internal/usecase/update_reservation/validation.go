package update_reservation

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-AssistantBooking/internal/domain"
)

// validateRequest валидирует входные данные и возвращает новый статус (если задан)
func validateRequest(req *Request) (*domain.ReservationStatus, error) {
	if strings.TrimSpace(req.UserID) == "" {
		return nil, fmt.Errorf("%w: userID is required", ErrInvalidInput)
	}

	if !req.Kind.IsValid() {
		return nil, fmt.Errorf("%w: unknown resource kind %q", ErrInvalidInput, req.Kind)
	}

	if strings.TrimSpace(req.ReservationID) == "" {
		return nil, fmt.Errorf("%w: reservation id is required", ErrInvalidInput)
	}

	if req.Status == nil && req.Comment == nil {
		return nil, fmt.Errorf("%w: nothing to update", ErrInvalidInput)
	}

	if req.Comment != nil && len(*req.Comment) > domain.MaxCommentLength {
		return nil, fmt.Errorf("%w: comment is longer than %d characters", ErrInvalidInput, domain.MaxCommentLength)
	}

	if req.Status == nil {
		return nil, nil
	}

	status := domain.ReservationStatus(strings.ToUpper(strings.TrimSpace(*req.Status)))
	if !status.IsValid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, *req.Status)
	}
	// Вернуть бронирование в очередь нельзя: REQUESTED выставляется только при создании
	if status == domain.StatusRequested {
		return nil, fmt.Errorf("%w: status %s cannot be set", ErrInvalidInput, status)
	}

	return &status, nil
}
