package release_assistant

import (
	"fmt"
	"strings"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.UserID) == "" {
		return fmt.Errorf("%w: userID is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.AssistantID) == "" {
		return fmt.Errorf("%w: assistant id is required", ErrInvalidInput)
	}

	if req.Mode != ModeDisable && req.Mode != ModeDelete {
		return fmt.Errorf("%w: unknown mode %q", ErrInvalidInput, req.Mode)
	}

	return nil
}
