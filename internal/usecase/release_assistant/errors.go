package release_assistant

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("release_assistant: invalid input data")

	// ErrAssistantNotFound возвращается, когда ассистент не найден
	ErrAssistantNotFound = errors.New("release_assistant: assistant not found")

	// ErrAccessDenied возвращается, когда пользователь не администратор
	ErrAccessDenied = errors.New("release_assistant: access denied")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("release_assistant: internal error")
)
