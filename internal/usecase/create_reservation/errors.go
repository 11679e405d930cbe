package create_reservation

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrResourceNotFound возвращается, когда ресурс не найден
	ErrResourceNotFound = errors.New("create_reservation: resource not found")

	// ErrAssistantNotFound возвращается, когда ассистент не найден
	ErrAssistantNotFound = errors.New("create_reservation: assistant not found")

	// ErrAssistantDisabled возвращается, когда ассистент отключен
	ErrAssistantDisabled = errors.New("create_reservation: assistant is disabled")

	// ErrPeriodClosed возвращается, когда период ресурса не открыт
	ErrPeriodClosed = errors.New("create_reservation: period is not open")

	// ErrAccessDenied возвращается, когда пользователь не может бронировать за ассистента
	ErrAccessDenied = errors.New("create_reservation: access denied")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)
