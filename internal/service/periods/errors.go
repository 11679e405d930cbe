package periods

import "errors"

var (
	// ErrPeriodNotFound возвращается, когда период не найден
	ErrPeriodNotFound = errors.New("period not found")

	// ErrAccessDenied возвращается, когда пользователь не администратор
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidStatus возвращается при недопустимом статусе периода
	ErrInvalidStatus = errors.New("invalid period status")

	// ErrInvalidInput возвращается при некорректных данных периода
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
