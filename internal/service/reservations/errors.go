package reservations

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = errors.New("reservation not found")

	// ErrResourceNotFound возвращается, когда ресурс не найден
	ErrResourceNotFound = errors.New("resource not found")

	// ErrPeriodNotFound возвращается, когда период не найден
	ErrPeriodNotFound = errors.New("period not found")

	// ErrAccessDenied возвращается, когда у пользователя нет прав доступа
	ErrAccessDenied = errors.New("access denied")

	// ErrReservationRemoved возвращается при обработке удаленного бронирования
	ErrReservationRemoved = errors.New("reservation is removed")

	// ErrPeriodClosed возвращается, когда период не открыт
	ErrPeriodClosed = errors.New("period is not open")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
