package update_reservation

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("update_reservation: invalid input data")

	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = errors.New("update_reservation: reservation not found")

	// ErrPeriodClosed возвращается, когда период бронирования не открыт
	ErrPeriodClosed = errors.New("update_reservation: period is not open")

	// ErrAccessDenied возвращается, когда пользователь не может изменить бронирование
	ErrAccessDenied = errors.New("update_reservation: access denied")

	// ErrReservationRemoved возвращается при попытке изменить статус удаленного бронирования
	ErrReservationRemoved = errors.New("update_reservation: reservation is removed")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_reservation: internal error")
)
