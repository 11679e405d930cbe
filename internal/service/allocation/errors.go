package allocation

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = errors.New("allocation: reservation not found")

	// ErrReservationRemoved возвращается при попытке обработать удаленное бронирование
	ErrReservationRemoved = errors.New("allocation: reservation is removed")

	// ErrPeriodClosed возвращается, когда период не открыт для изменений
	ErrPeriodClosed = errors.New("allocation: period is not open")

	// ErrInternal возвращается при ошибках хранилища
	ErrInternal = errors.New("allocation: internal error")
)
