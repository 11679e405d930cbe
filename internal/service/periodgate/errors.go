package periodgate

import "errors"

var (
	// ErrPeriodNotFound возвращается, когда период ресурса не найден
	ErrPeriodNotFound = errors.New("periodgate: period not found")

	// ErrPeriodClosed возвращается, когда период не открыт для изменений
	ErrPeriodClosed = errors.New("periodgate: period is not open")

	// ErrInternal возвращается при ошибках хранилища
	ErrInternal = errors.New("periodgate: internal error")
)
