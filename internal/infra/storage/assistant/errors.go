package assistant

import "errors"

var (
	// ErrAssistantNotFound возвращается, когда ассистент не найден
	ErrAssistantNotFound = errors.New("assistant.repository: assistant not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("assistant.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("assistant.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("assistant.repository: failed to scan row")
)
