package release_assistant

// Mode способ вывода ассистента из расписания
type Mode string

const (
	ModeDisable Mode = "disable"
	ModeDelete  Mode = "delete"
)

// Request модель запроса на отключение или удаление ассистента
type Request struct {
	UserID      string // ID администратора
	AssistantID string // ID ассистента
	Mode        Mode   // disable или delete
}

// Response результат: удаленные бронирования и пропущенные из-за закрытого периода
type Response struct {
	AssistantID string
	Mode        Mode
	Removed     []string
	Skipped     []string
}
