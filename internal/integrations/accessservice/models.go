package accessservice

// Role роль пользователя из сервиса доступа
type Role struct {
	Admin             bool     `json:"admin"`
	Trainer           bool     `json:"trainer"`
	UserForAssistants []string `json:"userForAssistants"`
}

// ErrorResponse модель ошибки от сервиса доступа
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
