package create_reservation

import (
	"time"

	"github.com/m04kA/SMC-AssistantBooking/internal/domain"
)

// Request модель запроса на создание бронирования
type Request struct {
	UserID      string              // ID пользователя, выполняющего запрос
	Kind        domain.ResourceKind // Тип ресурса из маршрута
	ResourceID  string              // ID таймслота или активности
	AssistantID string              // ID ассистента
	Comment     *string             // Комментарий (опционально)
}

// Response модель ответа с итоговым бронированием
type Response struct {
	ID              string
	Kind            domain.ResourceKind
	ResourceID      string
	PeriodID        string
	ResourceDate    time.Time
	ResourceWeekday string
	ResourceTime    string
	AssistantID     string
	AssistantType   int
	AssistantName   string
	BookedBy        string
	BookedAt        time.Time
	Comment         *string
	Status          domain.ReservationStatus
	StatusMessage   *string
}

func newResponse(r *domain.Reservation) *Response {
	return &Response{
		ID:              r.ID,
		Kind:            r.Kind,
		ResourceID:      r.ResourceID,
		PeriodID:        r.PeriodID,
		ResourceDate:    r.ResourceDate,
		ResourceWeekday: r.ResourceWeekday,
		ResourceTime:    r.ResourceTime,
		AssistantID:     r.AssistantID,
		AssistantType:   r.AssistantType,
		AssistantName:   r.AssistantName,
		BookedBy:        r.BookedBy,
		BookedAt:        r.BookedAt,
		Comment:         r.Comment,
		Status:          r.Status,
		StatusMessage:   r.StatusMessage,
	}
}
