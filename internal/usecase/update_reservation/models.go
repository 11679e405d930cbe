package update_reservation

import (
	"time"

	"github.com/m04kA/SMC-AssistantBooking/internal/domain"
)

// Request модель запроса на изменение бронирования
type Request struct {
	UserID        string              // ID пользователя, выполняющего запрос
	Kind          domain.ResourceKind // Тип ресурса из маршрута
	ReservationID string              // ID бронирования
	Status        *string             // Новый статус (опционально)
	Comment       *string             // Новый комментарий (опционально)
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
	UpdatedBy       *string
	UpdatedAt       *time.Time
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
		UpdatedBy:       r.UpdatedBy,
		UpdatedAt:       r.UpdatedAt,
		Comment:         r.Comment,
		Status:          r.Status,
		StatusMessage:   r.StatusMessage,
	}
}
