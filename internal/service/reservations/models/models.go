package models

import (
	"time"

	"github.com/m04kA/SMC-AssistantBooking/internal/domain"
)

// Processor actions available to admins
const (
	ActionRequest = "request"
	ActionRemoval = "removal"
)

// ProcessRequest запрос на прямой запуск обработчика
type ProcessRequest struct {
	UserID string `json:"-"`
	Action string `json:"action"`
}

// ListFilter фильтр списка бронирований
type ListFilter struct {
	Status *string
}

// ReservationResponse ответ с данными бронирования
type ReservationResponse struct {
	ID              string     `json:"id"`
	Kind            string     `json:"kind"`
	ResourceID      string     `json:"resourceId"`
	PeriodID        string     `json:"periodId"`
	ResourceDate    string     `json:"resourceDate"` // "2026-03-04"
	ResourceWeekday string     `json:"resourceWeekday"`
	ResourceTime    string     `json:"resourceTime"` // "09:00 - 10:00"
	AssistantID     string     `json:"assistantId"`
	AssistantType   int        `json:"assistantType"`
	AssistantName   string     `json:"assistantName"`
	BookedBy        string     `json:"bookedBy"`
	BookedAt        time.Time  `json:"bookedAt"`
	UpdatedBy       *string    `json:"updatedBy,omitempty"`
	UpdatedAt       *time.Time `json:"updatedAt,omitempty"`
	Comment         *string    `json:"comment,omitempty"`
	Status          string     `json:"status"`
	StatusMessage   *string    `json:"statusMessage,omitempty"`
}

// ReservationListResponse список бронирований
type ReservationListResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
	Total        int                   `json:"total"`
}

// FromDomainReservation конвертирует domain модель в response
func FromDomainReservation(r *domain.Reservation) *ReservationResponse {
	return &ReservationResponse{
		ID:              r.ID,
		Kind:            string(r.Kind),
		ResourceID:      r.ResourceID,
		PeriodID:        r.PeriodID,
		ResourceDate:    r.ResourceDate.Format(domain.DateFormat),
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
		Status:          string(r.Status),
		StatusMessage:   r.StatusMessage,
	}
}

// FromDomainReservationList конвертирует список domain моделей в response
func FromDomainReservationList(list []*domain.Reservation) *ReservationListResponse {
	out := &ReservationListResponse{
		Reservations: make([]ReservationResponse, 0, len(list)),
		Total:        len(list),
	}
	for _, r := range list {
		out.Reservations = append(out.Reservations, *FromDomainReservation(r))
	}
	return out
}
