package create_reservation

import (
	"time"

	"github.com/m04kA/SMC-AssistantBooking/internal/domain"
	createReservation "github.com/m04kA/SMC-AssistantBooking/internal/usecase/create_reservation"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	ResourceID  string  `json:"resourceId"`
	AssistantID string  `json:"assistantId"`
	Comment     *string `json:"comment,omitempty"`
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ID              string  `json:"id"`
	Kind            string  `json:"kind"`
	ResourceID      string  `json:"resourceId"`
	PeriodID        string  `json:"periodId"`
	ResourceDate    string  `json:"resourceDate"`
	ResourceWeekday string  `json:"resourceWeekday"`
	ResourceTime    string  `json:"resourceTime"`
	AssistantID     string  `json:"assistantId"`
	AssistantType   int     `json:"assistantType"`
	AssistantName   string  `json:"assistantName"`
	BookedBy        string  `json:"bookedBy"`
	BookedAt        string  `json:"bookedAt"`
	Comment         *string `json:"comment,omitempty"`
	Status          string  `json:"status"`
	StatusMessage   *string `json:"statusMessage,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateReservationRequest) ToUseCaseRequest(userID string, kind domain.ResourceKind) *createReservation.Request {
	return &createReservation.Request{
		UserID:      userID,
		Kind:        kind,
		ResourceID:  r.ResourceID,
		AssistantID: r.AssistantID,
		Comment:     r.Comment,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createReservation.Response) *ReservationResponse {
	return &ReservationResponse{
		ID:              resp.ID,
		Kind:            string(resp.Kind),
		ResourceID:      resp.ResourceID,
		PeriodID:        resp.PeriodID,
		ResourceDate:    resp.ResourceDate.Format(domain.DateFormat),
		ResourceWeekday: resp.ResourceWeekday,
		ResourceTime:    resp.ResourceTime,
		AssistantID:     resp.AssistantID,
		AssistantType:   resp.AssistantType,
		AssistantName:   resp.AssistantName,
		BookedBy:        resp.BookedBy,
		BookedAt:        resp.BookedAt.Format(time.RFC3339),
		Comment:         resp.Comment,
		Status:          string(resp.Status),
		StatusMessage:   resp.StatusMessage,
	}
}
