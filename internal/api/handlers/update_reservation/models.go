package update_reservation

import (
	"time"

	"github.com/m04kA/SMC-AssistantBooking/internal/domain"
	updateReservation "github.com/m04kA/SMC-AssistantBooking/internal/usecase/update_reservation"
)

// UpdateReservationRequest HTTP request model
type UpdateReservationRequest struct {
	Status  *string `json:"status,omitempty"`
	Comment *string `json:"comment,omitempty"`
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
	UpdatedBy       *string `json:"updatedBy,omitempty"`
	UpdatedAt       *string `json:"updatedAt,omitempty"`
	Comment         *string `json:"comment,omitempty"`
	Status          string  `json:"status"`
	StatusMessage   *string `json:"statusMessage,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *UpdateReservationRequest) ToUseCaseRequest(userID, reservationID string, kind domain.ResourceKind) *updateReservation.Request {
	return &updateReservation.Request{
		UserID:        userID,
		Kind:          kind,
		ReservationID: reservationID,
		Status:        r.Status,
		Comment:       r.Comment,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *updateReservation.Response) *ReservationResponse {
	out := &ReservationResponse{
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
		UpdatedBy:       resp.UpdatedBy,
		Comment:         resp.Comment,
		Status:          string(resp.Status),
		StatusMessage:   resp.StatusMessage,
	}
	if resp.UpdatedAt != nil {
		updatedAt := resp.UpdatedAt.Format(time.RFC3339)
		out.UpdatedAt = &updatedAt
	}
	return out
}
