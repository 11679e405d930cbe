package models

import (
	"time"

	"github.com/m04kA/SMC-AssistantBooking/internal/domain"
)

// CreateResourceRequest запрос на создание таймслота или активности
type CreateResourceRequest struct {
	UserID         string  `json:"-"`
	PeriodID       string  `json:"periodId"`
	Date           string  `json:"date"`      // "2026-03-04"
	StartTime      string  `json:"startTime"` // "09:00"
	EndTime        string  `json:"endTime"`   // "10:00"
	Color          *string `json:"color,omitempty"`
	Description    *string `json:"description,omitempty"`
	Typeless       bool    `json:"typelessSlots,omitempty"` // Только для активностей
	AssistantSlots []int   `json:"assistantSlots"`
}

// UpdateSlotsRequest запрос на изменение емкости ресурса
type UpdateSlotsRequest struct {
	UserID         string `json:"-"`
	AssistantSlots []int  `json:"assistantSlots"`
}

// ResourceResponse ответ с данными ресурса и его реестром мест
type ResourceResponse struct {
	ID                     string    `json:"id"`
	Kind                   string    `json:"kind"`
	PeriodID               string    `json:"periodId"`
	Date                   string    `json:"date"`
	Weekday                string    `json:"weekday"`
	StartTime              string    `json:"startTime"`
	EndTime                string    `json:"endTime"`
	Color                  *string   `json:"color,omitempty"`
	Description            *string   `json:"description,omitempty"`
	SlotMode               string    `json:"slotMode"`
	AssistantSlots         []int     `json:"assistantSlots"`
	AssistantAllocations   []int     `json:"assistantAllocations"`
	FreeSlots              []int     `json:"freeSlots"`
	AcceptedReservationIDs []string  `json:"acceptedReservationIds"`
	CreatedAt              time.Time `json:"createdAt"`
	UpdatedAt              time.Time `json:"updatedAt"`
}

// FromDomainResource конвертирует domain модель в response
func FromDomainResource(r *domain.Resource) *ResourceResponse {
	ledger := r.Ledger
	ledger.Normalize()

	free := make([]int, len(ledger.Slots))
	for t := range ledger.Slots {
		free[t] = ledger.Free(t)
	}

	accepted := ledger.Accepted
	if accepted == nil {
		accepted = []string{}
	}

	return &ResourceResponse{
		ID:                     r.ID,
		Kind:                   string(r.Kind),
		PeriodID:               r.PeriodID,
		Date:                   r.Date.Format(domain.DateFormat),
		Weekday:                r.Weekday(),
		StartTime:              r.StartTime.String(),
		EndTime:                r.EndTime.String(),
		Color:                  r.Color,
		Description:            r.Description,
		SlotMode:               string(r.SlotMode),
		AssistantSlots:         ledger.Slots,
		AssistantAllocations:   ledger.Allocations,
		FreeSlots:              free,
		AcceptedReservationIDs: accepted,
		CreatedAt:              r.CreatedAt,
		UpdatedAt:              r.UpdatedAt,
	}
}

// ResourceListResponse список ресурсов
type ResourceListResponse struct {
	Resources []ResourceResponse `json:"resources"`
	Total     int                `json:"total"`
}

// FromDomainResourceList конвертирует список domain моделей в response
func FromDomainResourceList(list []*domain.Resource) *ResourceListResponse {
	out := &ResourceListResponse{
		Resources: make([]ResourceResponse, 0, len(list)),
		Total:     len(list),
	}
	for _, r := range list {
		out.Resources = append(out.Resources, *FromDomainResource(r))
	}
	return out
}
