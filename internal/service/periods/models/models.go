package models

import (
	"time"

	"github.com/m04kA/SMC-AssistantBooking/internal/domain"
)

// CreatePeriodRequest запрос на создание периода
type CreatePeriodRequest struct {
	UserID      string  `json:"-"`
	Name        string  `json:"name"`
	From        string  `json:"from"` // "2026-03-01"
	To          string  `json:"to"`
	Description *string `json:"description,omitempty"`
}

// UpdateStatusRequest запрос на смену статуса периода
type UpdateStatusRequest struct {
	UserID string `json:"-"`
	Status string `json:"status"`
}

// PeriodResponse ответ с данными периода
type PeriodResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	From        string    `json:"from"` // "2026-03-01"
	To          string    `json:"to"`
	Status      string    `json:"status"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// FromDomainPeriod конвертирует domain модель в response
func FromDomainPeriod(p *domain.Period) *PeriodResponse {
	return &PeriodResponse{
		ID:          p.ID,
		Name:        p.Name,
		From:        p.From.Format(domain.DateFormat),
		To:          p.To.Format(domain.DateFormat),
		Status:      string(p.Status),
		Description: p.Description,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// PeriodListResponse список периодов
type PeriodListResponse struct {
	Periods []PeriodResponse `json:"periods"`
	Total   int              `json:"total"`
}

// FromDomainPeriodList конвертирует список domain моделей в response
func FromDomainPeriodList(list []*domain.Period) *PeriodListResponse {
	out := &PeriodListResponse{
		Periods: make([]PeriodResponse, 0, len(list)),
		Total:   len(list),
	}
	for _, p := range list {
		out.Periods = append(out.Periods, *FromDomainPeriod(p))
	}
	return out
}
