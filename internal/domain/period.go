package domain

import "time"

// PeriodStatus represents the lifecycle state of a period
type PeriodStatus string

const (
	PeriodPrepare  PeriodStatus = "PREPARE"
	PeriodOpen     PeriodStatus = "OPEN"
	PeriodClosed   PeriodStatus = "CLOSED"
	PeriodArchived PeriodStatus = "ARCHIVED"
)

// PeriodStatuses lists every valid period status
var PeriodStatuses = []PeriodStatus{
	PeriodPrepare,
	PeriodOpen,
	PeriodClosed,
	PeriodArchived,
}

// IsValid returns true if the status is one of the known values
func (s PeriodStatus) IsValid() bool {
	for _, valid := range PeriodStatuses {
		if s == valid {
			return true
		}
	}
	return false
}

// Period is a named calendar window that gates reservation mutations
type Period struct {
	ID          string
	Name        string
	From        time.Time
	To          time.Time
	Status      PeriodStatus
	Description *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsOpen returns true if reservations on the period's resources may be mutated
func (p *Period) IsOpen() bool {
	return p != nil && p.Status == PeriodOpen
}

// PeriodFilter фильтр для списка периодов
type PeriodFilter struct {
	Status *PeriodStatus
}
