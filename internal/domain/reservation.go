package domain

import "time"

// ReservationStatus represents the allocation outcome of a reservation
type ReservationStatus string

const (
	StatusRequested ReservationStatus = "REQUESTED"
	StatusAccepted  ReservationStatus = "ACCEPTED"
	StatusRejected  ReservationStatus = "REJECTED"
	StatusRemoved   ReservationStatus = "REMOVED"
)

// ReservationStatuses lists every valid reservation status
var ReservationStatuses = []ReservationStatus{
	StatusRequested,
	StatusAccepted,
	StatusRejected,
	StatusRemoved,
}

// IsValid returns true if the status is one of the known values
func (s ReservationStatus) IsValid() bool {
	for _, valid := range ReservationStatuses {
		if s == valid {
			return true
		}
	}
	return false
}

// Reservation occupies one unit of a resource's capacity for one assistant
type Reservation struct {
	ID              string
	Kind            ResourceKind
	ResourceID      string
	PeriodID        string
	ResourceDate    time.Time
	ResourceWeekday string
	ResourceTime    string
	AssistantID     string
	AssistantType   int // Copied at creation, never re-read from the assistant
	AssistantName   string
	BookedBy        string
	BookedAt        time.Time
	UpdatedBy       *string
	UpdatedAt       *time.Time
	Comment         *string
	Status          ReservationStatus
	StatusMessage   *string
}

// IsTerminal returns true if the reservation can never re-enter the ledger
func (r *Reservation) IsTerminal() bool {
	return r.Status == StatusRemoved
}

// IsAccepted returns true if the reservation holds capacity
func (r *Reservation) IsAccepted() bool {
	return r.Status == StatusAccepted
}

// Finalize sets the status and replaces the status message
func (r *Reservation) Finalize(status ReservationStatus, message string) {
	r.Status = status
	if message == "" {
		r.StatusMessage = nil
		return
	}
	r.StatusMessage = &message
}

// Touch stamps the last update
func (r *Reservation) Touch(userID string, at time.Time) {
	r.UpdatedBy = &userID
	r.UpdatedAt = &at
}

// ReservationFilter фильтр для списка бронирований
type ReservationFilter struct {
	Kind        *ResourceKind
	ResourceID  *string
	PeriodID    *string
	AssistantID *string
	FromDate    *time.Time
	Statuses    []ReservationStatus
}
