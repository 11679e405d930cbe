package testfixtures

import (
	"time"

	"github.com/m04kA/SMC-AssistantBooking/internal/domain"
	"github.com/m04kA/SMC-AssistantBooking/pkg/types"
)

// Fixed identifiers used by the seeded world
const (
	AdminID      = "admin-1"
	UserID       = "user-1"
	OutsiderID   = "user-2"
	OpenPeriod   = "period-open"
	ClosedPeriod = "period-closed"
)

// Now is the fixed time used by seeded data and the default clock
var Now = time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)

// Period builds a period in the given status
func Period(id string, status domain.PeriodStatus) domain.Period {
	return domain.Period{
		ID:     id,
		Name:   id,
		From:   Now.AddDate(0, 0, -7),
		To:     Now.AddDate(0, 1, 0),
		Status: status,
	}
}

// Resource builds a resource with a fresh ledger for slots
func Resource(id string, kind domain.ResourceKind, periodID string, mode domain.SlotMode, slots ...int) domain.Resource {
	ledger, err := domain.NewLedger(slots)
	if err != nil {
		panic(err)
	}
	return domain.Resource{
		ID:        id,
		Kind:      kind,
		PeriodID:  periodID,
		Date:      time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC),
		StartTime: types.TimeString("09:00"),
		EndTime:   types.TimeString("10:00"),
		SlotMode:  mode,
		Ledger:    ledger,
	}
}

// Assistant builds an enabled assistant
func Assistant(id string, assistantType int) domain.Assistant {
	return domain.Assistant{
		ID:       id,
		Type:     assistantType,
		Fullname: "Assistant " + id,
	}
}

// Reservation builds a reservation on res for a in the given status
func Reservation(id string, res domain.Resource, a domain.Assistant, status domain.ReservationStatus) domain.Reservation {
	return domain.Reservation{
		ID:              id,
		Kind:            res.Kind,
		ResourceID:      res.ID,
		PeriodID:        res.PeriodID,
		ResourceDate:    res.Date,
		ResourceWeekday: res.Weekday(),
		ResourceTime:    res.TimeRange(),
		AssistantID:     a.ID,
		AssistantType:   a.Type,
		AssistantName:   a.Fullname,
		BookedBy:        UserID,
		BookedAt:        Now,
		Status:          status,
	}
}

// World is a store with repositories over it and the common collaborators
type World struct {
	Store        *Store
	Periods      *PeriodRepo
	Resources    *ResourceRepo
	Reservations *ReservationRepo
	Assistants   *AssistantRepo
	Tx           *TxManager
	Access       *Access
	Clock        Clock
	IDs          *IDs
	Metrics      *Metrics
}

// NewWorld creates a world with an open and a closed period, one admin
// and one user without grants
func NewWorld() *World {
	store := NewStore()
	store.PutPeriod(Period(OpenPeriod, domain.PeriodOpen))
	store.PutPeriod(Period(ClosedPeriod, domain.PeriodClosed))

	return &World{
		Store:        store,
		Periods:      &PeriodRepo{Store: store},
		Resources:    &ResourceRepo{Store: store},
		Reservations: &ReservationRepo{Store: store},
		Assistants:   &AssistantRepo{Store: store},
		Tx:           &TxManager{},
		Access:       NewAccess(AdminID),
		Clock:        Clock{T: Now},
		IDs:          &IDs{Prefix: "res"},
		Metrics:      &Metrics{},
	}
}
