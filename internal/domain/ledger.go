package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidLedger is returned when a capacity ledger violates its invariants
var ErrInvalidLedger = errors.New("domain: invalid capacity ledger")

// Ledger is the capacity ledger stored on a resource.
//
// Slots[t] is the capacity of assistant type t, Allocations[t] the number of
// accepted reservations currently counted against it and Accepted the ids of
// those reservations. TryAllocate and Release are the only mutations.
type Ledger struct {
	Slots       []int
	Allocations []int
	Accepted    []string
}

// NewLedger creates a ledger with a zero allocation vector sized to slots
func NewLedger(slots []int) (Ledger, error) {
	if err := validateSlots(slots); err != nil {
		return Ledger{}, err
	}

	copied := make([]int, len(slots))
	copy(copied, slots)
	return Ledger{
		Slots:       copied,
		Allocations: make([]int, len(slots)),
		Accepted:    []string{},
	}, nil
}

// Resize replaces the slot vector and keeps the current allocations.
// A bucket can not shrink below its allocated count and a bucket that is
// dropped must have no allocations.
func (l *Ledger) Resize(slots []int) error {
	if err := validateSlots(slots); err != nil {
		return err
	}
	for t, allocated := range l.Allocations {
		if t >= len(slots) {
			if allocated > 0 {
				return fmt.Errorf("%w: type %d still has %d allocations", ErrInvalidLedger, t, allocated)
			}
			continue
		}
		if allocated > slots[t] {
			return fmt.Errorf("%w: type %d allocated %d of %d", ErrInvalidLedger, t, allocated, slots[t])
		}
	}

	copied := make([]int, len(slots))
	copy(copied, slots)
	l.Slots = copied
	l.Normalize()
	if l.Accepted == nil {
		l.Accepted = []string{}
	}
	return nil
}

func validateSlots(slots []int) error {
	if len(slots) == 0 {
		return fmt.Errorf("%w: at least one slot bucket is required", ErrInvalidLedger)
	}
	if len(slots) > MaxAssistantTypes {
		return fmt.Errorf("%w: at most %d slot buckets are allowed", ErrInvalidLedger, MaxAssistantTypes)
	}
	for i, s := range slots {
		if s < 0 {
			return fmt.Errorf("%w: slot %d is negative", ErrInvalidLedger, i)
		}
	}
	return nil
}

// Normalize resizes a missing or malformed allocation vector to the length of
// Slots. Existing counts are kept where the index still exists.
func (l *Ledger) Normalize() {
	if len(l.Allocations) == len(l.Slots) {
		return
	}
	allocations := make([]int, len(l.Slots))
	copy(allocations, l.Allocations)
	l.Allocations = allocations
}

// Capacity returns the slot count for type t, 0 when t is out of range
func (l *Ledger) Capacity(t int) int {
	if t < 0 || t >= len(l.Slots) {
		return 0
	}
	return l.Slots[t]
}

// Allocated returns the allocated count for type t, 0 when t is out of range
func (l *Ledger) Allocated(t int) int {
	if t < 0 || t >= len(l.Allocations) {
		return 0
	}
	return l.Allocations[t]
}

// Free returns the remaining capacity for type t
func (l *Ledger) Free(t int) int {
	free := l.Capacity(t) - l.Allocated(t)
	if free < 0 {
		return 0
	}
	return free
}

// IsAccepted returns true if the reservation id is counted in the ledger
func (l *Ledger) IsAccepted(reservationID string) bool {
	return l.indexOf(reservationID) >= 0
}

// TryAllocate grants one unit of type t to the reservation.
// An already accepted reservation is granted again without a second unit.
func (l *Ledger) TryAllocate(t int, reservationID string) bool {
	if l.IsAccepted(reservationID) {
		return true
	}

	l.Normalize()
	available := l.Capacity(t)
	if available <= 0 || l.Allocated(t) >= available {
		return false
	}

	l.Allocations[t]++
	l.Accepted = append(l.Accepted, reservationID)
	return true
}

// Release returns the unit held by the reservation to type t.
// It reports false and leaves the ledger untouched when the reservation is
// not counted in the ledger.
func (l *Ledger) Release(t int, reservationID string) bool {
	idx := l.indexOf(reservationID)
	if idx < 0 {
		return false
	}

	l.Normalize()
	if t >= 0 && t < len(l.Allocations) && l.Allocations[t] > 0 {
		l.Allocations[t]--
	}
	accepted := make([]string, 0, len(l.Accepted)-1)
	accepted = append(accepted, l.Accepted[:idx]...)
	l.Accepted = append(accepted, l.Accepted[idx+1:]...)
	return true
}

// Validate checks the invariants that can be verified without reservations
func (l *Ledger) Validate() error {
	if len(l.Allocations) != len(l.Slots) {
		return fmt.Errorf("%w: %d allocations for %d slots", ErrInvalidLedger, len(l.Allocations), len(l.Slots))
	}

	total := 0
	for t := range l.Slots {
		if l.Allocations[t] < 0 {
			return fmt.Errorf("%w: negative allocation for type %d", ErrInvalidLedger, t)
		}
		if l.Allocations[t] > l.Slots[t] {
			return fmt.Errorf("%w: type %d allocated %d of %d", ErrInvalidLedger, t, l.Allocations[t], l.Slots[t])
		}
		total += l.Allocations[t]
	}

	if total != len(l.Accepted) {
		return fmt.Errorf("%w: %d allocations but %d accepted reservations", ErrInvalidLedger, total, len(l.Accepted))
	}
	return nil
}

func (l *Ledger) indexOf(reservationID string) int {
	for i, id := range l.Accepted {
		if id == reservationID {
			return i
		}
	}
	return -1
}
