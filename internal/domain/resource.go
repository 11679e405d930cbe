package domain

import (
	"strconv"
	"time"

	"github.com/m04kA/SMC-AssistantBooking/pkg/types"
)

// ResourceKind distinguishes the two bookable resource families
type ResourceKind string

const (
	KindTimeslot ResourceKind = "timeslot"
	KindActivity ResourceKind = "activity"
)

// IsValid returns true if the kind is known
func (k ResourceKind) IsValid() bool {
	return k == KindTimeslot || k == KindActivity
}

// SupportsTypeless returns true if resources of this kind may use a single
// undivided capacity bucket
func (k ResourceKind) SupportsTypeless() bool {
	return k == KindActivity
}

// SlotMode selects how a reservation is mapped to a capacity bucket
type SlotMode string

const (
	// SlotModeTyped uses one bucket per assistant type
	SlotModeTyped SlotMode = "typed"
	// SlotModeTypeless uses bucket 0 for every reservation
	SlotModeTypeless SlotMode = "typeless"
)

// IsValid returns true if the mode is known
func (m SlotMode) IsValid() bool {
	return m == SlotModeTyped || m == SlotModeTypeless
}

// Resource is a bookable unit of capacity (timeslot or activity)
type Resource struct {
	ID          string
	Kind        ResourceKind
	PeriodID    string
	Date        time.Time
	StartTime   types.TimeString
	EndTime     types.TimeString
	Color       *string
	Description *string
	SlotMode    SlotMode
	Ledger      Ledger
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// EffectiveTypeIndex returns the capacity bucket for an assistant type
func (r *Resource) EffectiveTypeIndex(assistantType int) int {
	if r.SlotMode == SlotModeTypeless {
		return 0
	}
	return assistantType
}

// BucketLabel names the bucket in status messages: the type index or "typeless"
func (r *Resource) BucketLabel(typeIndex int) string {
	if r.SlotMode == SlotModeTypeless {
		return "typeless"
	}
	return strconv.Itoa(typeIndex)
}

// Weekday returns the English weekday name of the resource date
func (r *Resource) Weekday() string {
	return r.Date.Weekday().String()
}

// TimeRange returns "HH:MM - HH:MM"
func (r *Resource) TimeRange() string {
	return r.StartTime.String() + " - " + r.EndTime.String()
}

// ResourceFilter фильтр для списка ресурсов
type ResourceFilter struct {
	Kind         *ResourceKind
	PeriodID     *string
	PeriodStatus *PeriodStatus
	FromDate     *time.Time
}
