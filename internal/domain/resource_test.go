package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestResource_EffectiveTypeIndex(t *testing.T) {
	typed := &Resource{SlotMode: SlotModeTyped}
	typeless := &Resource{SlotMode: SlotModeTypeless}

	assert.Equal(t, 2, typed.EffectiveTypeIndex(2))
	assert.Equal(t, 0, typeless.EffectiveTypeIndex(2))
	assert.Equal(t, "2", typed.BucketLabel(2))
	assert.Equal(t, "typeless", typeless.BucketLabel(0))
}

func TestResource_WeekdayAndTimeRange(t *testing.T) {
	r := &Resource{
		Date:      time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		StartTime: "09:00",
		EndTime:   "10:30",
	}

	assert.Equal(t, "Monday", r.Weekday())
	assert.Equal(t, "09:00 - 10:30", r.TimeRange())
}

func TestResourceKind(t *testing.T) {
	assert.True(t, KindTimeslot.IsValid())
	assert.True(t, KindActivity.IsValid())
	assert.False(t, ResourceKind("room").IsValid())
	assert.True(t, KindActivity.SupportsTypeless())
	assert.False(t, KindTimeslot.SupportsTypeless())
}

func TestPeriod_IsOpen(t *testing.T) {
	var missing *Period
	assert.False(t, missing.IsOpen())
	assert.True(t, (&Period{Status: PeriodOpen}).IsOpen())
	for _, s := range []PeriodStatus{PeriodPrepare, PeriodClosed, PeriodArchived} {
		assert.False(t, (&Period{Status: s}).IsOpen(), s)
	}
	assert.False(t, PeriodStatus("open").IsValid())
}

func TestReservation_Finalize(t *testing.T) {
	r := &Reservation{Status: StatusRequested}

	r.Finalize(StatusRejected, MsgPeriodNotOpen)
	assert.Equal(t, StatusRejected, r.Status)
	if assert.NotNil(t, r.StatusMessage) {
		assert.Equal(t, MsgPeriodNotOpen, *r.StatusMessage)
	}

	r.Finalize(StatusAccepted, "")
	assert.Nil(t, r.StatusMessage)
	assert.True(t, r.IsAccepted())
	assert.False(t, r.IsTerminal())

	r.Finalize(StatusRemoved, "")
	assert.True(t, r.IsTerminal())
}
