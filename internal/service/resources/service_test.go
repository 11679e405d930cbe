package resources_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AssistantBooking/internal/domain"
	"github.com/m04kA/SMC-AssistantBooking/internal/service/resources"
	"github.com/m04kA/SMC-AssistantBooking/internal/service/resources/models"
	"github.com/m04kA/SMC-AssistantBooking/internal/testfixtures"
	"github.com/m04kA/SMC-AssistantBooking/pkg/logger"
)

func newService(w *testfixtures.World) *resources.Service {
	return resources.NewService(w.Resources, w.Periods, w.Access, w.Tx, logger.NewNop(),
		resources.WithIDGenerator(&testfixtures.IDs{Prefix: "rsc"}),
		resources.WithTimeProvider(w.Clock))
}

func validRequest() *models.CreateResourceRequest {
	return &models.CreateResourceRequest{
		UserID:         testfixtures.AdminID,
		PeriodID:       testfixtures.OpenPeriod,
		Date:           "2026-03-05",
		StartTime:      "14:00",
		EndTime:        "15:30",
		AssistantSlots: []int{2, 0, 1},
	}
}

func TestService_Create(t *testing.T) {
	w := testfixtures.NewWorld()
	svc := newService(w)

	resp, err := svc.Create(context.Background(), domain.KindTimeslot, validRequest())
	require.NoError(t, err)
	assert.Equal(t, "rsc-1", resp.ID)
	assert.Equal(t, "timeslot", resp.Kind)
	assert.Equal(t, "Thursday", resp.Weekday)
	assert.Equal(t, "typed", resp.SlotMode)
	assert.Equal(t, []int{0, 0, 0}, resp.AssistantAllocations)
	assert.Equal(t, []int{2, 0, 1}, resp.FreeSlots)
	assert.Empty(t, resp.AcceptedReservationIDs)

	stored, ok := w.Store.Resource("rsc-1")
	require.True(t, ok)
	assert.NoError(t, stored.Ledger.Validate())
}

func TestService_CreateTypelessActivity(t *testing.T) {
	w := testfixtures.NewWorld()
	svc := newService(w)
	req := validRequest()
	req.Typeless = true
	req.AssistantSlots = []int{5}

	resp, err := svc.Create(context.Background(), domain.KindActivity, req)
	require.NoError(t, err)
	assert.Equal(t, "typeless", resp.SlotMode)
}

func TestService_CreateValidation(t *testing.T) {
	tests := []struct {
		name    string
		kind    domain.ResourceKind
		mutate  func(r *models.CreateResourceRequest)
		wantErr error
	}{
		{name: "typeless timeslot", kind: domain.KindTimeslot, mutate: func(r *models.CreateResourceRequest) {
			r.Typeless = true
			r.AssistantSlots = []int{1}
		}, wantErr: resources.ErrInvalidInput},
		{name: "typeless with several buckets", kind: domain.KindActivity, mutate: func(r *models.CreateResourceRequest) { r.Typeless = true }, wantErr: resources.ErrInvalidInput},
		{name: "negative slots", kind: domain.KindTimeslot, mutate: func(r *models.CreateResourceRequest) { r.AssistantSlots = []int{-1} }, wantErr: resources.ErrInvalidInput},
		{name: "no slots", kind: domain.KindTimeslot, mutate: func(r *models.CreateResourceRequest) { r.AssistantSlots = nil }, wantErr: resources.ErrInvalidInput},
		{name: "bad date", kind: domain.KindTimeslot, mutate: func(r *models.CreateResourceRequest) { r.Date = "05.03.2026" }, wantErr: resources.ErrInvalidInput},
		{name: "bad time", kind: domain.KindTimeslot, mutate: func(r *models.CreateResourceRequest) { r.StartTime = "25:00" }, wantErr: resources.ErrInvalidInput},
		{name: "end before start", kind: domain.KindTimeslot, mutate: func(r *models.CreateResourceRequest) { r.EndTime = "13:00" }, wantErr: resources.ErrInvalidInput},
		{name: "period missing", kind: domain.KindTimeslot, mutate: func(r *models.CreateResourceRequest) { r.PeriodID = "nope" }, wantErr: resources.ErrPeriodNotFound},
		{name: "not admin", kind: domain.KindTimeslot, mutate: func(r *models.CreateResourceRequest) { r.UserID = testfixtures.UserID }, wantErr: resources.ErrAccessDenied},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := testfixtures.NewWorld()
			req := validRequest()
			tt.mutate(req)

			_, err := newService(w).Create(context.Background(), tt.kind, req)
			assert.ErrorIs(t, err, tt.wantErr)

			_, created := w.Store.Resource("rsc-1")
			assert.False(t, created)
		})
	}
}

func TestService_GetAndDelete(t *testing.T) {
	w := testfixtures.NewWorld()
	res := testfixtures.Resource("act-1", domain.KindActivity, testfixtures.OpenPeriod, domain.SlotModeTyped, 1)
	a := testfixtures.Assistant("a-1", 0)
	w.Store.PutResource(res)
	w.Store.PutReservation(testfixtures.Reservation("r1", res, a, domain.StatusRequested))
	svc := newService(w)
	ctx := context.Background()

	resp, err := svc.GetByID(ctx, domain.KindActivity, "act-1")
	require.NoError(t, err)
	assert.Equal(t, []int{1}, resp.FreeSlots)

	_, err = svc.GetByID(ctx, domain.KindTimeslot, "act-1")
	assert.ErrorIs(t, err, resources.ErrResourceNotFound)

	assert.ErrorIs(t, svc.Delete(ctx, domain.KindActivity, "act-1", testfixtures.UserID), resources.ErrAccessDenied)
	require.NoError(t, svc.Delete(ctx, domain.KindActivity, "act-1", testfixtures.AdminID))

	_, ok := w.Store.Resource("act-1")
	assert.False(t, ok)
	_, ok = w.Store.Reservation("r1")
	assert.False(t, ok, "reservations are deleted with their resource")

	assert.ErrorIs(t, svc.Delete(ctx, domain.KindActivity, "act-1", testfixtures.AdminID), resources.ErrResourceNotFound)
}

func TestService_ListByPeriod(t *testing.T) {
	w := testfixtures.NewWorld()
	late := testfixtures.Resource("ts-late", domain.KindTimeslot, testfixtures.OpenPeriod, domain.SlotModeTyped, 1)
	late.StartTime = "16:00"
	early := testfixtures.Resource("ts-early", domain.KindTimeslot, testfixtures.OpenPeriod, domain.SlotModeTyped, 1)
	w.Store.PutResource(late)
	w.Store.PutResource(early)
	w.Store.PutResource(testfixtures.Resource("act-1", domain.KindActivity, testfixtures.OpenPeriod, domain.SlotModeTyped, 1))
	w.Store.PutResource(testfixtures.Resource("ts-closed", domain.KindTimeslot, testfixtures.ClosedPeriod, domain.SlotModeTyped, 1))
	svc := newService(w)
	ctx := context.Background()

	resp, err := svc.ListByPeriod(ctx, domain.KindTimeslot, testfixtures.OpenPeriod)
	require.NoError(t, err)
	require.Equal(t, 2, resp.Total)
	assert.Equal(t, "ts-early", resp.Resources[0].ID)
	assert.Equal(t, "ts-late", resp.Resources[1].ID)

	_, err = svc.ListByPeriod(ctx, domain.KindTimeslot, "nope")
	assert.ErrorIs(t, err, resources.ErrPeriodNotFound)
}

func TestService_ListOpen(t *testing.T) {
	w := testfixtures.NewWorld()
	w.Store.PutResource(testfixtures.Resource("ts-open", domain.KindTimeslot, testfixtures.OpenPeriod, domain.SlotModeTyped, 1))
	w.Store.PutResource(testfixtures.Resource("ts-closed", domain.KindTimeslot, testfixtures.ClosedPeriod, domain.SlotModeTyped, 1))
	past := testfixtures.Resource("ts-past", domain.KindTimeslot, testfixtures.OpenPeriod, domain.SlotModeTyped, 1)
	past.Date = testfixtures.Now.AddDate(0, 0, -1)
	w.Store.PutResource(past)
	today := testfixtures.Resource("ts-today", domain.KindTimeslot, testfixtures.OpenPeriod, domain.SlotModeTyped, 1)
	today.Date = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	w.Store.PutResource(today)
	w.Store.PutResource(testfixtures.Resource("act-open", domain.KindActivity, testfixtures.OpenPeriod, domain.SlotModeTyped, 1))
	svc := newService(w)

	resp, err := svc.ListOpen(context.Background(), domain.KindTimeslot)
	require.NoError(t, err)
	require.Equal(t, 2, resp.Total)
	assert.Equal(t, "ts-today", resp.Resources[0].ID)
	assert.Equal(t, "ts-open", resp.Resources[1].ID)

	w.Resources.Err = errors.New("connection refused")
	_, err = svc.ListOpen(context.Background(), domain.KindTimeslot)
	assert.ErrorIs(t, err, resources.ErrInternal)
}

func TestService_UpdateSlots(t *testing.T) {
	w := testfixtures.NewWorld()
	res := testfixtures.Resource("ts-1", domain.KindTimeslot, testfixtures.OpenPeriod, domain.SlotModeTyped, 2, 1)
	res.Ledger.Allocations = []int{2, 0}
	res.Ledger.Accepted = []string{"r1", "r2"}
	w.Store.PutResource(res)
	typeless := testfixtures.Resource("act-1", domain.KindActivity, testfixtures.OpenPeriod, domain.SlotModeTypeless, 3)
	w.Store.PutResource(typeless)
	svc := newService(w)
	ctx := context.Background()

	resp, err := svc.UpdateSlots(ctx, domain.KindTimeslot, "ts-1", &models.UpdateSlotsRequest{
		UserID:         testfixtures.AdminID,
		AssistantSlots: []int{4, 1, 2},
	})
	require.NoError(t, err)
	assert.Equal(t, []int{4, 1, 2}, resp.AssistantSlots)
	assert.Equal(t, []int{2, 0, 0}, resp.AssistantAllocations)
	assert.Equal(t, []int{2, 1, 2}, resp.FreeSlots)

	stored := func() domain.Ledger {
		r, ok := w.Store.Resource("ts-1")
		require.True(t, ok)
		return r.Ledger
	}
	assert.Equal(t, []string{"r1", "r2"}, stored().Accepted)
	storedLedger := stored()
	assert.NoError(t, storedLedger.Validate())

	tests := []struct {
		name    string
		kind    domain.ResourceKind
		id      string
		userID  string
		slots   []int
		wantErr error
	}{
		{name: "below allocated", kind: domain.KindTimeslot, id: "ts-1", userID: testfixtures.AdminID, slots: []int{1, 1, 2}, wantErr: resources.ErrSlotsInUse},
		{name: "empty", kind: domain.KindTimeslot, id: "ts-1", userID: testfixtures.AdminID, slots: []int{}, wantErr: resources.ErrInvalidInput},
		{name: "negative", kind: domain.KindTimeslot, id: "ts-1", userID: testfixtures.AdminID, slots: []int{4, -1}, wantErr: resources.ErrInvalidInput},
		{name: "too large", kind: domain.KindTimeslot, id: "ts-1", userID: testfixtures.AdminID, slots: []int{domain.MaxSlotsPerType + 1}, wantErr: resources.ErrInvalidInput},
		{name: "typeless needs one value", kind: domain.KindActivity, id: "act-1", userID: testfixtures.AdminID, slots: []int{1, 1}, wantErr: resources.ErrInvalidInput},
		{name: "wrong kind", kind: domain.KindActivity, id: "ts-1", userID: testfixtures.AdminID, slots: []int{4}, wantErr: resources.ErrResourceNotFound},
		{name: "missing", kind: domain.KindTimeslot, id: "nope", userID: testfixtures.AdminID, slots: []int{4}, wantErr: resources.ErrResourceNotFound},
		{name: "not admin", kind: domain.KindTimeslot, id: "ts-1", userID: testfixtures.UserID, slots: []int{4}, wantErr: resources.ErrAccessDenied},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.UpdateSlots(ctx, tt.kind, tt.id, &models.UpdateSlotsRequest{UserID: tt.userID, AssistantSlots: tt.slots})
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, []int{4, 1, 2}, stored().Slots)
		})
	}

	resp, err = svc.UpdateSlots(ctx, domain.KindTimeslot, "ts-1", &models.UpdateSlotsRequest{
		UserID:         testfixtures.AdminID,
		AssistantSlots: []int{2},
	})
	require.NoError(t, err)
	assert.Equal(t, []int{2}, resp.AssistantAllocations)
	assert.Equal(t, []int{0}, resp.FreeSlots)
}
