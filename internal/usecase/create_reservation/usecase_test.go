package create_reservation_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AssistantBooking/internal/domain"
	"github.com/m04kA/SMC-AssistantBooking/internal/service/allocation"
	"github.com/m04kA/SMC-AssistantBooking/internal/service/periodgate"
	"github.com/m04kA/SMC-AssistantBooking/internal/testfixtures"
	uc "github.com/m04kA/SMC-AssistantBooking/internal/usecase/create_reservation"
	"github.com/m04kA/SMC-AssistantBooking/pkg/logger"
)

func newUseCase(w *testfixtures.World) *uc.UseCase {
	log := logger.NewNop()
	gate := periodgate.NewService(w.Periods, log)
	engine := allocation.NewService(w.Resources, w.Reservations, gate, w.Tx, w.Metrics, log)
	return uc.NewUseCase(w.Resources, w.Assistants, w.Reservations, gate, w.Access, engine, log,
		uc.WithTimeProvider(w.Clock), uc.WithIDGenerator(w.IDs))
}

func request(resourceID, assistantID string) *uc.Request {
	return &uc.Request{
		UserID:      testfixtures.AdminID,
		Kind:        domain.KindTimeslot,
		ResourceID:  resourceID,
		AssistantID: assistantID,
	}
}

func TestExecute_TypedScenario(t *testing.T) {
	w := testfixtures.NewWorld()
	w.Store.PutResource(testfixtures.Resource("ts-1", domain.KindTimeslot, testfixtures.OpenPeriod, domain.SlotModeTyped, 2, 1))
	w.Store.PutAssistant(testfixtures.Assistant("a-0", 0))
	w.Store.PutAssistant(testfixtures.Assistant("a-1", 0))
	w.Store.PutAssistant(testfixtures.Assistant("a-2", 0))
	usecase := newUseCase(w)
	ctx := context.Background()

	for _, a := range []string{"a-0", "a-1"} {
		resp, err := usecase.Execute(ctx, request("ts-1", a))
		require.NoError(t, err)
		assert.Equal(t, domain.StatusAccepted, resp.Status)
	}

	resp, err := usecase.Execute(ctx, request("ts-1", "a-2"))
	require.NoError(t, err)
	assert.Equal(t, domain.StatusRejected, resp.Status)
	require.NotNil(t, resp.StatusMessage)
	assert.Contains(t, *resp.StatusMessage, "0")

	res, _ := w.Store.Resource("ts-1")
	assert.Equal(t, []int{2, 0}, res.Ledger.Allocations)
	assert.Len(t, res.Ledger.Accepted, 2)
}

func TestExecute_DenormalizesResourceAndAssistant(t *testing.T) {
	w := testfixtures.NewWorld()
	w.Store.PutResource(testfixtures.Resource("ts-1", domain.KindTimeslot, testfixtures.OpenPeriod, domain.SlotModeTyped, 0, 1))
	w.Store.PutAssistant(testfixtures.Assistant("a-1", 1))
	w.Access.Grant(testfixtures.UserID, "a-1")
	usecase := newUseCase(w)
	comment := "first visit"

	resp, err := usecase.Execute(context.Background(), &uc.Request{
		UserID:      testfixtures.UserID,
		Kind:        domain.KindTimeslot,
		ResourceID:  "ts-1",
		AssistantID: "a-1",
		Comment:     &comment,
	})
	require.NoError(t, err)

	assert.Equal(t, "res-1", resp.ID)
	assert.Equal(t, testfixtures.OpenPeriod, resp.PeriodID)
	assert.Equal(t, "Wednesday", resp.ResourceWeekday)
	assert.Equal(t, "09:00 - 10:00", resp.ResourceTime)
	assert.Equal(t, 1, resp.AssistantType)
	assert.Equal(t, "Assistant a-1", resp.AssistantName)
	assert.Equal(t, testfixtures.UserID, resp.BookedBy)
	assert.Equal(t, testfixtures.Now, resp.BookedAt)
	assert.Equal(t, &comment, resp.Comment)
	assert.Equal(t, domain.StatusAccepted, resp.Status)

	stored, ok := w.Store.Reservation("res-1")
	require.True(t, ok)
	assert.Equal(t, domain.StatusAccepted, stored.Status)
}

func TestExecute_TypelessActivity(t *testing.T) {
	w := testfixtures.NewWorld()
	w.Store.PutResource(testfixtures.Resource("act-1", domain.KindActivity, testfixtures.OpenPeriod, domain.SlotModeTypeless, 3))
	for i, typ := range []int{0, 2, 5, 1} {
		w.Store.PutAssistant(testfixtures.Assistant(string(rune('a'+i)), typ))
	}
	usecase := newUseCase(w)
	ctx := context.Background()

	statuses := make([]domain.ReservationStatus, 0, 4)
	var last *uc.Response
	for _, a := range []string{"a", "b", "c", "d"} {
		resp, err := usecase.Execute(ctx, &uc.Request{
			UserID:      testfixtures.AdminID,
			Kind:        domain.KindActivity,
			ResourceID:  "act-1",
			AssistantID: a,
		})
		require.NoError(t, err)
		statuses = append(statuses, resp.Status)
		last = resp
	}

	assert.Equal(t, []domain.ReservationStatus{
		domain.StatusAccepted, domain.StatusAccepted, domain.StatusAccepted, domain.StatusRejected,
	}, statuses)
	assert.Contains(t, *last.StatusMessage, "typeless")
}

func TestExecute_Errors(t *testing.T) {
	tests := []struct {
		name    string
		prepare func(w *testfixtures.World, req *uc.Request)
		wantErr error
	}{
		{
			name:    "missing resource id",
			prepare: func(_ *testfixtures.World, req *uc.Request) { req.ResourceID = "" },
			wantErr: uc.ErrInvalidInput,
		},
		{
			name:    "missing assistant id",
			prepare: func(_ *testfixtures.World, req *uc.Request) { req.AssistantID = " " },
			wantErr: uc.ErrInvalidInput,
		},
		{
			name:    "unknown kind",
			prepare: func(_ *testfixtures.World, req *uc.Request) { req.Kind = "room" },
			wantErr: uc.ErrInvalidInput,
		},
		{
			name:    "resource not found",
			prepare: func(_ *testfixtures.World, req *uc.Request) { req.ResourceID = "nope" },
			wantErr: uc.ErrResourceNotFound,
		},
		{
			name:    "resource of another kind",
			prepare: func(_ *testfixtures.World, req *uc.Request) { req.Kind = domain.KindActivity },
			wantErr: uc.ErrResourceNotFound,
		},
		{
			name:    "closed period",
			prepare: func(_ *testfixtures.World, req *uc.Request) { req.ResourceID = "ts-closed" },
			wantErr: uc.ErrPeriodClosed,
		},
		{
			name:    "orphan resource",
			prepare: func(_ *testfixtures.World, req *uc.Request) { req.ResourceID = "ts-orphan" },
			wantErr: uc.ErrInternal,
		},
		{
			name:    "assistant not found",
			prepare: func(_ *testfixtures.World, req *uc.Request) { req.AssistantID = "nope" },
			wantErr: uc.ErrAssistantNotFound,
		},
		{
			name: "assistant disabled",
			prepare: func(w *testfixtures.World, req *uc.Request) {
				a := testfixtures.Assistant("a-off", 0)
				a.Disabled = true
				w.Store.PutAssistant(a)
				req.AssistantID = "a-off"
			},
			wantErr: uc.ErrAssistantDisabled,
		},
		{
			name:    "not authorized",
			prepare: func(_ *testfixtures.World, req *uc.Request) { req.UserID = testfixtures.OutsiderID },
			wantErr: uc.ErrAccessDenied,
		},
		{
			name:    "access service down",
			prepare: func(w *testfixtures.World, _ *uc.Request) { w.Access.Err = errors.New("timeout") },
			wantErr: uc.ErrInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := testfixtures.NewWorld()
			w.Store.PutResource(testfixtures.Resource("ts-1", domain.KindTimeslot, testfixtures.OpenPeriod, domain.SlotModeTyped, 1))
			w.Store.PutResource(testfixtures.Resource("ts-closed", domain.KindTimeslot, testfixtures.ClosedPeriod, domain.SlotModeTyped, 1))
			w.Store.PutResource(testfixtures.Resource("ts-orphan", domain.KindTimeslot, "period-gone", domain.SlotModeTyped, 1))
			w.Store.PutAssistant(testfixtures.Assistant("a-1", 0))
			req := request("ts-1", "a-1")
			tt.prepare(w, req)

			_, err := newUseCase(w).Execute(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)

			_, persisted := w.Store.Reservation("res-1")
			assert.False(t, persisted, "nothing must be persisted on failure")
			for _, id := range []string{"ts-1", "ts-closed"} {
				res, _ := w.Store.Resource(id)
				assert.Equal(t, []int{0}, res.Ledger.Allocations)
			}
		})
	}
}
