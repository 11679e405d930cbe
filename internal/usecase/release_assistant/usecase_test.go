package release_assistant_test

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
	uc "github.com/m04kA/SMC-AssistantBooking/internal/usecase/release_assistant"
	"github.com/m04kA/SMC-AssistantBooking/pkg/logger"
)

func setup(t *testing.T) (*testfixtures.World, *uc.UseCase) {
	t.Helper()
	w := testfixtures.NewWorld()
	log := logger.NewNop()
	gate := periodgate.NewService(w.Periods, log)
	engine := allocation.NewService(w.Resources, w.Reservations, gate, w.Tx, w.Metrics, log)

	a := testfixtures.Assistant("a-1", 0)
	other := testfixtures.Assistant("a-2", 0)
	w.Store.PutAssistant(a)
	w.Store.PutAssistant(other)

	open := testfixtures.Resource("ts-open", domain.KindTimeslot, testfixtures.OpenPeriod, domain.SlotModeTyped, 2)
	act := testfixtures.Resource("act-open", domain.KindActivity, testfixtures.OpenPeriod, domain.SlotModeTypeless, 1)
	closed := testfixtures.Resource("ts-closed", domain.KindTimeslot, testfixtures.ClosedPeriod, domain.SlotModeTyped, 1)
	past := testfixtures.Resource("ts-past", domain.KindTimeslot, testfixtures.OpenPeriod, domain.SlotModeTyped, 1)
	past.Date = testfixtures.Now.AddDate(0, 0, -3)
	for _, r := range []domain.Resource{open, act, closed, past} {
		w.Store.PutResource(r)
	}

	w.Store.PutReservation(testfixtures.Reservation("r-open", open, a, domain.StatusRequested))
	w.Store.PutReservation(testfixtures.Reservation("r-act", act, a, domain.StatusRequested))
	w.Store.PutReservation(testfixtures.Reservation("r-past", past, a, domain.StatusRequested))
	w.Store.PutReservation(testfixtures.Reservation("r-other", open, other, domain.StatusRequested))
	ctx := context.Background()
	for _, id := range []string{"r-open", "r-act", "r-past", "r-other"} {
		_, err := engine.ProcessRequest(ctx, id)
		require.NoError(t, err)
	}

	closedRes := testfixtures.Reservation("r-closed", closed, a, domain.StatusAccepted)
	w.Store.PutReservation(closedRes)
	closed.Ledger.Allocations = []int{1}
	closed.Ledger.Accepted = []string{"r-closed"}
	w.Store.PutResource(closed)

	return w, uc.NewUseCase(w.Assistants, w.Reservations, w.Access, engine, log, uc.WithTimeProvider(w.Clock))
}

func TestExecute_Disable(t *testing.T) {
	w, usecase := setup(t)

	resp, err := usecase.Execute(context.Background(), &uc.Request{
		UserID:      testfixtures.AdminID,
		AssistantID: "a-1",
		Mode:        uc.ModeDisable,
	})
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"r-open", "r-act"}, resp.Removed)
	assert.Equal(t, []string{"r-closed"}, resp.Skipped)

	a, ok := w.Store.Assistant("a-1")
	require.True(t, ok)
	assert.True(t, a.Disabled)

	open, _ := w.Store.Resource("ts-open")
	assert.Equal(t, []int{1}, open.Ledger.Allocations)
	assert.Equal(t, []string{"r-other"}, open.Ledger.Accepted)

	act, _ := w.Store.Resource("act-open")
	assert.Equal(t, []int{0}, act.Ledger.Allocations)

	past, _ := w.Store.Reservation("r-past")
	assert.Equal(t, domain.StatusAccepted, past.Status)

	closed, _ := w.Store.Reservation("r-closed")
	assert.Equal(t, domain.StatusAccepted, closed.Status)

	removed, _ := w.Store.Reservation("r-open")
	assert.Equal(t, domain.StatusRemoved, removed.Status)
	assert.Equal(t, testfixtures.AdminID, *removed.UpdatedBy)
	require.NotNil(t, removed.StatusMessage)
	assert.Equal(t, domain.MsgAssistantInactivated, *removed.StatusMessage)
}

func TestExecute_Delete(t *testing.T) {
	w, usecase := setup(t)

	resp, err := usecase.Execute(context.Background(), &uc.Request{
		UserID:      testfixtures.AdminID,
		AssistantID: "a-1",
		Mode:        uc.ModeDelete,
	})
	require.NoError(t, err)
	assert.Len(t, resp.Removed, 2)

	_, ok := w.Store.Assistant("a-1")
	assert.False(t, ok)

	// денормализованные данные остаются в истории
	removed, _ := w.Store.Reservation("r-open")
	assert.Equal(t, "Assistant a-1", removed.AssistantName)
	require.NotNil(t, removed.StatusMessage)
	assert.Equal(t, domain.MsgAssistantDeleted, *removed.StatusMessage)
}

func TestExecute_PeriodStorageError(t *testing.T) {
	w, usecase := setup(t)
	w.Periods.Err = errors.New("connection refused")

	resp, err := usecase.Execute(context.Background(), &uc.Request{
		UserID:      testfixtures.AdminID,
		AssistantID: "a-1",
		Mode:        uc.ModeDisable,
	})
	assert.ErrorIs(t, err, uc.ErrInternal)
	assert.Nil(t, resp)

	for _, id := range []string{"r-open", "r-act", "r-closed"} {
		stored, _ := w.Store.Reservation(id)
		assert.Equal(t, domain.StatusAccepted, stored.Status, id)
	}
	open, _ := w.Store.Resource("ts-open")
	assert.Equal(t, []int{2}, open.Ledger.Allocations)
}

func TestExecute_Errors(t *testing.T) {
	tests := []struct {
		name    string
		request *uc.Request
		wantErr error
	}{
		{name: "not admin", request: &uc.Request{UserID: testfixtures.UserID, AssistantID: "a-1", Mode: uc.ModeDisable}, wantErr: uc.ErrAccessDenied},
		{name: "unknown mode", request: &uc.Request{UserID: testfixtures.AdminID, AssistantID: "a-1", Mode: "archive"}, wantErr: uc.ErrInvalidInput},
		{name: "missing assistant id", request: &uc.Request{UserID: testfixtures.AdminID, Mode: uc.ModeDelete}, wantErr: uc.ErrInvalidInput},
		{name: "assistant not found", request: &uc.Request{UserID: testfixtures.AdminID, AssistantID: "nope", Mode: uc.ModeDisable}, wantErr: uc.ErrAssistantNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, usecase := setup(t)
			_, err := usecase.Execute(context.Background(), tt.request)
			assert.ErrorIs(t, err, tt.wantErr)

			a, _ := w.Store.Assistant("a-1")
			assert.False(t, a.Disabled)
		})
	}
}
