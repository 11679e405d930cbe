package reservations_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AssistantBooking/internal/domain"
	"github.com/m04kA/SMC-AssistantBooking/internal/service/allocation"
	"github.com/m04kA/SMC-AssistantBooking/internal/service/periodgate"
	"github.com/m04kA/SMC-AssistantBooking/internal/service/reservations"
	"github.com/m04kA/SMC-AssistantBooking/internal/service/reservations/models"
	"github.com/m04kA/SMC-AssistantBooking/internal/testfixtures"
	"github.com/m04kA/SMC-AssistantBooking/pkg/logger"
	"github.com/m04kA/SMC-AssistantBooking/pkg/ptr"
)

func setup() (*testfixtures.World, *reservations.Service) {
	w := testfixtures.NewWorld()
	log := logger.NewNop()
	gate := periodgate.NewService(w.Periods, log)
	engine := allocation.NewService(w.Resources, w.Reservations, gate, w.Tx, w.Metrics, log)

	res := testfixtures.Resource("ts-1", domain.KindTimeslot, testfixtures.OpenPeriod, domain.SlotModeTyped, 1)
	other := testfixtures.Resource("ts-2", domain.KindTimeslot, testfixtures.OpenPeriod, domain.SlotModeTyped, 1)
	a := testfixtures.Assistant("a-1", 0)
	w.Store.PutResource(res)
	w.Store.PutResource(other)
	w.Store.PutAssistant(a)
	w.Store.PutReservation(testfixtures.Reservation("r1", res, a, domain.StatusRequested))
	w.Store.PutReservation(testfixtures.Reservation("r2", res, a, domain.StatusRejected))
	w.Store.PutReservation(testfixtures.Reservation("r3", other, a, domain.StatusRequested))

	return w, reservations.NewService(w.Reservations, w.Resources, w.Periods, w.Access, engine, log,
		reservations.WithTimeProvider(w.Clock))
}

func TestService_Reads(t *testing.T) {
	_, svc := setup()
	ctx := context.Background()

	got, err := svc.GetByID(ctx, domain.KindTimeslot, "r1")
	require.NoError(t, err)
	assert.Equal(t, "2026-03-04", got.ResourceDate)
	assert.Equal(t, "REQUESTED", got.Status)

	_, err = svc.GetByID(ctx, domain.KindActivity, "r1")
	assert.ErrorIs(t, err, reservations.ErrReservationNotFound)

	byResource, err := svc.ListByResource(ctx, domain.KindTimeslot, "ts-1", models.ListFilter{})
	require.NoError(t, err)
	assert.Equal(t, 2, byResource.Total)

	rejected, err := svc.ListByResource(ctx, domain.KindTimeslot, "ts-1", models.ListFilter{Status: ptr.Ptr("rejected")})
	require.NoError(t, err)
	require.Equal(t, 1, rejected.Total)
	assert.Equal(t, "r2", rejected.Reservations[0].ID)

	byPeriod, err := svc.ListByPeriod(ctx, domain.KindTimeslot, testfixtures.OpenPeriod, models.ListFilter{})
	require.NoError(t, err)
	assert.Equal(t, 3, byPeriod.Total)

	_, err = svc.ListByResource(ctx, domain.KindTimeslot, "nope", models.ListFilter{})
	assert.ErrorIs(t, err, reservations.ErrResourceNotFound)
	_, err = svc.ListByPeriod(ctx, domain.KindTimeslot, "nope", models.ListFilter{})
	assert.ErrorIs(t, err, reservations.ErrPeriodNotFound)
	_, err = svc.ListByPeriod(ctx, domain.KindTimeslot, testfixtures.OpenPeriod, models.ListFilter{Status: ptr.Ptr("LOST")})
	assert.ErrorIs(t, err, reservations.ErrInvalidInput)
}

func TestService_Process(t *testing.T) {
	w, svc := setup()
	ctx := context.Background()

	_, err := svc.Process(ctx, domain.KindTimeslot, "r1", &models.ProcessRequest{UserID: testfixtures.UserID, Action: "request"})
	assert.ErrorIs(t, err, reservations.ErrAccessDenied)

	_, err = svc.Process(ctx, domain.KindTimeslot, "r1", &models.ProcessRequest{UserID: testfixtures.AdminID, Action: "shuffle"})
	assert.ErrorIs(t, err, reservations.ErrInvalidInput)

	got, err := svc.Process(ctx, domain.KindTimeslot, "r1", &models.ProcessRequest{UserID: testfixtures.AdminID, Action: "request"})
	require.NoError(t, err)
	assert.Equal(t, "ACCEPTED", got.Status)
	assert.Equal(t, testfixtures.AdminID, *got.UpdatedBy)
	require.NotNil(t, got.UpdatedAt)
	assert.Equal(t, testfixtures.Now, *got.UpdatedAt)

	stored, _ := w.Store.Reservation("r1")
	assert.Equal(t, testfixtures.Now, *stored.UpdatedAt)

	got, err = svc.Process(ctx, domain.KindTimeslot, "r1", &models.ProcessRequest{UserID: testfixtures.AdminID, Action: "removal"})
	require.NoError(t, err)
	assert.Equal(t, "REMOVED", got.Status)

	_, err = svc.Process(ctx, domain.KindTimeslot, "r1", &models.ProcessRequest{UserID: testfixtures.AdminID, Action: "request"})
	assert.ErrorIs(t, err, reservations.ErrReservationRemoved)

	res, _ := w.Store.Resource("ts-1")
	assert.Equal(t, []int{0}, res.Ledger.Allocations)
}
