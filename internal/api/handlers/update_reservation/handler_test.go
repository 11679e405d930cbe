package update_reservation

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AssistantBooking/internal/api/middleware"
	"github.com/m04kA/SMC-AssistantBooking/internal/domain"
	"github.com/m04kA/SMC-AssistantBooking/internal/testfixtures"
	updateReservation "github.com/m04kA/SMC-AssistantBooking/internal/usecase/update_reservation"
	"github.com/m04kA/SMC-AssistantBooking/pkg/logger"
	"github.com/m04kA/SMC-AssistantBooking/pkg/ptr"
)

type fakeUseCase struct {
	got  *updateReservation.Request
	resp *updateReservation.Response
	err  error
}

func (f *fakeUseCase) Execute(_ context.Context, req *updateReservation.Request) (*updateReservation.Response, error) {
	f.got = req
	return f.resp, f.err
}

func newRequest(body string) *http.Request {
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/bookings/r1", strings.NewReader(body))
	req = mux.SetURLVars(req, map[string]string{"reservationId": "r1"})
	return req.WithContext(middleware.WithUserID(req.Context(), testfixtures.UserID))
}

func TestHandler_OK(t *testing.T) {
	updatedAt := testfixtures.Now
	uc := &fakeUseCase{resp: &updateReservation.Response{
		ID:        "r1",
		Kind:      domain.KindTimeslot,
		Status:    domain.StatusRemoved,
		UpdatedBy: ptr.Ptr(testfixtures.UserID),
		UpdatedAt: &updatedAt,
	}}
	h := NewHandler(uc, domain.KindTimeslot, logger.NewNop())

	rec := httptest.NewRecorder()
	h.Handle(rec, newRequest(`{"status":"REMOVED"}`))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "r1", uc.got.ReservationID)
	assert.Equal(t, domain.KindTimeslot, uc.got.Kind)
	assert.Equal(t, "REMOVED", *uc.got.Status)
	assert.Nil(t, uc.got.Comment)

	var body ReservationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "2026-03-02T08:00:00Z", *body.UpdatedAt)
}

func TestHandler_Errors(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{err: updateReservation.ErrInvalidInput, want: http.StatusBadRequest},
		{err: updateReservation.ErrReservationNotFound, want: http.StatusNotFound},
		{err: updateReservation.ErrPeriodClosed, want: http.StatusNotAcceptable},
		{err: updateReservation.ErrAccessDenied, want: http.StatusForbidden},
		{err: updateReservation.ErrReservationRemoved, want: http.StatusConflict},
		{err: updateReservation.ErrInternal, want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			h := NewHandler(&fakeUseCase{err: tt.err}, domain.KindTimeslot, logger.NewNop())
			rec := httptest.NewRecorder()
			h.Handle(rec, newRequest(`{"comment":"x"}`))
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}
