package create_reservation

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AssistantBooking/internal/api/middleware"
	"github.com/m04kA/SMC-AssistantBooking/internal/domain"
	"github.com/m04kA/SMC-AssistantBooking/internal/testfixtures"
	createReservation "github.com/m04kA/SMC-AssistantBooking/internal/usecase/create_reservation"
	"github.com/m04kA/SMC-AssistantBooking/pkg/logger"
	"github.com/m04kA/SMC-AssistantBooking/pkg/ptr"
)

type fakeUseCase struct {
	got  *createReservation.Request
	resp *createReservation.Response
	err  error
}

func (f *fakeUseCase) Execute(_ context.Context, req *createReservation.Request) (*createReservation.Response, error) {
	f.got = req
	return f.resp, f.err
}

func newRequest(body string, userID string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/activity-bookings", strings.NewReader(body))
	if userID != "" {
		req = req.WithContext(middleware.WithUserID(req.Context(), userID))
	}
	return req
}

func TestHandler_Created(t *testing.T) {
	uc := &fakeUseCase{resp: &createReservation.Response{
		ID:            "r1",
		Kind:          domain.KindActivity,
		ResourceID:    "act-1",
		ResourceDate:  testfixtures.Now,
		Status:        domain.StatusRejected,
		StatusMessage: ptr.Ptr("No available assistant slots (typeless)"),
	}}
	h := NewHandler(uc, domain.KindActivity, logger.NewNop())

	rec := httptest.NewRecorder()
	h.Handle(rec, newRequest(`{"resourceId":"act-1","assistantId":"a-1","comment":"hi"}`, testfixtures.UserID))

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, &createReservation.Request{
		UserID:      testfixtures.UserID,
		Kind:        domain.KindActivity,
		ResourceID:  "act-1",
		AssistantID: "a-1",
		Comment:     ptr.Ptr("hi"),
	}, uc.got)

	var body ReservationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "REJECTED", body.Status)
	assert.Equal(t, "2026-03-02", body.ResourceDate)
	assert.Equal(t, "No available assistant slots (typeless)", *body.StatusMessage)
}

func TestHandler_Errors(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{err: createReservation.ErrInvalidInput, want: http.StatusBadRequest},
		{err: createReservation.ErrResourceNotFound, want: http.StatusNotFound},
		{err: createReservation.ErrAssistantNotFound, want: http.StatusNotFound},
		{err: createReservation.ErrAssistantDisabled, want: http.StatusNotAcceptable},
		{err: createReservation.ErrPeriodClosed, want: http.StatusNotAcceptable},
		{err: createReservation.ErrAccessDenied, want: http.StatusForbidden},
		{err: fmt.Errorf("%w: boom", createReservation.ErrInternal), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			h := NewHandler(&fakeUseCase{err: tt.err}, domain.KindTimeslot, logger.NewNop())
			rec := httptest.NewRecorder()
			h.Handle(rec, newRequest(`{"resourceId":"ts-1","assistantId":"a-1"}`, testfixtures.UserID))
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestHandler_BadRequest(t *testing.T) {
	uc := &fakeUseCase{}
	h := NewHandler(uc, domain.KindTimeslot, logger.NewNop())

	rec := httptest.NewRecorder()
	h.Handle(rec, newRequest(`{"resourceId":`, testfixtures.UserID))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	h.Handle(rec, newRequest(`{"resourceId":"ts-1","assistantId":"a-1"}`, ""))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, uc.got)
}
