package release_assistant

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AssistantBooking/internal/api/middleware"
	"github.com/m04kA/SMC-AssistantBooking/internal/testfixtures"
	releaseAssistant "github.com/m04kA/SMC-AssistantBooking/internal/usecase/release_assistant"
	"github.com/m04kA/SMC-AssistantBooking/pkg/logger"
)

type fakeUseCase struct {
	got  *releaseAssistant.Request
	resp *releaseAssistant.Response
	err  error
}

func (f *fakeUseCase) Execute(_ context.Context, req *releaseAssistant.Request) (*releaseAssistant.Response, error) {
	f.got = req
	return f.resp, f.err
}

func newRequest() *http.Request {
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/assistants/a-1", nil)
	req = mux.SetURLVars(req, map[string]string{"assistantId": "a-1"})
	return req.WithContext(middleware.WithUserID(req.Context(), testfixtures.AdminID))
}

func TestHandler_Delete(t *testing.T) {
	uc := &fakeUseCase{resp: &releaseAssistant.Response{
		AssistantID: "a-1",
		Mode:        releaseAssistant.ModeDelete,
		Removed:     []string{"r1", "r2"},
	}}
	h := NewHandler(uc, releaseAssistant.ModeDelete, logger.NewNop())

	rec := httptest.NewRecorder()
	h.Handle(rec, newRequest())

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, releaseAssistant.ModeDelete, uc.got.Mode)
	assert.Equal(t, "a-1", uc.got.AssistantID)

	var body ReleaseAssistantResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, []string{"r1", "r2"}, body.RemovedReservationIDs)
	assert.Equal(t, []string{}, body.SkippedReservationIDs)
}

func TestHandler_Errors(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{err: releaseAssistant.ErrAccessDenied, want: http.StatusForbidden},
		{err: releaseAssistant.ErrAssistantNotFound, want: http.StatusNotFound},
		{err: releaseAssistant.ErrInvalidInput, want: http.StatusBadRequest},
		{err: releaseAssistant.ErrInternal, want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			h := NewHandler(&fakeUseCase{err: tt.err}, releaseAssistant.ModeDisable, logger.NewNop())
			rec := httptest.NewRecorder()
			h.Handle(rec, newRequest())
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}
