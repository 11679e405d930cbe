package create_period

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AssistantBooking/internal/api/middleware"
	"github.com/m04kA/SMC-AssistantBooking/internal/service/periods"
	"github.com/m04kA/SMC-AssistantBooking/internal/service/periods/models"
	"github.com/m04kA/SMC-AssistantBooking/internal/testfixtures"
	"github.com/m04kA/SMC-AssistantBooking/pkg/logger"
)

func TestHandler_Create(t *testing.T) {
	tests := []struct {
		name   string
		userID string
		body   string
		want   int
	}{
		{name: "created", userID: testfixtures.AdminID, body: `{"name":"Autumn","from":"2026-09-01","to":"2026-12-20"}`, want: http.StatusCreated},
		{name: "not admin", userID: testfixtures.UserID, body: `{"name":"Autumn","from":"2026-09-01","to":"2026-12-20"}`, want: http.StatusForbidden},
		{name: "from after to", userID: testfixtures.AdminID, body: `{"name":"Autumn","from":"2026-12-21","to":"2026-12-20"}`, want: http.StatusBadRequest},
		{name: "status is not accepted", userID: testfixtures.AdminID, body: `{"name":"Autumn","from":"2026-09-01","to":"2026-12-20","status":"OPEN"}`, want: http.StatusBadRequest},
		{name: "empty body", userID: testfixtures.AdminID, body: ``, want: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := testfixtures.NewWorld()
			svc := periods.NewService(w.Periods, w.Access, logger.NewNop(),
				periods.WithIDGenerator(&testfixtures.IDs{Prefix: "per"}),
				periods.WithTimeProvider(w.Clock))
			h := NewHandler(svc, logger.NewNop())

			req := httptest.NewRequest(http.MethodPost, "/api/v1/periods", strings.NewReader(tt.body))
			req = req.WithContext(middleware.WithUserID(req.Context(), tt.userID))
			rec := httptest.NewRecorder()
			h.Handle(rec, req)

			require.Equal(t, tt.want, rec.Code)
			_, created := w.Store.Period("per-1")
			if tt.want != http.StatusCreated {
				assert.False(t, created)
				return
			}

			var body models.PeriodResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, "per-1", body.ID)
			assert.Equal(t, "PREPARE", body.Status)
			assert.True(t, created)
		})
	}
}
