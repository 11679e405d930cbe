package create_resource

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AssistantBooking/internal/api/middleware"
	"github.com/m04kA/SMC-AssistantBooking/internal/domain"
	"github.com/m04kA/SMC-AssistantBooking/internal/service/resources"
	"github.com/m04kA/SMC-AssistantBooking/internal/service/resources/models"
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
		{
			name:   "typeless activity",
			userID: testfixtures.AdminID,
			body:   `{"periodId":"period-open","date":"2026-03-06","startTime":"10:00","endTime":"12:00","typelessSlots":true,"assistantSlots":[4]}`,
			want:   http.StatusCreated,
		},
		{
			name:   "not admin",
			userID: testfixtures.UserID,
			body:   `{"periodId":"period-open","date":"2026-03-06","startTime":"10:00","endTime":"12:00","assistantSlots":[1]}`,
			want:   http.StatusForbidden,
		},
		{
			name:   "bad time",
			userID: testfixtures.AdminID,
			body:   `{"periodId":"period-open","date":"2026-03-06","startTime":"10:00","endTime":"09:00","assistantSlots":[1]}`,
			want:   http.StatusBadRequest,
		},
		{
			name:   "unknown period",
			userID: testfixtures.AdminID,
			body:   `{"periodId":"nope","date":"2026-03-06","startTime":"10:00","endTime":"12:00","assistantSlots":[1]}`,
			want:   http.StatusNotFound,
		},
		{
			name:   "unknown field",
			userID: testfixtures.AdminID,
			body:   `{"slots":[1]}`,
			want:   http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := testfixtures.NewWorld()
			svc := resources.NewService(w.Resources, w.Periods, w.Access, w.Tx, logger.NewNop(), resources.WithIDGenerator(w.IDs))
			h := NewHandler(svc, domain.KindActivity, logger.NewNop())

			req := httptest.NewRequest(http.MethodPost, "/api/v1/activities", strings.NewReader(tt.body))
			req = req.WithContext(middleware.WithUserID(req.Context(), tt.userID))
			rec := httptest.NewRecorder()
			h.Handle(rec, req)

			require.Equal(t, tt.want, rec.Code)
			if tt.want != http.StatusCreated {
				return
			}
			var body models.ResourceResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, "res-1", body.ID)
			assert.Equal(t, "typeless", body.SlotMode)
			assert.Equal(t, "Friday", body.Weekday)
			assert.Equal(t, []int{4}, body.FreeSlots)
		})
	}
}
