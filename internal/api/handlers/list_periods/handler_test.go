package list_periods

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AssistantBooking/internal/service/periods"
	"github.com/m04kA/SMC-AssistantBooking/internal/service/periods/models"
	"github.com/m04kA/SMC-AssistantBooking/internal/testfixtures"
	"github.com/m04kA/SMC-AssistantBooking/pkg/logger"
)

func TestHandler_List(t *testing.T) {
	w := testfixtures.NewWorld()
	h := NewHandler(periods.NewService(w.Periods, w.Access, logger.NewNop()), logger.NewNop())

	call := func(query string) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/periods"+query, nil))
		return rec
	}

	rec := call("")
	require.Equal(t, http.StatusOK, rec.Code)
	var all models.PeriodListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &all))
	assert.Equal(t, 2, all.Total)

	rec = call("?status=CLOSED")
	require.Equal(t, http.StatusOK, rec.Code)
	var closed models.PeriodListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &closed))
	require.Equal(t, 1, closed.Total)
	assert.Equal(t, testfixtures.ClosedPeriod, closed.Periods[0].ID)

	assert.Equal(t, http.StatusBadRequest, call("?status=PAUSED").Code)
}
