package list_open_resources

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AssistantBooking/internal/domain"
	"github.com/m04kA/SMC-AssistantBooking/internal/service/resources"
	"github.com/m04kA/SMC-AssistantBooking/internal/service/resources/models"
	"github.com/m04kA/SMC-AssistantBooking/internal/testfixtures"
	"github.com/m04kA/SMC-AssistantBooking/pkg/logger"
)

func TestHandler_ListOpen(t *testing.T) {
	w := testfixtures.NewWorld()
	w.Store.PutResource(testfixtures.Resource("act-open", domain.KindActivity, testfixtures.OpenPeriod, domain.SlotModeTypeless, 3))
	w.Store.PutResource(testfixtures.Resource("act-closed", domain.KindActivity, testfixtures.ClosedPeriod, domain.SlotModeTypeless, 3))

	log := logger.NewNop()
	svc := resources.NewService(w.Resources, w.Periods, w.Access, w.Tx, log, resources.WithTimeProvider(w.Clock))
	h := NewHandler(svc, domain.KindActivity, log)

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/activities/open", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var body models.ResourceListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, 1, body.Total)
	assert.Equal(t, "act-open", body.Resources[0].ID)
	assert.Equal(t, []int{3}, body.Resources[0].FreeSlots)

	w.Resources.Err = errors.New("connection refused")
	rec = httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/activities/open", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
