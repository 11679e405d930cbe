package accessservice

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/internal/users/admin-1/role", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"admin":true,"trainer":false,"userForAssistants":[]}`))
	})
	mux.HandleFunc("/internal/users/user-1/role", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"admin":false,"userForAssistants":["a-1","a-2"]}`))
	})
	mux.HandleFunc("/internal/users/broken/role", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})
	mux.HandleFunc("/internal/users/garbage/role", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{not json`))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestClient_IsAdmin(t *testing.T) {
	srv := newTestServer(t)
	c := NewClient(srv.URL, time.Second, nopLogger{})
	ctx := context.Background()

	ok, err := c.IsAdmin(ctx, "admin-1")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = c.IsAdmin(ctx, "user-1")
	require.NoError(t, err)
	assert.False(t, ok)

	// неизвестный пользователь не имеет прав
	ok, err = c.IsAdmin(ctx, "unknown")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestClient_IsUserForAssistant(t *testing.T) {
	srv := newTestServer(t)
	c := NewClient(srv.URL, time.Second, nopLogger{})
	ctx := context.Background()

	ok, err := c.IsUserForAssistant(ctx, "user-1", "a-2")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = c.IsUserForAssistant(ctx, "user-1", "a-3")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestClient_Errors(t *testing.T) {
	srv := newTestServer(t)
	c := NewClient(srv.URL, time.Second, nopLogger{})
	ctx := context.Background()

	_, err := c.IsAdmin(ctx, "broken")
	assert.ErrorIs(t, err, ErrInvalidResponse)

	_, err = c.IsAdmin(ctx, "garbage")
	assert.ErrorIs(t, err, ErrInvalidResponse)

	unreachable := NewClient("http://127.0.0.1:1", 100*time.Millisecond, nopLogger{})
	_, err = unreachable.IsAdmin(ctx, "admin-1")
	assert.ErrorIs(t, err, ErrInternal)
}
