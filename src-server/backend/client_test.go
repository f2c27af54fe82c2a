package backend_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
	"tzbot/src-server/backend"
	"tzbot/src-server/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *backend.Client) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return server, backend.New(server.URL+"/", "client-id", "bot-token", server.Client())
}

func TestGetTimezone(t *testing.T) {
	// case: empty array
	func() {
		_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/timezones/123", r.URL.Path)
			assert.Equal(t, "Bearer client-id_bot-token", r.Header.Get("Authorization"))
			w.Write([]byte(`[]`))
		})
		result, err := client.GetTimezone(context.Background(), "123")
		require.NoError(t, err)
		assert.Equal(t, model.NewEmptyResult(), result)
	}()

	// case: found, first element wins
	func() {
		_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`[{"timezone":"America/New_York"},{"timezone":"Asia/Tokyo"}]`))
		})
		result, err := client.GetTimezone(context.Background(), "123")
		require.NoError(t, err)
		assert.Equal(t, model.NewFoundResult("America/New_York"), result)
	}()

	// case: forbidden
	func() {
		_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
			w.Write([]byte(`{"error":"blocked"}`))
		})
		result, err := client.GetTimezone(context.Background(), "123")
		require.NoError(t, err)
		assert.Equal(t, model.TimezoneQueryForbidden, result.Status)
		assert.Equal(t, "blocked", result.Message)
	}()

	// case: unexpected status
	func() {
		_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})
		_, err := client.GetTimezone(context.Background(), "123")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "bad status code: 500")
	}()

	// case: invalid json
	func() {
		_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`not json`))
		})
		_, err := client.GetTimezone(context.Background(), "123")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "can't decode body")
	}()

	// case: network failure
	func() {
		server, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {})
		server.Close()
		_, err := client.GetTimezone(context.Background(), "123")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "can't do request")
	}()
}

func TestGetTimezoneEmptyUserID(t *testing.T) {
	var hits atomic.Int32
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Write([]byte(`[{"timezone":"Asia/Tokyo"}]`))
	})
	result, err := client.GetTimezone(context.Background(), "")
	assert.ErrorIs(t, err, backend.ErrEmptyUserID)
	assert.Equal(t, model.TimezoneQueryResult{}, result)
	assert.Equal(t, int32(0), hits.Load())
}

func TestGetTimezoneIdempotent(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"timezone":"Europe/Berlin"}]`))
	})
	first, err := client.GetTimezone(context.Background(), "42")
	require.NoError(t, err)
	second, err := client.GetTimezone(context.Background(), "42")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestSetTimezone(t *testing.T) {
	// case: success
	func() {
		_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/timezones/", r.URL.Path)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			assert.Equal(t, "Bearer client-id_bot-token", r.Header.Get("Authorization"))

			var body map[string]string
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, map[string]string{
				"timezone":        "Etc/GMT-5",
				"discord_user_id": "123",
			}, body)
			w.WriteHeader(http.StatusCreated)
		})
		require.NoError(t, client.SetTimezone(context.Background(), "123", "Etc/GMT-5"))
	}()

	// case: rejected with error field
	func() {
		_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"error":"invalid timezone"}`))
		})
		err := client.SetTimezone(context.Background(), "123", "Mars/Olympus")
		var setErr *backend.SetError
		require.True(t, errors.As(err, &setErr))
		assert.Equal(t, http.StatusBadRequest, setErr.StatusCode)
		assert.Equal(t, "invalid timezone", setErr.Reason())
	}()

	// case: rejected without a body
	func() {
		_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		})
		err := client.SetTimezone(context.Background(), "123", "Etc/GMT")
		var setErr *backend.SetError
		require.True(t, errors.As(err, &setErr))
		assert.Empty(t, setErr.Message)
		assert.Equal(t, "Bad Gateway", setErr.Reason())
	}()
}

func TestLatencyObserver(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	var calls atomic.Int32
	client := backend.New(server.URL, "id", "token", nil, backend.WithLatencyObserver(func(d time.Duration) {
		assert.GreaterOrEqual(t, d, time.Duration(0))
		calls.Add(1)
	}))
	_, err := client.GetTimezone(context.Background(), "1")
	require.NoError(t, err)
	require.NoError(t, client.SetTimezone(context.Background(), "1", "UTC"))
	assert.Equal(t, int32(2), calls.Load())
}
