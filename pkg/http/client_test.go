package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientGetJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		w.Write([]byte(`{"status":"ok"}` + "\n"))
	}))
	defer server.Close()

	var got map[string]string
	err := NewClient().GetJSON(context.Background(), server.URL, &got)
	require.NoError(t, err)
	assert.Equal(t, "ok", got["status"])
}

func TestClientFailureKinds(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/status":
			w.WriteHeader(http.StatusInternalServerError)
		case "/parse":
			w.Write([]byte(`{not json`))
		case "/trailing":
			w.Write([]byte(`{"status":"ok"} <html>oops`))
		case "/two-values":
			w.Write([]byte(`{"status":"ok"}{"status":"again"}`))
		case "/slow":
			select {
			case <-time.After(2 * time.Second):
			case <-r.Context().Done():
			}
		}
	}))
	defer server.Close()

	dead := httptest.NewServer(http.NotFoundHandler())
	deadURL := dead.URL
	dead.Close()

	tests := []struct {
		name    string
		url     string
		timeout time.Duration
		want    FailureKind
		status  int
	}{
		{"status", server.URL + "/status", time.Second, FailureStatus, http.StatusInternalServerError},
		{"parse", server.URL + "/parse", time.Second, FailureParse, http.StatusOK},
		{"trailing garbage", server.URL + "/trailing", time.Second, FailureParse, http.StatusOK},
		{"two json values", server.URL + "/two-values", time.Second, FailureParse, http.StatusOK},
		{"timeout", server.URL + "/slow", 50 * time.Millisecond, FailureTimeout, 0},
		{"transport", deadURL, time.Second, FailureTransport, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, cancel := context.WithTimeout(context.Background(), tt.timeout)
			defer cancel()

			var raw json.RawMessage
			err := NewClient().GetJSON(ctx, tt.url, &raw)
			require.Error(t, err)
			assert.Equal(t, tt.want, KindOf(err))
			assert.Equal(t, tt.status, StatusOf(err))
		})
	}
}

func TestKindOfForeignError(t *testing.T) {
	assert.Equal(t, FailureNone, KindOf(nil))
	assert.Equal(t, FailureTransport, KindOf(assert.AnError))
}
