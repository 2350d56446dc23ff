package middleware_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/android-4dsoft/yettel/internal/middleware"
)

// logOne serves req through the logger middleware and returns the single
// JSON record it wrote.
func logOne(t *testing.T, h http.HandlerFunc, req *http.Request) map[string]any {
	t.Helper()
	var buf bytes.Buffer
	logged := middleware.NewSlogLogger(slog.New(slog.NewJSONHandler(&buf, nil)))(h)

	logged.ServeHTTP(httptest.NewRecorder(), req)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry), "log line: %s", buf.String())
	return entry
}

func TestSlogLogger_RequestFields(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/sessions/abc/quote", nil)
	req = req.WithContext(context.WithValue(req.Context(), chimiddleware.RequestIDKey, "req-42"))

	entry := logOne(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"total":"16550"}`))
	}, req)

	assert.Equal(t, "request", entry["msg"])
	assert.Equal(t, "GET", entry["method"])
	assert.Equal(t, "/sessions/abc/quote", entry["path"])
	assert.EqualValues(t, http.StatusOK, entry["status"])
	assert.EqualValues(t, len(`{"total":"16550"}`), entry["bytes"])
	assert.Equal(t, "req-42", entry["request_id"])
	assert.Contains(t, entry, "duration_ms")
}

func TestSlogLogger_Level(t *testing.T) {
	tests := []struct {
		name      string
		handler   http.HandlerFunc
		wantLevel string
		wantCode  int
	}{
		{"implicit 200", func(http.ResponseWriter, *http.Request) {}, "INFO", http.StatusOK},
		{"client error", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusConflict) }, "INFO", http.StatusConflict},
		{"bad gateway", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusBadGateway) }, "ERROR", http.StatusBadGateway},
		{"unavailable", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusServiceUnavailable) }, "ERROR", http.StatusServiceUnavailable},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			entry := logOne(t, tc.handler, httptest.NewRequest(http.MethodPost, "/sessions/abc/orders", nil))

			assert.Equal(t, tc.wantLevel, entry["level"])
			assert.EqualValues(t, tc.wantCode, entry["status"])
		})
	}
}
