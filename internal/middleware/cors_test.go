package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/android-4dsoft/yettel/internal/middleware"
)

const appOrigin = "http://localhost:5173"

func corsRequest(method, path, origin string, headers map[string]string) *httptest.ResponseRecorder {
	h := middleware.NewCORSHandler([]string{appOrigin})(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("X-Request-Id", "req-1")
		w.WriteHeader(http.StatusOK)
	}))
	req := httptest.NewRequest(method, path, nil)
	req.Header.Set("Origin", origin)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestCORSHandler_SimpleRequests(t *testing.T) {
	tests := []struct {
		name       string
		origin     string
		wantOrigin string
	}{
		{"allowed origin", appOrigin, appOrigin},
		{"other origin", "http://evil.example.com", ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := corsRequest(http.MethodGet, "/catalog", tc.origin, nil)

			// The response itself is served either way; only the header differs.
			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tc.wantOrigin, rec.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}

func TestCORSHandler_ExposesRequestID(t *testing.T) {
	rec := corsRequest(http.MethodGet, "/catalog", appOrigin, nil)

	assert.Contains(t, rec.Header().Get("Access-Control-Expose-Headers"), "X-Request-Id")
}

func TestCORSHandler_Preflight(t *testing.T) {
	for _, method := range []string{http.MethodPost, http.MethodPut, http.MethodDelete} {
		t.Run(method, func(t *testing.T) {
			// Request header names arrive lower-cased, as browsers send them.
			rec := corsRequest(http.MethodOptions, "/sessions/x/selection/pass", appOrigin, map[string]string{
				"Access-Control-Request-Method":  method,
				"Access-Control-Request-Headers": "content-type",
			})

			assert.Less(t, rec.Code, 300, "preflight status")
			assert.Equal(t, appOrigin, rec.Header().Get("Access-Control-Allow-Origin"))
			assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), method)
			assert.Equal(t, "300", rec.Header().Get("Access-Control-Max-Age"))
		})
	}
}

func TestCORSHandler_PreflightRejectsPatch(t *testing.T) {
	rec := corsRequest(http.MethodOptions, "/sessions/x", appOrigin, map[string]string{
		"Access-Control-Request-Method": http.MethodPatch,
	})

	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Methods"))
}
