package middleware_test

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/android-4dsoft/yettel/internal/middleware"
)

const bodyLimit = 64

// drain reads the whole body the way a JSON decoder would and reports how the
// read ended through the status code.
func drain(reached *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*reached = true
		_, err := io.ReadAll(r.Body)
		var maxErr *http.MaxBytesError
		switch {
		case errors.As(err, &maxErr):
			w.WriteHeader(http.StatusRequestEntityTooLarge)
		case err != nil:
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusNoContent)
		}
	})
}

func TestMaxBodySizeHandler(t *testing.T) {
	tests := []struct {
		name          string
		size          int
		contentLength int64
		wantStatus    int
		wantReached   bool
	}{
		{"under the limit", bodyLimit / 2, bodyLimit / 2, http.StatusNoContent, true},
		{"exactly the limit", bodyLimit, bodyLimit, http.StatusNoContent, true},
		{"declared too large", bodyLimit * 2, bodyLimit * 2, http.StatusRequestEntityTooLarge, false},
		{"streamed too large", bodyLimit * 2, -1, http.StatusRequestEntityTooLarge, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var reached bool
			h := middleware.NewMaxBodySizeHandler(bodyLimit)(drain(&reached))

			req := httptest.NewRequest(http.MethodPut, "/sessions/x/selection/pass", strings.NewReader(strings.Repeat("a", tc.size)))
			req.ContentLength = tc.contentLength
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
			assert.Equal(t, tc.wantReached, reached)
		})
	}
}

func TestMaxBodySizeHandler_RejectionUsesErrorEnvelope(t *testing.T) {
	var reached bool
	h := middleware.NewMaxBodySizeHandler(bodyLimit)(drain(&reached))
	req := httptest.NewRequest(http.MethodPost, "/sessions", strings.NewReader(strings.Repeat("a", 100)))
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	var body struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "body_too_large", body.Error.Code)
}
