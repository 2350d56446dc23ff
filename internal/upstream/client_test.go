package upstream_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/android-4dsoft/yettel/internal/domain"
	"github.com/android-4dsoft/yettel/internal/upstream"
)

// ---- helpers ---------------------------------------------------------------

func newClient(t *testing.T, h http.HandlerFunc) (*upstream.Client, *bytes.Buffer) {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	var logs bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&logs, nil))
	return upstream.NewClient(srv.URL, srv.Client(), 0, logger), &logs
}

func respond(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}
}

func requireFailure[T any](t *testing.T, r domain.Result[T]) *domain.Failure {
	t.Helper()
	require.True(t, r.IsFailure(), "expected failure, got %s", r.State())
	f, ok := r.Failure()
	require.True(t, ok)
	return f
}

// ---- FetchCatalog ----------------------------------------------------------

func TestFetchCatalog_Success(t *testing.T) {
	c, _ := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/v1/highway/info", r.URL.Path)
		respond(http.StatusOK, `{"statusCode":"OK","payload":{
			"highwayVignettes":[{"vignetteType":["YEAR_11"],"vehicleCategory":"CAR","cost":5450.0,"trxFee":200.0}],
			"counties":[{"id":"YEAR_11","name":"Bács-Kiskun"}]}}`)(w, r)
	})

	res := c.FetchCatalog(context.Background())

	cat, ok := res.Value()
	require.True(t, ok)
	require.Len(t, cat.Tiers, 1)
	assert.Equal(t, []domain.TierCode{domain.RegionalYearly("11")}, cat.Tiers[0].Types)
	assert.Equal(t, []domain.Region{{ID: "11", DisplayName: "Bács-Kiskun"}}, cat.Regions)
	assert.Empty(t, cat.Categories)
}

func TestFetchCatalog_LogsSkippedCodes(t *testing.T) {
	c, logs := newClient(t, respond(http.StatusOK, `{"payload":{"highwayVignettes":[{"vignetteType":["FORTNIGHT"]}]}}`))

	res := c.FetchCatalog(context.Background())

	require.True(t, res.IsSuccess())
	assert.Contains(t, logs.String(), "FORTNIGHT")
}

func TestFetchCatalog_StatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   domain.FailureKind
	}{
		{"bad request", http.StatusBadRequest, domain.FailureInvalidRequest},
		{"not found", http.StatusNotFound, domain.FailureNotFound},
		{"internal", http.StatusInternalServerError, domain.FailureServerError},
		{"unavailable", http.StatusServiceUnavailable, domain.FailureServerError},
		{"edge of range", 599, domain.FailureServerError},
		{"unauthorized", http.StatusUnauthorized, domain.FailureRequestFailed},
		{"conflict", http.StatusConflict, domain.FailureRequestFailed},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c, logs := newClient(t, respond(tc.status, `boom`))

			f := requireFailure(t, c.FetchCatalog(context.Background()))

			assert.Equal(t, tc.want, f.Kind)
			assert.Equal(t, tc.status, f.Status)
			assert.Contains(t, f.Detail, "boom")
			assert.Contains(t, logs.String(), "upstream request failed")
		})
	}
}

func TestFetchCatalog_MalformedBody(t *testing.T) {
	for name, body := range map[string]string{
		"syntax":     `{"payload":`,
		"wrong type": `{"payload":{"highwayVignettes":"nope"}}`,
		"empty":      ``,
	} {
		t.Run(name, func(t *testing.T) {
			c, _ := newClient(t, respond(http.StatusOK, body))

			f := requireFailure(t, c.FetchCatalog(context.Background()))

			assert.Equal(t, domain.FailureMalformedResponse, f.Kind)
		})
	}
}

func TestFetchCatalog_NoConnectivity(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	base := srv.URL
	srv.Close() // nothing listens on base any more

	c := upstream.NewClient(base, nil, time.Second, slog.New(slog.NewTextHandler(io.Discard, nil)))

	f := requireFailure(t, c.FetchCatalog(context.Background()))

	assert.Equal(t, domain.FailureNoConnectivity, f.Kind)
	assert.Zero(t, f.Status)
	assert.Error(t, f.Cause)
}

func TestFetchCatalog_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	t.Cleanup(srv.Close)
	t.Cleanup(func() { close(release) })

	c := upstream.NewClient(srv.URL, &http.Client{Timeout: 50 * time.Millisecond}, 0, slog.New(slog.NewTextHandler(io.Discard, nil)))

	f := requireFailure(t, c.FetchCatalog(context.Background()))

	assert.Equal(t, domain.FailureNoConnectivity, f.Kind)
}

func TestFetchCatalog_CancelledContextIsUnknown(t *testing.T) {
	c, logs := newClient(t, respond(http.StatusOK, `{}`))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	f := requireFailure(t, c.FetchCatalog(ctx))

	assert.Equal(t, domain.FailureUnknown, f.Kind)
	assert.ErrorIs(t, f, context.Canceled)
	assert.Contains(t, logs.String(), `"error"`, "unknown failures are logged with their cause")
}

// ---- FetchVehicle ----------------------------------------------------------

func TestFetchVehicle_Success(t *testing.T) {
	c, _ := newClient(t, respond(http.StatusOK, `{"type":"CAR","plate":"ABC 123","name":"Michael Scott",
		"country":{"hu":"Magyarország","en":"Hungary"},"internationalRegistrationCode":"H","vignetteType":"D1"}`))

	v, err := c.FetchVehicle(context.Background()).Unwrap()

	require.NoError(t, err)
	assert.Equal(t, domain.Vehicle{
		Category:          "CAR",
		Plate:             "ABC 123",
		OwnerName:         "Michael Scott",
		Country:           domain.LocalizedName{Primary: "Magyarország", Secondary: "Hungary"},
		InternationalCode: "H",
		VignetteType:      "D1",
	}, v)
}

func TestFetchVehicle_NotFound(t *testing.T) {
	c, _ := newClient(t, respond(http.StatusNotFound, ``))

	_, err := c.FetchVehicle(context.Background()).Unwrap()

	var f *domain.Failure
	require.ErrorAs(t, err, &f)
	assert.Equal(t, domain.FailureNotFound, f.Kind)
	assert.Contains(t, f.Detail, "Not Found")
}

// ---- SubmitOrder -----------------------------------------------------------

func TestSubmitOrder_SendsLinesInOrder(t *testing.T) {
	var got map[string]any
	c, _ := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/highway/order", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		respond(http.StatusOK, `{"statusCode":"OK","receivedOrders":[
			{"type":"YEAR_23","category":"CAR","cost":5450.0},
			{"type":"YEAR_11","category":"CAR","cost":5450.0}],"message":"accepted"}`)(w, r)
	})
	order := domain.Order{Lines: []domain.OrderLine{
		{Code: "YEAR_23", Category: "CAR", Cost: decimal.NewFromInt(5450)},
		{Code: "YEAR_11", Category: "CAR", Cost: decimal.NewFromInt(5450)},
	}}

	conf, err := c.SubmitOrder(context.Background(), order).Unwrap()

	require.NoError(t, err)
	lines := got["highwayOrders"].([]any)
	require.Len(t, lines, 2)
	assert.Equal(t, "YEAR_23", lines[0].(map[string]any)["type"])
	assert.Equal(t, "YEAR_11", lines[1].(map[string]any)["type"])

	assert.Equal(t, "OK", conf.StatusCode)
	require.NotNil(t, conf.Message)
	assert.Equal(t, "accepted", *conf.Message)
	assert.Equal(t, "YEAR_23", conf.AcceptedLines[0].Code)
}

func TestSubmitOrder_BadRequest(t *testing.T) {
	c, _ := newClient(t, respond(http.StatusBadRequest, `{"message":"unknown county"}`))

	f := requireFailure(t, c.SubmitOrder(context.Background(), domain.Order{}))

	assert.Equal(t, domain.FailureInvalidRequest, f.Kind)
	assert.Contains(t, f.Error(), "unknown county")
}
