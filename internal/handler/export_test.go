package handler_test

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/android-4dsoft/yettel/internal/domain"
	"github.com/android-4dsoft/yettel/internal/handler"
)

// mockExportServicer is a test double for handler.ExportServicer.
type mockExportServicer struct {
	export func(ctx context.Context) ([]domain.ExportRow, error)
}

var _ handler.ExportServicer = (*mockExportServicer)(nil)

func (m *mockExportServicer) Export(ctx context.Context) ([]domain.ExportRow, error) {
	return m.export(ctx)
}

// ---- helpers ---------------------------------------------------------------

func newExportHTTPHandler(rows []domain.ExportRow, err error) http.Handler {
	exp := &mockExportServicer{export: func(context.Context) ([]domain.ExportRow, error) { return rows, err }}
	return handler.NewServer(&mockServicer{}, slog.New(slog.NewTextHandler(io.Discard, nil))).
		WithExporter(exp).
		Handler()
}

func exportRowFixture() []domain.ExportRow {
	base := domain.ExportRow{
		OrderID:        uuid.MustParse("0b3c7b0e-5f7e-4a0c-9a51-7d0f4c3f1a10"),
		CreatedAt:      time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		SessionID:      uuid.New(),
		VehiclePlate:   "ABC 123",
		StatusCode:     "OK",
		TransactionFee: dec("200"),
		Total:          dec("11100"),
	}
	first, second := base, base
	first.LineNo, first.Code, first.Category, first.Cost = 1, "YEAR_23", "CAR", dec("5450")
	second.LineNo, second.Code, second.Category, second.Cost = 2, "YEAR_11", "CAR", dec("5450")
	return []domain.ExportRow{first, second}
}

// ---- GET /orders/export ----------------------------------------------------

func TestGetExport_JSONByDefault(t *testing.T) {
	rec := do(t, newExportHTTPHandler(exportRowFixture(), nil), http.MethodGet, "/orders/export", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")

	var rows []map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&rows))
	require.Len(t, rows, 2)
	assert.Equal(t, "YEAR_23", rows[0]["code"])
	assert.Equal(t, "5450", rows[0]["cost"])
	assert.Equal(t, "11100", rows[1]["total"])
	assert.EqualValues(t, 2, rows[1]["lineNo"])
}

func TestGetExport_EmptyJSONIsArray(t *testing.T) {
	rec := do(t, newExportHTTPHandler([]domain.ExportRow{}, nil), http.MethodGet, "/orders/export?format=json", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestGetExport_OrderWithoutLinesOmitsLineFields(t *testing.T) {
	row := exportRowFixture()[0]
	row.LineNo, row.Code, row.Category = 0, "", ""

	rec := do(t, newExportHTTPHandler([]domain.ExportRow{row}, nil), http.MethodGet, "/orders/export", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), `"cost"`)
	assert.NotContains(t, rec.Body.String(), `"lineNo"`)
}

func TestGetExport_CSV(t *testing.T) {
	rec := do(t, newExportHTTPHandler(exportRowFixture(), nil), http.MethodGet, "/orders/export?format=csv", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "orders.csv")

	records, err := csv.NewReader(strings.NewReader(rec.Body.String())).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "order_id", records[0][0])
	assert.Equal(t, []string{
		"0b3c7b0e-5f7e-4a0c-9a51-7d0f4c3f1a10", "2026-03-01T12:00:00Z",
	}, records[1][:2])
	assert.Equal(t, []string{"200", "11100", "1", "YEAR_23", "CAR", "5450"}, records[1][5:])
	assert.Equal(t, "YEAR_11", records[2][8])
}

func TestGetExport_CSVQuotesPlate(t *testing.T) {
	rows := exportRowFixture()[:1]
	rows[0].VehiclePlate = `AB,"C"`

	rec := do(t, newExportHTTPHandler(rows, nil), http.MethodGet, "/orders/export?format=csv", nil)

	records, err := csv.NewReader(strings.NewReader(rec.Body.String())).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, `AB,"C"`, records[1][3])
}

func TestGetExport_BadFormat(t *testing.T) {
	rec := do(t, newExportHTTPHandler(nil, nil), http.MethodGet, "/orders/export?format=xml", nil)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "bad_request", decodeError(t, rec).Code)
}

func TestGetExport_ServiceError(t *testing.T) {
	rec := do(t, newExportHTTPHandler(nil, errors.New("db down")), http.MethodGet, "/orders/export", nil)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "internal", decodeError(t, rec).Code)
}

func TestGetExport_NotRoutedWithoutExporter(t *testing.T) {
	rec := do(t, newHTTPHandler(&mockServicer{}), http.MethodGet, "/orders/export", nil)

	// Falls through to /orders/{orderID}, which rejects the non-UUID.
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
