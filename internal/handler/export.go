package handler

import (
	"bytes"
	"context"
	"encoding/csv"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/android-4dsoft/yettel/internal/domain"
)

// ExportServicer flattens the order ledger. *service.ExportService satisfies it.
type ExportServicer interface {
	Export(ctx context.Context) ([]domain.ExportRow, error)
}

// WithExporter enables GET /orders/export. Call it before Routes.
func (s *Server) WithExporter(e ExportServicer) *Server {
	s.export = e
	return s
}

var csvHeaders = []string{
	"order_id", "created_at", "session_id", "vehicle_plate", "status_code",
	"transaction_fee", "total", "line_no", "code", "category", "cost",
}

type exportRowResponse struct {
	OrderID        uuid.UUID        `json:"orderId"`
	CreatedAt      time.Time        `json:"createdAt"`
	SessionID      uuid.UUID        `json:"sessionId"`
	VehiclePlate   string           `json:"vehiclePlate"`
	StatusCode     string           `json:"statusCode"`
	TransactionFee decimal.Decimal  `json:"transactionFee"`
	Total          decimal.Decimal  `json:"total"`
	LineNo         int              `json:"lineNo,omitempty"`
	Code           string           `json:"code,omitempty"`
	Category       string           `json:"category,omitempty"`
	Cost           *decimal.Decimal `json:"cost,omitempty"`
}

// GetExport handles GET /orders/export.
// ?format=csv returns text/csv; the default is a JSON array.
func (s *Server) GetExport(w http.ResponseWriter, r *http.Request) {
	var format *string
	if err := queryParam(r, "format", &format); err != nil {
		requestError(w, err.Error())
		return
	}
	wantCSV := false
	if format != nil {
		switch *format {
		case "csv":
			wantCSV = true
		case "json":
		default:
			requestError(w, "invalid format for parameter format: want csv or json")
			return
		}
	}

	rows, err := s.export.Export(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	if !wantCSV {
		out := make([]exportRowResponse, len(rows))
		for i, row := range rows {
			out[i] = toExportRowResponse(row)
		}
		writeJSON(w, http.StatusOK, out)
		return
	}

	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)
	_ = cw.Write(csvHeaders)
	for _, row := range rows {
		_ = cw.Write(toCSVRecord(row))
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		s.writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="orders.csv"`)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

func toExportRowResponse(r domain.ExportRow) exportRowResponse {
	out := exportRowResponse{
		OrderID:        r.OrderID,
		CreatedAt:      r.CreatedAt,
		SessionID:      r.SessionID,
		VehiclePlate:   r.VehiclePlate,
		StatusCode:     r.StatusCode,
		TransactionFee: r.TransactionFee,
		Total:          r.Total,
	}
	if r.LineNo > 0 {
		cost := r.Cost
		out.LineNo = r.LineNo
		out.Code = r.Code
		out.Category = r.Category
		out.Cost = &cost
	}
	return out
}

// toCSVRecord encodes a row in csvHeaders order. Line fields are empty for an
// order without lines.
func toCSVRecord(r domain.ExportRow) []string {
	rec := []string{
		r.OrderID.String(),
		r.CreatedAt.UTC().Format(time.RFC3339),
		r.SessionID.String(),
		r.VehiclePlate,
		r.StatusCode,
		r.TransactionFee.String(),
		r.Total.String(),
		"", "", "", "",
	}
	if r.LineNo > 0 {
		rec[7] = strconv.Itoa(r.LineNo)
		rec[8] = r.Code
		rec[9] = r.Category
		rec[10] = r.Cost.String()
	}
	return rec
}
