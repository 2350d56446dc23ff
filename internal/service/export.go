package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/android-4dsoft/yettel/internal/domain"
	"github.com/android-4dsoft/yettel/internal/repo"
)

// exportPageSize is the page size used to walk the ledger.
const exportPageSize = 100

// ExportService flattens the order ledger into export rows.
type ExportService struct {
	orders repo.OrderRepo
}

// NewExportService constructs an ExportService. A nil repo exports nothing.
func NewExportService(orders repo.OrderRepo) *ExportService {
	return &ExportService{orders: orders}
}

// Export returns one row per order line across the whole ledger, newest order
// first. Orders recorded while the export pages through the ledger may shift
// page boundaries; an order seen twice is emitted once.
func (s *ExportService) Export(ctx context.Context) ([]domain.ExportRow, error) {
	rows := []domain.ExportRow{}
	if s.orders == nil {
		return rows, nil
	}

	seen := map[uuid.UUID]bool{}
	for page := 1; ; page++ {
		p := domain.PaginationParams{Page: page, Limit: exportPageSize}
		orders, total, err := s.orders.ListPaged(ctx, p)
		if err != nil {
			return nil, fmt.Errorf("service.ExportService.Export: page %d: %w", page, err)
		}
		for _, o := range orders {
			if seen[o.ID] {
				continue
			}
			seen[o.ID] = true
			rows = append(rows, exportRows(o)...)
		}
		if len(orders) < exportPageSize || int64(p.Offset()+len(orders)) >= total {
			return rows, nil
		}
	}
}

func exportRows(o domain.OrderReceipt) []domain.ExportRow {
	base := domain.ExportRow{
		OrderID:        o.ID,
		CreatedAt:      o.CreatedAt,
		SessionID:      o.SessionID,
		VehiclePlate:   o.VehiclePlate,
		StatusCode:     o.StatusCode,
		TransactionFee: o.TransactionFee,
		Total:          o.Total,
	}
	if len(o.Lines) == 0 {
		return []domain.ExportRow{base}
	}
	out := make([]domain.ExportRow, len(o.Lines))
	for i, l := range o.Lines {
		row := base
		row.LineNo = i + 1
		row.Code = l.Code
		row.Category = l.Category
		row.Cost = l.Cost
		out[i] = row
	}
	return out
}
