package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ExportRow is one row of the ledger export: one row per order line, with the
// order fields repeated on every line of that order. An order without lines
// yields a single row with LineNo 0 and empty line fields.
type ExportRow struct {
	OrderID        uuid.UUID
	CreatedAt      time.Time
	SessionID      uuid.UUID
	VehiclePlate   string
	StatusCode     string
	TransactionFee decimal.Decimal
	Total          decimal.Decimal

	// LineNo is 1-based.
	LineNo   int
	Code     string
	Category string
	Cost     decimal.Decimal
}
