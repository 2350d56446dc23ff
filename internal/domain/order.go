package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PricedLine is one line of a priced selection.
type PricedLine struct {
	Code  TierCode
	Label string
	Cost  decimal.Decimal
}

// PricedSelection is derived from a Catalog and a Selection on demand.
// It is never cached across selection changes.
type PricedSelection struct {
	Category       string
	Lines          []PricedLine
	TransactionFee decimal.Decimal
	Total          decimal.Decimal
}

// OrderLine is one wire-ready line of an order. Code is already in wire format
// (e.g. "WEEK" or "YEAR_11").
type OrderLine struct {
	Code     string
	Category string
	Cost     decimal.Decimal
}

// Equal compares costs numerically, so 5450 equals 5450.0.
func (l OrderLine) Equal(o OrderLine) bool {
	return l.Code == o.Code && l.Category == o.Category && l.Cost.Equal(o.Cost)
}

// Order is the submit payload. Line order is preserved end to end so a
// re-submission produces an identical request.
type Order struct {
	Lines []OrderLine
}

// OrderConfirmation is what the upstream returns for an accepted order.
type OrderConfirmation struct {
	StatusCode    string
	AcceptedLines []OrderLine
	// Message is nil when the upstream did not send one.
	Message *string
}

// OrderReceipt is a confirmed order as recorded in the ledger.
type OrderReceipt struct {
	ID             uuid.UUID
	SessionID      uuid.UUID
	VehiclePlate   string
	Category       string
	StatusCode     string
	Message        string
	Lines          []OrderLine
	TransactionFee decimal.Decimal
	Total          decimal.Decimal
	CreatedAt      time.Time
}
