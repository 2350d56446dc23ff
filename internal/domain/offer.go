package domain

import "github.com/shopspring/decimal"

// PassOption is one nationwide pass offered for a vehicle category.
type PassOption struct {
	Kind           TierKind
	Category       string
	Cost           decimal.Decimal
	TransactionFee decimal.Decimal
	Total          decimal.Decimal
}

// PassOffer lists the nationwide passes in DAY, WEEK, MONTH, YEAR order,
// skipping kinds the catalog does not carry for the category.
type PassOffer struct {
	Options []PassOption
	// HasRegional is true when regional yearly passes exist for the category.
	HasRegional bool
	// HasYearly is true when either the nationwide or a regional yearly pass
	// exists.
	HasYearly bool
}

// RegionOption is one purchasable region with its unit price and its state
// relative to the current selection.
type RegionOption struct {
	Region     Region
	Cost       decimal.Decimal
	Selected   bool
	Selectable bool
}

// Quote is a priced selection for a vehicle.
type Quote struct {
	Vehicle Vehicle
	Priced  PricedSelection
}
