package domain

import (
	"slices"

	"github.com/shopspring/decimal"
)

// Selection is what the user currently intends to buy. It is exactly one of
// EmptySelection, RegionSelection or SinglePassSelection; the two purchase
// modes can never be active at the same time.
type Selection interface {
	isSelection()
}

// EmptySelection means nothing is selected.
type EmptySelection struct{}

// RegionSelection is the multi-region mode: one regional yearly pass per
// region. RegionIDs is in insertion order and never contains duplicates.
type RegionSelection struct {
	RegionIDs []RegionID
}

// SinglePassSelection is the nationwide mode.
type SinglePassSelection struct {
	Tier     TierCode
	Category string
	Price    decimal.Decimal
}

func (EmptySelection) isSelection()      {}
func (RegionSelection) isSelection()     {}
func (SinglePassSelection) isSelection() {}

// Contains reports whether id is part of the region selection.
func (s RegionSelection) Contains(id RegionID) bool {
	return slices.Contains(s.RegionIDs, id)
}

// CloneSelection returns a copy of s that shares no memory with it.
func CloneSelection(s Selection) Selection {
	switch v := s.(type) {
	case RegionSelection:
		return RegionSelection{RegionIDs: slices.Clone(v.RegionIDs)}
	case SinglePassSelection:
		return v
	default:
		return EmptySelection{}
	}
}
