// Package selection holds the user's in-progress purchase: either a set of
// regions for regional yearly passes or one nationwide pass, never both.
//
// A Store is not safe for concurrent use. The host confines all access to one
// goroutine at a time (see package session).
package selection

import (
	"slices"

	"github.com/shopspring/decimal"

	"github.com/android-4dsoft/yettel/internal/domain"
	"github.com/android-4dsoft/yettel/internal/region"
)

// Outcome reports what SelectRegion did.
type Outcome int

const (
	OutcomeAdded Outcome = iota + 1
	OutcomeRemoved
	// OutcomeNotAdjacent: the region borders none of the selected regions.
	// The selection is unchanged.
	OutcomeNotAdjacent
	// OutcomeNotPurchasable: the region cannot be part of a regional purchase
	// (capital district or unknown). The selection is unchanged.
	OutcomeNotPurchasable
)

func (o Outcome) String() string {
	switch o {
	case OutcomeAdded:
		return "added"
	case OutcomeRemoved:
		return "removed"
	case OutcomeNotAdjacent:
		return "not_adjacent"
	case OutcomeNotPurchasable:
		return "not_purchasable"
	default:
		return "unknown"
	}
}

// Accepted reports whether the selection changed.
func (o Outcome) Accepted() bool {
	return o == OutcomeAdded || o == OutcomeRemoved
}

// Store holds one Selection.
type Store struct {
	graph *region.Graph
	state domain.Selection
}

// NewStore returns an empty store that checks contiguity against g.
func NewStore(g *region.Graph) *Store {
	return &Store{graph: g, state: domain.EmptySelection{}}
}

// SelectRegion toggles id in the region selection. Any nationwide pass is
// replaced. Rejected candidates leave the store untouched.
func (s *Store) SelectRegion(id domain.RegionID) Outcome {
	if !s.graph.Purchasable(id) {
		return OutcomeNotPurchasable
	}

	var current []domain.RegionID
	if rs, ok := s.state.(domain.RegionSelection); ok {
		current = rs.RegionIDs
	}
	if !region.IsSelectable(id, current, s.graph) {
		return OutcomeNotAdjacent
	}

	if i := slices.Index(current, id); i >= 0 {
		next := slices.Delete(slices.Clone(current), i, i+1)
		if len(next) == 0 {
			s.state = domain.EmptySelection{}
		} else {
			s.state = domain.RegionSelection{RegionIDs: next}
		}
		return OutcomeRemoved
	}

	next := append(slices.Clone(current), id)
	s.state = domain.RegionSelection{RegionIDs: next}
	return OutcomeAdded
}

// SelectSinglePass replaces the whole selection with a nationwide pass.
func (s *Store) SelectSinglePass(tier domain.TierCode, category string, price decimal.Decimal) {
	s.state = domain.SinglePassSelection{Tier: tier, Category: category, Price: price}
}

// Clear resets the store to EmptySelection.
func (s *Store) Clear() {
	s.state = domain.EmptySelection{}
}

// Snapshot returns a copy of the current selection that callers may keep.
func (s *Store) Snapshot() domain.Selection {
	return domain.CloneSelection(s.state)
}

// RegionIDs returns the selected regions, or nil outside region mode.
func (s *Store) RegionIDs() []domain.RegionID {
	if rs, ok := s.state.(domain.RegionSelection); ok {
		return slices.Clone(rs.RegionIDs)
	}
	return nil
}

// SinglePass returns the nationwide pass, if one is selected.
func (s *Store) SinglePass() (domain.SinglePassSelection, bool) {
	sp, ok := s.state.(domain.SinglePassSelection)
	return sp, ok
}
