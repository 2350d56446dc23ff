// Package pricing turns a catalog and a selection into a priced selection and
// a wire-ready order. Every function is pure.
package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/android-4dsoft/yettel/internal/domain"
)

// PriceRegionSelection prices one regional yearly pass per selected region.
// All regional tiers of a category share one price, so the first matching
// tier supplies the unit cost and the flat transaction fee. Lines keep the
// selection order; a region missing from regions is labelled with its ID.
// Returns domain.ErrNoMatchingTier when the category has no regional tier.
func PriceRegionSelection(ids []domain.RegionID, tiers []domain.VignetteTier, regions []domain.Region, category string) (domain.PricedSelection, error) {
	tier, ok := firstTier(tiers, category, func(t domain.VignetteTier) bool {
		return t.HasKind(domain.TierRegionalYear)
	})
	if !ok {
		return domain.PricedSelection{}, fmt.Errorf("%w: no regional yearly tier for category %q", domain.ErrNoMatchingTier, category)
	}

	names := make(map[domain.RegionID]string, len(regions))
	for _, r := range regions {
		names[r.ID] = r.DisplayName
	}

	priced := domain.PricedSelection{
		Category:       category,
		Lines:          make([]domain.PricedLine, 0, len(ids)),
		TransactionFee: tier.TransactionFee,
	}
	subtotal := decimal.Zero
	for _, id := range ids {
		label, ok := names[id]
		if !ok {
			label = string(id)
		}
		priced.Lines = append(priced.Lines, domain.PricedLine{
			Code:  domain.RegionalYearly(id),
			Label: label,
			Cost:  tier.UnitCost,
		})
		subtotal = subtotal.Add(tier.UnitCost)
	}
	priced.Total = subtotal.Add(tier.TransactionFee)
	return priced, nil
}

// PriceSinglePass prices a nationwide pass at the price stored in the
// selection, adding the fee of the tier that lists the selected code.
// Returns domain.ErrNoMatchingTier when no such tier exists for category.
func PriceSinglePass(sel domain.SinglePassSelection, tiers []domain.VignetteTier, category string) (domain.PricedSelection, error) {
	tier, ok := firstTier(tiers, category, func(t domain.VignetteTier) bool {
		return t.Covers(sel.Tier)
	})
	if !ok {
		return domain.PricedSelection{}, fmt.Errorf("%w: no %s tier for category %q", domain.ErrNoMatchingTier, sel.Tier, category)
	}
	return domain.PricedSelection{
		Category: category,
		Lines: []domain.PricedLine{{
			Code:  sel.Tier,
			Label: sel.Tier.Kind().String(),
			Cost:  sel.Price,
		}},
		TransactionFee: tier.TransactionFee,
		Total:          sel.Price.Add(tier.TransactionFee),
	}, nil
}

// Price dispatches on the selection variant. Nationwide passes are priced for
// the category stored with the selection; regions for category.
// Returns domain.ErrEmptySelection for an empty selection.
func Price(sel domain.Selection, cat domain.Catalog, category string) (domain.PricedSelection, error) {
	switch s := sel.(type) {
	case domain.RegionSelection:
		if len(s.RegionIDs) == 0 {
			return domain.PricedSelection{}, domain.ErrEmptySelection
		}
		return PriceRegionSelection(s.RegionIDs, cat.Tiers, cat.Regions, category)
	case domain.SinglePassSelection:
		return PriceSinglePass(s, cat.Tiers, s.Category)
	default:
		return domain.PricedSelection{}, domain.ErrEmptySelection
	}
}

// BuildOrder produces the submit payload for a priced selection. encode maps
// tier codes to their wire form; regional lines are encoded from
// RegionalYearly(id), a nationwide pass yields exactly one line.
func BuildOrder(sel domain.Selection, priced domain.PricedSelection, encode func(domain.TierCode) string) (domain.Order, error) {
	switch s := sel.(type) {
	case domain.RegionSelection:
		if len(s.RegionIDs) == 0 {
			return domain.Order{}, domain.ErrEmptySelection
		}
		if len(priced.Lines) != len(s.RegionIDs) {
			return domain.Order{}, fmt.Errorf("pricing.BuildOrder: priced %d lines for %d regions", len(priced.Lines), len(s.RegionIDs))
		}
		order := domain.Order{Lines: make([]domain.OrderLine, 0, len(s.RegionIDs))}
		for i, id := range s.RegionIDs {
			order.Lines = append(order.Lines, domain.OrderLine{
				Code:     encode(domain.RegionalYearly(id)),
				Category: priced.Category,
				Cost:     priced.Lines[i].Cost,
			})
		}
		return order, nil
	case domain.SinglePassSelection:
		return domain.Order{Lines: []domain.OrderLine{{
			Code:     encode(s.Tier),
			Category: s.Category,
			Cost:     s.Price,
		}}}, nil
	default:
		return domain.Order{}, domain.ErrEmptySelection
	}
}

func firstTier(tiers []domain.VignetteTier, category string, match func(domain.VignetteTier) bool) (domain.VignetteTier, bool) {
	for _, t := range tiers {
		if t.VehicleCategory == category && match(t) {
			return t, true
		}
	}
	return domain.VignetteTier{}, false
}
