package wire

import (
	"github.com/shopspring/decimal"

	"github.com/android-4dsoft/yettel/internal/domain"
)

// Skipped lists wire values a mapper could not represent in the domain. The
// caller logs them; they never fail the whole payload.
type Skipped struct {
	TierCodes   []string
	RegionCodes []string
}

// Empty reports whether nothing was skipped.
func (s Skipped) Empty() bool {
	return len(s.TierCodes) == 0 && len(s.RegionCodes) == 0
}

// ToCatalog maps the highway info envelope to a domain catalog. A missing
// payload yields an empty catalog.
func ToCatalog(resp APIResponse[HighwayInfoPayload]) (domain.Catalog, Skipped) {
	var (
		cat     domain.Catalog
		skipped Skipped
	)
	if resp.Payload == nil {
		return domain.Catalog{Tiers: []domain.VignetteTier{}, Categories: []domain.VehicleCategory{}, Regions: []domain.Region{}}, skipped
	}
	p := resp.Payload

	cat.Tiers = make([]domain.VignetteTier, 0, len(p.HighwayVignettes))
	for _, v := range p.HighwayVignettes {
		tier := domain.VignetteTier{
			Types:           make([]domain.TierCode, 0, len(v.VignetteType)),
			VehicleCategory: v.VehicleCategory,
			UnitCost:        decimal.NewFromFloat(v.Cost),
			TransactionFee:  decimal.NewFromFloat(v.TrxFee),
			Total:           decimal.NewFromFloat(v.Sum),
		}
		for _, raw := range v.VignetteType {
			code, err := DecodeTierCode(raw)
			if err != nil {
				skipped.TierCodes = append(skipped.TierCodes, raw)
				continue
			}
			tier.Types = append(tier.Types, code)
		}
		cat.Tiers = append(cat.Tiers, tier)
	}

	cat.Categories = make([]domain.VehicleCategory, 0, len(p.VehicleCategories))
	for _, c := range p.VehicleCategories {
		cat.Categories = append(cat.Categories, domain.VehicleCategory{
			Code:            c.Category,
			DisplayCategory: c.VignetteCategory,
			Name:            toLocalizedName(c.Name),
		})
	}

	cat.Regions = make([]domain.Region, 0, len(p.Counties))
	for _, c := range p.Counties {
		id, err := DecodeRegionCode(c.ID)
		if err != nil {
			skipped.RegionCodes = append(skipped.RegionCodes, c.ID)
			continue
		}
		cat.Regions = append(cat.Regions, domain.Region{ID: id, DisplayName: c.Name})
	}
	return cat, skipped
}

// ToVehicle maps the vehicle endpoint's response to a domain vehicle.
func ToVehicle(v VehicleInfo) domain.Vehicle {
	return domain.Vehicle{
		Category:          v.Type,
		Plate:             v.Plate,
		OwnerName:         v.Name,
		Country:           toLocalizedName(v.Country),
		InternationalCode: v.InternationalRegistrationCode,
		VignetteType:      v.VignetteType,
	}
}

// FromOrder maps a domain order to the submit request, preserving line order.
func FromOrder(o domain.Order) HighwayOrderRequest {
	req := HighwayOrderRequest{HighwayOrders: make([]HighwayOrder, 0, len(o.Lines))}
	for _, l := range o.Lines {
		req.HighwayOrders = append(req.HighwayOrders, HighwayOrder{
			Type:     l.Code,
			Category: l.Category,
			Cost:     l.Cost.InexactFloat64(),
		})
	}
	return req
}

// ToConfirmation maps the submit response to a domain confirmation.
func ToConfirmation(r HighwayOrderResponse) domain.OrderConfirmation {
	conf := domain.OrderConfirmation{
		StatusCode:    r.StatusCode,
		AcceptedLines: make([]domain.OrderLine, 0, len(r.ReceivedOrders)),
		Message:       r.Message,
	}
	for _, o := range r.ReceivedOrders {
		conf.AcceptedLines = append(conf.AcceptedLines, domain.OrderLine{
			Code:     o.Type,
			Category: o.Category,
			Cost:     decimal.NewFromFloat(o.Cost),
		})
	}
	return conf
}

func toLocalizedName(t LocalizedText) domain.LocalizedName {
	return domain.LocalizedName{Primary: t.HU, Secondary: t.EN}
}
