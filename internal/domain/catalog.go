// Package domain contains the core types of the vignette service: catalog
// reference data, the selection sum type, priced selections and orders, and
// the Result/Failure model used by every I/O-facing operation.
// It imports no other internal package.
package domain

// Catalog is an immutable snapshot of the upstream product catalog. A new
// fetch replaces the whole value; nothing patches it in place.
type Catalog struct {
	Tiers      []VignetteTier
	Categories []VehicleCategory
	Regions    []Region
}

// TiersFor returns the tiers of the given vehicle category that list a code of
// the given kind, in catalog order.
func (c Catalog) TiersFor(category string, kind TierKind) []VignetteTier {
	var out []VignetteTier
	for _, t := range c.Tiers {
		if t.VehicleCategory == category && t.HasKind(kind) {
			out = append(out, t)
		}
	}
	return out
}

// Region looks up a region by ID.
func (c Catalog) Region(id RegionID) (Region, bool) {
	for _, r := range c.Regions {
		if r.ID == id {
			return r, true
		}
	}
	return Region{}, false
}

// Category looks up a vehicle category by code.
func (c Catalog) Category(code string) (VehicleCategory, bool) {
	for _, vc := range c.Categories {
		if vc.Code == code {
			return vc, true
		}
	}
	return VehicleCategory{}, false
}
