package domain

import "github.com/shopspring/decimal"

// TierKind is the closed set of vignette durations.
type TierKind int

const (
	TierDay TierKind = iota + 1
	TierWeek
	TierMonth
	TierYear
	// TierRegionalYear is a yearly pass valid in a single region. Codes of this
	// kind always carry a region.
	TierRegionalYear
)

// String returns the upper-case name used in logs and in the HTTP API.
func (k TierKind) String() string {
	switch k {
	case TierDay:
		return "DAY"
	case TierWeek:
		return "WEEK"
	case TierMonth:
		return "MONTH"
	case TierYear:
		return "YEAR"
	case TierRegionalYear:
		return "YEAR_REGION"
	default:
		return "UNKNOWN"
	}
}

// Nationwide reports whether the kind is a nationwide single pass.
func (k TierKind) Nationwide() bool {
	return k >= TierDay && k <= TierYear
}

// TierCode is a tagged tier identifier. The zero value is invalid.
// Build codes with NationwideCode or RegionalYearly.
type TierCode struct {
	kind   TierKind
	region RegionID
}

// NationwideCode returns the code for a nationwide pass of the given kind.
// It panics if kind is not nationwide.
func NationwideCode(kind TierKind) TierCode {
	if !kind.Nationwide() {
		panic("domain: NationwideCode called with " + kind.String())
	}
	return TierCode{kind: kind}
}

// RegionalYearly returns the code for a yearly pass of a single region.
func RegionalYearly(id RegionID) TierCode {
	return TierCode{kind: TierRegionalYear, region: id}
}

// Kind returns the duration kind of the code.
func (c TierCode) Kind() TierKind { return c.kind }

// Region returns the region of a regional yearly code.
func (c TierCode) Region() (RegionID, bool) {
	if c.kind != TierRegionalYear {
		return "", false
	}
	return c.region, true
}

// IsZero reports whether c is the zero TierCode.
func (c TierCode) IsZero() bool { return c.kind == 0 }

func (c TierCode) String() string {
	if c.kind == TierRegionalYear {
		return c.kind.String() + "(" + string(c.region) + ")"
	}
	return c.kind.String()
}

// VignetteTier is one price tier of the catalog. A tier may list several codes;
// regional tiers list one RegionalYearly code per region they cover.
type VignetteTier struct {
	Types           []TierCode
	VehicleCategory string
	UnitCost        decimal.Decimal
	TransactionFee  decimal.Decimal
	// Total is the upstream-provided unit cost plus fee. Informational only;
	// pricing always recomputes totals.
	Total decimal.Decimal
}

// HasKind reports whether any of the tier's codes is of kind k.
func (t VignetteTier) HasKind(k TierKind) bool {
	for _, c := range t.Types {
		if c.kind == k {
			return true
		}
	}
	return false
}

// Covers reports whether the tier lists the exact code c.
func (t VignetteTier) Covers(c TierCode) bool {
	for _, tc := range t.Types {
		if tc == c {
			return true
		}
	}
	return false
}
