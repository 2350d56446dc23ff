// Package wire is the boundary between the service and the upstream vignette
// API: JSON shapes, the "YEAR_" code convention, and the mappers between wire
// values and domain types. No other package knows the code prefix.
package wire

import (
	"fmt"
	"strings"

	"github.com/android-4dsoft/yettel/internal/domain"
)

// regionalPrefix marks a regional yearly code, e.g. "YEAR_11".
const regionalPrefix = "YEAR_"

// capitalCode is the wire code of the capital district. It is not a regional
// yearly code.
const capitalCode = "BP"

var nationwideCodes = map[string]domain.TierKind{
	"DAY":   domain.TierDay,
	"WEEK":  domain.TierWeek,
	"MONTH": domain.TierMonth,
	"YEAR":  domain.TierYear,
}

// IsRegionalCode reports whether s uses the regional yearly prefix.
func IsRegionalCode(s string) bool {
	return strings.HasPrefix(s, regionalPrefix)
}

// EncodeTierCode returns the wire code of c.
func EncodeTierCode(c domain.TierCode) string {
	if id, ok := c.Region(); ok {
		return EncodeRegionCode(id)
	}
	return c.Kind().String()
}

// DecodeTierCode parses a wire tier code. Region suffixes must be numeric.
func DecodeTierCode(s string) (domain.TierCode, error) {
	if kind, ok := nationwideCodes[s]; ok {
		return domain.NationwideCode(kind), nil
	}
	if IsRegionalCode(s) {
		id, err := DecodeRegionCode(s)
		if err != nil {
			return domain.TierCode{}, err
		}
		return domain.RegionalYearly(id), nil
	}
	return domain.TierCode{}, fmt.Errorf("wire: unknown tier code %q", s)
}

// ParseTierKind parses a nationwide pass name ("DAY", "WEEK", "MONTH", "YEAR").
func ParseTierKind(s string) (domain.TierKind, error) {
	if kind, ok := nationwideCodes[strings.ToUpper(strings.TrimSpace(s))]; ok {
		return kind, nil
	}
	return 0, fmt.Errorf("wire: unknown pass %q", s)
}

// EncodeRegionCode returns the wire code of a region: "YEAR_"+id for
// counties, "BP" for the capital district.
func EncodeRegionCode(id domain.RegionID) string {
	if string(id) == capitalCode {
		return capitalCode
	}
	return regionalPrefix + string(id)
}

// DecodeRegionCode is the inverse of EncodeRegionCode.
func DecodeRegionCode(s string) (domain.RegionID, error) {
	if s == capitalCode {
		return domain.RegionID(capitalCode), nil
	}
	suffix, ok := strings.CutPrefix(s, regionalPrefix)
	if !ok || suffix == "" {
		return "", fmt.Errorf("wire: %q is not a region code", s)
	}
	for _, r := range suffix {
		if r < '0' || r > '9' {
			return "", fmt.Errorf("wire: region code %q has a non-numeric suffix", s)
		}
	}
	return domain.RegionID(suffix), nil
}
