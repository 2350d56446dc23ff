package region_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/android-4dsoft/yettel/internal/domain"
	"github.com/android-4dsoft/yettel/internal/region"
)

func TestHungary_HasTwentyRegions(t *testing.T) {
	regions := region.HungaryRegions()

	require.Len(t, regions, 20)
	assert.Equal(t, region.Budapest, regions[0].ID)
	assert.Equal(t, domain.RegionID("11"), regions[1].ID)
	assert.Equal(t, domain.RegionID("29"), regions[19].ID)
	for _, r := range regions {
		assert.NotEmpty(t, r.DisplayName, "region %s has no name", r.ID)
	}
}

// Every edge must be visible from both ends.
func TestHungary_Symmetric(t *testing.T) {
	g := region.Hungary()

	for _, a := range g.Regions() {
		for _, b := range g.Neighbours(a) {
			assert.True(t, g.Adjacent(b, a), "%s-%s is not symmetric", a, b)
		}
	}
}

func TestHungary_CapitalBordersPestOnly(t *testing.T) {
	g := region.Hungary()

	assert.Equal(t, []domain.RegionID{"23"}, g.Neighbours(region.Budapest))
	assert.False(t, g.Purchasable(region.Budapest))
	assert.True(t, g.Purchasable("23"))
	assert.False(t, g.Purchasable("99"), "unknown regions are never purchasable")
}

func TestIsSelectable_EmptySelectionAcceptsEverything(t *testing.T) {
	g := region.Hungary()

	for _, id := range g.Regions() {
		assert.True(t, region.IsSelectable(id, nil, g), "candidate %s", id)
	}
	assert.True(t, region.IsSelectable("99", []domain.RegionID{}, g))
}

func TestIsSelectable_MemberIsAlwaysSelectable(t *testing.T) {
	g := region.Hungary()
	current := []domain.RegionID{"11", "29", "25"}

	for _, id := range current {
		assert.True(t, region.IsSelectable(id, current, g), "member %s", id)
	}
}

func TestIsSelectable_AdjacentToAnySelected(t *testing.T) {
	g := region.Hungary()

	// Zala (29) borders Vas (27) but not Bács-Kiskun (11).
	assert.True(t, region.IsSelectable("29", []domain.RegionID{"11", "27"}, g))
	assert.False(t, region.IsSelectable("29", []domain.RegionID{"11"}, g))
}

// The rule accepts a chain of pairwise-adjacent regions and does not re-check
// connectivity when a middle link is removed.
func TestIsSelectable_WeakContiguityChain(t *testing.T) {
	g := region.Hungary()

	assert.True(t, region.IsSelectable("23", []domain.RegionID{"11"}, g))
	assert.True(t, region.IsSelectable("22", []domain.RegionID{"11", "23"}, g))
	assert.False(t, region.IsSelectable("22", []domain.RegionID{"11"}, g))
	// {11, 22} is disconnected, yet a neighbour of 22 is still accepted.
	assert.True(t, region.IsSelectable("14", []domain.RegionID{"11", "22"}, g))
}

func TestNewGraph_CustomEdges(t *testing.T) {
	g := region.NewGraph("", []region.Edge{{"A", "B"}, {"B", "C"}})

	assert.True(t, g.Adjacent("C", "B"))
	assert.False(t, g.Adjacent("A", "C"))
	assert.Equal(t, []domain.RegionID{"A", "C"}, g.Neighbours("B"))
	assert.True(t, g.Purchasable("A"))
	assert.False(t, region.IsSelectable("Z", []domain.RegionID{"A"}, g))
}
