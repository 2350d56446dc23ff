// Package region holds the static adjacency graph between administrative
// regions and the contiguity rule used when building a multi-region purchase.
// Everything here is immutable after construction and safe for concurrent use.
package region

import (
	"slices"

	"github.com/android-4dsoft/yettel/internal/domain"
)

// Edge is an undirected adjacency between two regions.
type Edge [2]domain.RegionID

// Graph is an undirected adjacency graph. Symmetry holds by construction:
// every edge is stored in both directions.
type Graph struct {
	adj     map[domain.RegionID]map[domain.RegionID]struct{}
	order   []domain.RegionID
	capital domain.RegionID
}

// NewGraph builds a graph from an edge list. capital names the region that is
// sold as its own product and is never purchasable in the multi-region flow;
// pass "" when there is none.
func NewGraph(capital domain.RegionID, edges []Edge) *Graph {
	g := &Graph{
		adj:     make(map[domain.RegionID]map[domain.RegionID]struct{}),
		capital: capital,
	}
	for _, e := range edges {
		g.link(e[0], e[1])
		g.link(e[1], e[0])
	}
	return g
}

func (g *Graph) link(from, to domain.RegionID) {
	set, ok := g.adj[from]
	if !ok {
		set = make(map[domain.RegionID]struct{})
		g.adj[from] = set
		g.order = append(g.order, from)
	}
	set[to] = struct{}{}
}

// Adjacent reports whether a and b share a border.
func (g *Graph) Adjacent(a, b domain.RegionID) bool {
	_, ok := g.adj[a][b]
	return ok
}

// Neighbours returns the regions adjacent to id, sorted.
func (g *Graph) Neighbours(id domain.RegionID) []domain.RegionID {
	out := make([]domain.RegionID, 0, len(g.adj[id]))
	for n := range g.adj[id] {
		out = append(out, n)
	}
	slices.Sort(out)
	return out
}

// Regions returns every region of the graph in first-seen edge order.
func (g *Graph) Regions() []domain.RegionID {
	return slices.Clone(g.order)
}

// Contains reports whether id is a node of the graph.
func (g *Graph) Contains(id domain.RegionID) bool {
	_, ok := g.adj[id]
	return ok
}

// Capital returns the capital district, or "" if the graph has none.
func (g *Graph) Capital() domain.RegionID { return g.capital }

// Purchasable reports whether id may appear in a multi-region selection.
// The capital district and regions outside the graph never may.
func (g *Graph) Purchasable(id domain.RegionID) bool {
	return id != g.capital && g.Contains(id)
}

// IsSelectable implements the weak contiguity rule: with nothing selected any
// candidate is selectable; otherwise the candidate must already be selected
// (so it can be toggled off) or border at least one selected region. It does
// not require the resulting set to be connected.
func IsSelectable(candidate domain.RegionID, current []domain.RegionID, g *Graph) bool {
	if len(current) == 0 {
		return true
	}
	for _, sel := range current {
		if sel == candidate || g.Adjacent(candidate, sel) {
			return true
		}
	}
	return false
}
