package subnet

import (
	"net/netip"
	"sort"

	"github.com/hopper-dev/hopper/internal/graph"
)

// Adjacency maps each subnet prefix to the distinct other subnets it shares
// at least one edge with. Values are sorted by ascending network address and
// never contain the key itself.
type Adjacency map[netip.Prefix][]netip.Prefix

// BuildAdjacency derives subnet connectivity from the graph edges whose
// endpoints fall in different subnets. Every classified subnet appears as a
// key, isolated ones with an empty neighbor list.
func BuildAdjacency(cls *Classification, g *graph.Graph) Adjacency {
	neighbors := make([]map[int]bool, len(cls.Subnets))
	for i := range neighbors {
		neighbors[i] = make(map[int]bool)
	}

	for _, edge := range g.Edges() {
		sa := cls.SubnetIndex(edge.A)
		sb := cls.SubnetIndex(edge.B)
		if sa == sb {
			continue
		}
		neighbors[sa][sb] = true
		neighbors[sb][sa] = true
	}

	adj := make(Adjacency, len(cls.Subnets))
	for i, sub := range cls.Subnets {
		linked := make([]netip.Prefix, 0, len(neighbors[i]))
		for j := range neighbors[i] {
			linked = append(linked, cls.Subnets[j].Prefix)
		}
		sort.Slice(linked, func(a, b int) bool {
			return linked[a].Addr().Compare(linked[b].Addr()) < 0
		})
		adj[sub.Prefix] = linked
	}
	return adj
}
