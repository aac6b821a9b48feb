package graph

import (
	"fmt"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/hopper-dev/hopper/internal/ipnet"
)

// buildRandomGraph turns a node count and a list of raw pair codes into a
// graph over hosts 10.0.0.1 .. 10.0.0.n.
func buildRandomGraph(t testingT, n int, pairCodes []int) (*Graph, *ipnet.HostSet) {
	lines := make([]string, 0, n)
	for i := 1; i <= n; i++ {
		lines = append(lines, fmt.Sprintf("10.0.0.%d", i))
	}
	hosts, _, err := ipnet.ParseHosts(lines)
	if err != nil {
		t.Fatalf("ParseHosts failed: %v", err)
	}

	edgeLines := make([]string, 0, len(pairCodes))
	for _, code := range pairCodes {
		a := code % n
		b := (code / n) % n
		edgeLines = append(edgeLines, fmt.Sprintf("10.0.0.%d-10.0.0.%d", a+1, b+1))
	}
	g, _ := Build(hosts, edgeLines)
	return g, hosts
}

type testingT interface {
	Fatalf(format string, args ...any)
}

// referenceDistances is a brute-force all-pairs shortest path used to check
// the BFS result, deliberately independent of the production traversal.
func referenceDistances(g *Graph) [][]int {
	n := g.Hosts().Len()
	const inf = 1 << 20
	dist := make([][]int, n)
	for i := range dist {
		dist[i] = make([]int, n)
		for j := range dist[i] {
			if i == j {
				dist[i][j] = 0
			} else {
				dist[i][j] = inf
			}
		}
	}
	for _, e := range g.Edges() {
		dist[e.A][e.B] = 1
		dist[e.B][e.A] = 1
	}
	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if dist[i][k]+dist[k][j] < dist[i][j] {
					dist[i][j] = dist[i][k] + dist[k][j]
				}
			}
		}
	}
	return dist
}

func TestFindPathProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("path length matches brute-force distance", prop.ForAll(
		func(n int, pairCodes []int) bool {
			g, hosts := buildRandomGraph(t, n, pairCodes)
			dist := referenceDistances(g)
			const inf = 1 << 20

			for i := 0; i < hosts.Len(); i++ {
				for j := 0; j < hosts.Len(); j++ {
					path, err := FindPath(g, hosts.At(i), hosts.At(j))
					if err != nil {
						return false
					}
					if dist[i][j] >= inf {
						if path != nil {
							return false
						}
						continue
					}
					if path == nil || path.Len() != dist[i][j] {
						return false
					}
				}
			}
			return true
		},
		gen.IntRange(2, 12),
		gen.SliceOfN(20, gen.IntRange(0, 1<<15)),
	))

	properties.Property("every consecutive path pair is a graph edge", prop.ForAll(
		func(n int, pairCodes []int) bool {
			g, hosts := buildRandomGraph(t, n, pairCodes)

			edgeSet := make(map[Edge]bool)
			for _, e := range g.Edges() {
				edgeSet[e] = true
			}

			for i := 0; i < hosts.Len(); i++ {
				for j := 0; j < hosts.Len(); j++ {
					path, err := FindPath(g, hosts.At(i), hosts.At(j))
					if err != nil || path == nil {
						continue
					}
					seen := make(map[ipnet.Host]bool)
					for _, h := range path.Hops {
						if seen[h] {
							return false // revisited a host
						}
						seen[h] = true
					}
					for k := 0; k+1 < len(path.Hops); k++ {
						a, _ := hosts.Index(path.Hops[k])
						b, _ := hosts.Index(path.Hops[k+1])
						if b < a {
							a, b = b, a
						}
						if !edgeSet[Edge{A: a, B: b}] {
							return false
						}
					}
				}
			}
			return true
		},
		gen.IntRange(2, 12),
		gen.SliceOfN(20, gen.IntRange(0, 1<<15)),
	))

	properties.TestingRun(t)
}
