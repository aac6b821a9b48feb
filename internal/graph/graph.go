// Package graph builds the undirected host connectivity graph and answers
// shortest-path queries over it. Hosts are addressed by their dense indices
// in the validated host set, so traversal never hashes address strings and
// neighbor order is exactly edge insertion order.
package graph

import (
	"strings"

	"github.com/hopper-dev/hopper/internal/diag"
	"github.com/hopper-dev/hopper/internal/ipnet"
)

// Edge is an unordered host pair, stored with the numerically smaller
// address first so {a,b} and {b,a} normalize to the same value.
type Edge struct {
	A, B int // dense host indices
}

// Graph is a simple undirected graph over a validated host set: no
// self-loops, no duplicate edges, every endpoint a known host.
type Graph struct {
	hosts *ipnet.HostSet
	adj   [][]int // host index -> neighbor indices, edge insertion order
	edges []Edge  // edge insertion order
}

// Build parses raw "IP-IP" edge records against the known hosts. Malformed
// records, edges naming unknown hosts, and self-edges produce diagnostics
// and are skipped; repeated pairs are deduplicated silently since
// bidirectional input files commonly list both directions.
func Build(hosts *ipnet.HostSet, lines []string) (*Graph, []diag.Diagnostic) {
	g := &Graph{
		hosts: hosts,
		adj:   make([][]int, hosts.Len()),
	}
	seen := make(map[Edge]bool)
	var diags []diag.Diagnostic

	for i, line := range lines {
		record := i + 1
		parts := strings.Split(line, "-")
		if len(parts) != 2 {
			diags = append(diags, diag.Warnf(record, line, diag.MalformedEdge,
				"expected exactly one '-' separator, got %d tokens", len(parts)))
			continue
		}

		a, err := ipnet.ParseHost(strings.TrimSpace(parts[0]))
		if err != nil {
			diags = append(diags, diag.Warnf(record, line, diag.MalformedEdge, "left endpoint: %v", err))
			continue
		}
		b, err := ipnet.ParseHost(strings.TrimSpace(parts[1]))
		if err != nil {
			diags = append(diags, diag.Warnf(record, line, diag.MalformedEdge, "right endpoint: %v", err))
			continue
		}

		ia, ok := hosts.Index(a)
		if !ok {
			diags = append(diags, diag.Warnf(record, line, diag.DanglingEdge,
				"host %s not in the host list", a))
			continue
		}
		ib, ok := hosts.Index(b)
		if !ok {
			diags = append(diags, diag.Warnf(record, line, diag.DanglingEdge,
				"host %s not in the host list", b))
			continue
		}
		if ia == ib {
			diags = append(diags, diag.Warnf(record, line, diag.SelfEdge,
				"edge connects %s to itself", a))
			continue
		}

		if hosts.At(ib).Less(hosts.At(ia)) {
			ia, ib = ib, ia
		}
		edge := Edge{A: ia, B: ib}
		if seen[edge] {
			continue
		}
		seen[edge] = true
		g.edges = append(g.edges, edge)
		g.adj[ia] = append(g.adj[ia], ib)
		g.adj[ib] = append(g.adj[ib], ia)
	}

	return g, diags
}

// Hosts returns the host set the graph was built over.
func (g *Graph) Hosts() *ipnet.HostSet {
	return g.hosts
}

// Edges returns all edges in insertion order. The slice must not be mutated.
func (g *Graph) Edges() []Edge {
	return g.edges
}

// EdgeCount returns the number of distinct edges.
func (g *Graph) EdgeCount() int {
	return len(g.edges)
}

// Neighbors returns the neighbor indices of host i in edge insertion order.
func (g *Graph) Neighbors(i int) []int {
	return g.adj[i]
}
