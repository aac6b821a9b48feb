// Package netmap wires the pipeline together: validate hosts, classify
// subnets, build the connectivity graph, and derive subnet adjacency.
// Each stage produces an immutable snapshot; nothing here mutates a
// predecessor's output.
package netmap

import (
	"github.com/hopper-dev/hopper/internal/diag"
	"github.com/hopper-dev/hopper/internal/graph"
	"github.com/hopper-dev/hopper/internal/ipnet"
	"github.com/hopper-dev/hopper/internal/subnet"
)

// Result holds the outputs of one build over fixed inputs and mask.
type Result struct {
	Hosts          *ipnet.HostSet
	Classification *subnet.Classification
	Graph          *graph.Graph
	Adjacency      subnet.Adjacency
	Diagnostics    []diag.Diagnostic
}

// Build runs the full pipeline. Per-record problems in either input are
// collected as diagnostics; the only fatal condition is a host list that
// validates down to nothing.
func Build(hostLines, edgeLines []string, mask ipnet.Mask) (*Result, error) {
	hosts, diags, err := ipnet.ParseHosts(hostLines)
	if err != nil {
		return nil, err
	}

	cls := subnet.Classify(hosts, mask)
	g, edgeDiags := graph.Build(hosts, edgeLines)
	diags = append(diags, edgeDiags...)

	return &Result{
		Hosts:          hosts,
		Classification: cls,
		Graph:          g,
		Adjacency:      subnet.BuildAdjacency(cls, g),
		Diagnostics:    diags,
	}, nil
}
