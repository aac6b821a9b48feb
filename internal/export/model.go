// Package export assembles the canonical serialization of a classified,
// connected host set. The model is the sole contract offered to rendering
// and reporting consumers; field names and nesting are fixed.
package export

import (
	"sort"

	"github.com/hopper-dev/hopper/internal/graph"
	"github.com/hopper-dev/hopper/internal/ipnet"
	"github.com/hopper-dev/hopper/internal/subnet"
)

// Metadata summarizes one run. GeneratedAt is stamped by the caller, never
// computed here, so model construction stays a pure function.
type Metadata struct {
	SubnetMask       string `json:"subnet_mask"`
	TotalNetworks    int    `json:"total_networks"`
	TotalIPs         int    `json:"total_ips"`
	TotalConnections int    `json:"total_connections"`
	GeneratedAt      string `json:"generated_at"`
}

// Network is one subnet entry keyed by its CIDR in the model.
type Network struct {
	Label       string   `json:"label"`
	IPs         []string `json:"ips"`
	IPCount     int      `json:"ip_count"`
	ConnectedTo []string `json:"connected_to"`
}

// Edge is one connection with both endpoints resolved to their subnets.
type Edge struct {
	Source         string `json:"source"`
	Target         string `json:"target"`
	SourceNetwork  string `json:"source_network"`
	TargetNetwork  string `json:"target_network"`
	IsInterNetwork bool   `json:"is_inter_network"`
}

// Model is the canonical export shape.
type Model struct {
	Metadata Metadata           `json:"metadata"`
	Networks map[string]Network `json:"networks"`
	Nodes    []string           `json:"nodes"`
	Edges    []Edge             `json:"edges"`
}

// BuildModel derives the export model from the core results alone. Member
// and neighbor lists are sorted by ascending numeric address; nodes keep
// input insertion order; edges keep insertion order.
func BuildModel(hosts *ipnet.HostSet, cls *subnet.Classification, g *graph.Graph, adj subnet.Adjacency) Model {
	model := Model{
		Metadata: Metadata{
			SubnetMask:       cls.Mask.String(),
			TotalNetworks:    len(cls.Subnets),
			TotalIPs:         hosts.Len(),
			TotalConnections: g.EdgeCount(),
		},
		Networks: make(map[string]Network, len(cls.Subnets)),
		Nodes:    make([]string, 0, hosts.Len()),
		Edges:    make([]Edge, 0, g.EdgeCount()),
	}

	for _, sub := range cls.Subnets {
		members := make([]ipnet.Host, len(sub.Members))
		copy(members, sub.Members)
		sort.Slice(members, func(i, j int) bool { return members[i].Less(members[j]) })

		ips := make([]string, 0, len(members))
		for _, m := range members {
			ips = append(ips, m.String())
		}

		connected := make([]string, 0, len(adj[sub.Prefix]))
		for _, p := range adj[sub.Prefix] {
			connected = append(connected, p.String())
		}

		model.Networks[sub.CIDR()] = Network{
			Label:       sub.Label,
			IPs:         ips,
			IPCount:     len(ips),
			ConnectedTo: connected,
		}
	}

	for _, host := range hosts.Hosts() {
		model.Nodes = append(model.Nodes, host.String())
	}

	for _, e := range g.Edges() {
		src := cls.SubnetOf(e.A)
		dst := cls.SubnetOf(e.B)
		model.Edges = append(model.Edges, Edge{
			Source:         hosts.At(e.A).String(),
			Target:         hosts.At(e.B).String(),
			SourceNetwork:  src.CIDR(),
			TargetNetwork:  dst.CIDR(),
			IsInterNetwork: src != dst,
		})
	}

	return model
}
