package graph

import (
	"fmt"

	"github.com/hopper-dev/hopper/internal/ipnet"
)

// HostNotFoundError reports a path query endpoint that is not a member of
// the graph's host set.
type HostNotFoundError struct {
	Host string
}

func (e *HostNotFoundError) Error() string {
	return fmt.Sprintf("host %s not found in the host list", e.Host)
}

// Path is an ordered host sequence where every consecutive pair is a graph
// edge. Hop count is len(Hops)-1.
type Path struct {
	Hops []ipnet.Host
}

// Len returns the hop count.
func (p *Path) Len() int {
	return len(p.Hops) - 1
}

// FindPath runs a breadth-first search from src to dst and returns a
// shortest path. Neighbors are expanded in edge insertion order, which fixes
// the tie-break between equal-length paths and makes results reproducible.
// A nil Path with a nil error means dst is unreachable from src; an unknown
// endpoint is a *HostNotFoundError.
func FindPath(g *Graph, src, dst ipnet.Host) (*Path, error) {
	si, ok := g.hosts.Index(src)
	if !ok {
		return nil, &HostNotFoundError{Host: src.String()}
	}
	di, ok := g.hosts.Index(dst)
	if !ok {
		return nil, &HostNotFoundError{Host: dst.String()}
	}
	if si == di {
		return &Path{Hops: []ipnet.Host{src}}, nil
	}

	visited := make([]bool, g.hosts.Len())
	parent := make([]int, g.hosts.Len())
	for i := range parent {
		parent[i] = -1
	}

	queue := []int{si}
	visited[si] = true
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur == di {
			break
		}
		for _, nb := range g.adj[cur] {
			if visited[nb] {
				continue
			}
			visited[nb] = true
			parent[nb] = cur
			queue = append(queue, nb)
		}
	}

	if !visited[di] {
		return nil, nil
	}

	var hops []ipnet.Host
	for at := di; at != -1; at = parent[at] {
		hops = append(hops, g.hosts.At(at))
	}
	for i, j := 0, len(hops)-1; i < j; i, j = i+1, j-1 {
		hops[i], hops[j] = hops[j], hops[i]
	}
	return &Path{Hops: hops}, nil
}
