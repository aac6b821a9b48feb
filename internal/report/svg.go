package report

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/hopper-dev/hopper/internal/export"
)

const (
	svgWidth   = 920
	svgHeight  = 640
	nodeRadius = 16
)

// palette cycles per network, matching the report's legend order.
var palette = []string{
	"#4e79a7", "#f28e2b", "#59a14f", "#e15759", "#76b7b2",
	"#edc948", "#b07aa1", "#ff9da7", "#9c755f", "#bab0ac",
}

// renderSVG draws the graph with nodes on a circle in node-list order, so
// identical inputs always produce the identical drawing. Inter-network
// edges are dashed.
func renderSVG(m export.Model) string {
	positions := nodePositions(len(m.Nodes))
	nodeIndex := make(map[string]int, len(m.Nodes))
	for i, node := range m.Nodes {
		nodeIndex[node] = i
	}

	colors := networkColors(m)
	nodeNetwork := make(map[string]string)
	for cidr, network := range m.Networks {
		for _, ip := range network.IPs {
			nodeNetwork[ip] = cidr
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" width="%d" height="%d">`+"\n",
		svgWidth, svgHeight, svgWidth, svgHeight)

	for _, edge := range m.Edges {
		src := positions[nodeIndex[edge.Source]]
		dst := positions[nodeIndex[edge.Target]]
		dash := ""
		if edge.IsInterNetwork {
			dash = ` stroke-dasharray="6 4"`
		}
		fmt.Fprintf(&b, `  <line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="#9a9a9a" stroke-width="1.5"%s/>`+"\n",
			src[0], src[1], dst[0], dst[1], dash)
	}

	for i, node := range m.Nodes {
		pos := positions[i]
		fill := colors[nodeNetwork[node]]
		if fill == "" {
			fill = "#cccccc"
		}
		fmt.Fprintf(&b, `  <circle cx="%.1f" cy="%.1f" r="%d" fill="%s" stroke="#333333"/>`+"\n",
			pos[0], pos[1], nodeRadius, fill)
		fmt.Fprintf(&b, `  <text x="%.1f" y="%.1f" text-anchor="middle" font-size="11" font-family="monospace">%s</text>`+"\n",
			pos[0], pos[1]+float64(nodeRadius)+13, node)
	}

	b.WriteString("</svg>\n")
	return b.String()
}

// nodePositions lays n nodes out on a circle centered in the canvas.
func nodePositions(n int) [][2]float64 {
	positions := make([][2]float64, n)
	cx := float64(svgWidth) / 2
	cy := float64(svgHeight) / 2
	r := math.Min(cx, cy) - 70
	for i := range positions {
		angle := 2 * math.Pi * float64(i) / float64(max(n, 1))
		positions[i] = [2]float64{
			cx + r*math.Cos(angle-math.Pi/2),
			cy + r*math.Sin(angle-math.Pi/2),
		}
	}
	return positions
}

// networkColors assigns palette colors by ascending CIDR string so colors
// are stable across runs.
func networkColors(m export.Model) map[string]string {
	cidrs := make([]string, 0, len(m.Networks))
	for cidr := range m.Networks {
		cidrs = append(cidrs, cidr)
	}
	sort.Strings(cidrs)

	colors := make(map[string]string, len(cidrs))
	for i, cidr := range cidrs {
		colors[cidr] = palette[i%len(palette)]
	}
	return colors
}
