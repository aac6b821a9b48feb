package report

import (
	"strings"
	"testing"

	"github.com/hopper-dev/hopper/internal/export"
)

func fixtureModel() export.Model {
	return export.Model{
		Metadata: export.Metadata{
			SubnetMask:       "255.255.255.0",
			TotalNetworks:    2,
			TotalIPs:         3,
			TotalConnections: 2,
			GeneratedAt:      "2024-06-01 12:00:00",
		},
		Networks: map[string]export.Network{
			"10.0.0.0/24": {
				Label:       "Network A",
				IPs:         []string{"10.0.0.5", "10.0.0.15"},
				IPCount:     2,
				ConnectedTo: []string{"192.168.1.0/24"},
			},
			"192.168.1.0/24": {
				Label:       "Network B",
				IPs:         []string{"192.168.1.10"},
				IPCount:     1,
				ConnectedTo: []string{"10.0.0.0/24"},
			},
		},
		Nodes: []string{"10.0.0.5", "10.0.0.15", "192.168.1.10"},
		Edges: []export.Edge{
			{Source: "10.0.0.5", Target: "10.0.0.15", SourceNetwork: "10.0.0.0/24", TargetNetwork: "10.0.0.0/24"},
			{Source: "10.0.0.15", Target: "192.168.1.10", SourceNetwork: "10.0.0.0/24", TargetNetwork: "192.168.1.0/24", IsInterNetwork: true},
		},
	}
}

func TestRenderHTMLIncludesModelContent(t *testing.T) {
	html, err := RenderHTML(fixtureModel())
	if err != nil {
		t.Fatalf("RenderHTML failed: %v", err)
	}
	page := string(html)

	for _, expected := range []string{
		"2024-06-01 12:00:00",
		"255.255.255.0",
		"Network A",
		"Network B",
		"10.0.0.0/24",
		"192.168.1.0/24",
		"10.0.0.5",
		"(inter-network)",
		"<svg",
	} {
		if !strings.Contains(page, expected) {
			t.Fatalf("expected report to contain %q", expected)
		}
	}

	if !strings.Contains(page, "stroke-dasharray") {
		t.Fatalf("expected inter-network edge to render dashed in the SVG")
	}
}

func TestRenderHTMLIsDeterministic(t *testing.T) {
	first, err := RenderHTML(fixtureModel())
	if err != nil {
		t.Fatalf("RenderHTML failed: %v", err)
	}
	second, err := RenderHTML(fixtureModel())
	if err != nil {
		t.Fatalf("RenderHTML failed: %v", err)
	}
	if string(first) != string(second) {
		t.Fatalf("expected byte-identical reports for identical models")
	}
}

func TestRenderSVGPlacesEveryNode(t *testing.T) {
	svg := renderSVG(fixtureModel())
	if count := strings.Count(svg, "<circle"); count != 3 {
		t.Fatalf("expected 3 node circles, got %d", count)
	}
	if count := strings.Count(svg, "<line"); count != 2 {
		t.Fatalf("expected 2 edge lines, got %d", count)
	}
}
