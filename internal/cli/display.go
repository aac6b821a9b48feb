package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/hopper-dev/hopper/internal/graph"
	"github.com/hopper-dev/hopper/internal/subnet"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true)
	labelStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	cidrStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	hostStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// RenderNetworks lists each subnet with its label, CIDR, and members in
// input order.
func RenderNetworks(cls *subnet.Classification) string {
	var b strings.Builder
	b.WriteString(headingStyle.Render("Classified Networks") + "\n")
	for _, sub := range cls.Subnets {
		fmt.Fprintf(&b, "\n%s: %s\n", labelStyle.Render(sub.Label), cidrStyle.Render(sub.CIDR()))
		for _, member := range sub.Members {
			fmt.Fprintf(&b, "   %s %s\n", mutedStyle.Render("-"), hostStyle.Render(member.String()))
		}
	}
	return b.String()
}

// RenderAdjacency lists which subnets are directly connected, in subnet
// label order.
func RenderAdjacency(cls *subnet.Classification, adj subnet.Adjacency) string {
	var b strings.Builder
	b.WriteString(headingStyle.Render("Connected Networks") + "\n")
	any := false
	for _, sub := range cls.Subnets {
		neighbors := adj[sub.Prefix]
		if len(neighbors) == 0 {
			continue
		}
		any = true
		fmt.Fprintf(&b, "\n%s (%s) connects to:\n", labelStyle.Render(sub.Label), cidrStyle.Render(sub.CIDR()))
		for _, p := range neighbors {
			fmt.Fprintf(&b, "   %s %s\n", mutedStyle.Render("-"), cidrStyle.Render(p.String()))
		}
	}
	if !any {
		b.WriteString("\n" + mutedStyle.Render("No inter-network connections.") + "\n")
	}
	return b.String()
}

// RenderPath prints the hop chain of a found path.
func RenderPath(path *graph.Path) string {
	hops := make([]string, 0, len(path.Hops))
	for _, h := range path.Hops {
		hops = append(hops, hostStyle.Render(h.String()))
	}
	arrow := mutedStyle.Render(" -> ")
	return fmt.Sprintf("%s (%d hops)\n%s\n",
		headingStyle.Render("Path Found"), path.Len(), strings.Join(hops, arrow))
}
