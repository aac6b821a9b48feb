// Package report renders a standalone HTML report from the export model.
// It consumes the model only; nothing here reaches back into the core
// pipeline types.
package report

import (
	"bytes"
	"fmt"
	"html/template"
	"sort"

	"github.com/hopper-dev/hopper/internal/export"
)

const pageTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Hopper Network Report</title>
<style>
body { font-family: sans-serif; margin: 2em; color: #222; }
table { border-collapse: collapse; }
td, th { border: 1px solid #bbb; padding: 4px 10px; text-align: left; }
.network { margin: 1em 0; padding: 0.6em 1em; border-left: 4px solid #4e79a7; background: #f7f7f7; }
.inter { color: #b03030; }
code { font-family: monospace; }
</style>
</head>
<body>
<h1>Hopper Network Report</h1>
<p><b>Generated:</b> {{.Model.Metadata.GeneratedAt}}</p>

<h2>Summary</h2>
<table>
<tr><th>Subnet mask</th><td><code>{{.Model.Metadata.SubnetMask}}</code></td></tr>
<tr><th>Networks</th><td>{{.Model.Metadata.TotalNetworks}}</td></tr>
<tr><th>Hosts</th><td>{{.Model.Metadata.TotalIPs}}</td></tr>
<tr><th>Connections</th><td>{{.Model.Metadata.TotalConnections}}</td></tr>
</table>

<h2>Network Graph</h2>
{{.SVG}}

<h2>Networks</h2>
{{range .Networks}}
<div class="network">
<h3>{{.Record.Label}}: <code>{{.CIDR}}</code></h3>
<p>{{.Record.IPCount}} host(s)</p>
<ul>
{{range .Record.IPs}}<li><code>{{.}}</code></li>
{{end}}</ul>
{{if .Record.ConnectedTo}}<p>Connected to:
{{range .Record.ConnectedTo}}<code>{{.}}</code> {{end}}</p>
{{else}}<p>No inter-network connections.</p>
{{end}}</div>
{{end}}

<h2>Connectivity Edges</h2>
<ul>
{{range .Model.Edges}}<li><code>{{.Source}}</code> &harr; <code>{{.Target}}</code>{{if .IsInterNetwork}} <span class="inter">(inter-network)</span>{{end}}</li>
{{end}}</ul>
</body>
</html>
`

type networkEntry struct {
	CIDR   string
	Record export.Network
}

type pageData struct {
	Model    export.Model
	SVG      template.HTML
	Networks []networkEntry
}

var page = template.Must(template.New("report").Parse(pageTemplate))

// RenderHTML renders the full report. Networks are listed in label order.
func RenderHTML(m export.Model) ([]byte, error) {
	networks := make([]networkEntry, 0, len(m.Networks))
	for cidr, record := range m.Networks {
		networks = append(networks, networkEntry{CIDR: cidr, Record: record})
	}
	sort.Slice(networks, func(i, j int) bool {
		a, b := networks[i].Record.Label, networks[j].Record.Label
		if len(a) != len(b) {
			return len(a) < len(b) // "Network Z" sorts before "Network AA"
		}
		return a < b
	})

	var buf bytes.Buffer
	err := page.Execute(&buf, pageData{
		Model:    m,
		SVG:      template.HTML(renderSVG(m)),
		Networks: networks,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to render report: %w", err)
	}
	return buf.Bytes(), nil
}
