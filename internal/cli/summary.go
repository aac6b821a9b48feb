package cli

import (
	"fmt"
	"os"

	"github.com/hopper-dev/hopper/internal/fileutil"
	"github.com/hopper-dev/hopper/internal/netmap"
)

// RunSummary is the machine-readable result of one command invocation.
type RunSummary struct {
	Mode        string   `json:"mode"`
	SubnetMask  string   `json:"subnet_mask"`
	Hosts       int      `json:"hosts"`
	Networks    int      `json:"networks"`
	Connections int      `json:"connections"`
	Warnings    int      `json:"warnings"`
	Output      string   `json:"output,omitempty"`
	Path        []string `json:"path,omitempty"`
	Unreachable bool     `json:"unreachable,omitempty"`
}

func newRunSummary(mode string, result *netmap.Result) RunSummary {
	return RunSummary{
		Mode:        mode,
		SubnetMask:  result.Classification.Mask.String(),
		Hosts:       result.Hosts.Len(),
		Networks:    len(result.Classification.Subnets),
		Connections: result.Graph.EdgeCount(),
		Warnings:    len(result.Diagnostics),
	}
}

// PrintRunSummary prints summary as JSON when asJSON is set, otherwise as a
// single key=value line.
func PrintRunSummary(summary RunSummary, asJSON bool) error {
	if asJSON {
		return fileutil.EncodeJSON(os.Stdout, summary)
	}
	fmt.Printf("%s: hosts=%d networks=%d connections=%d warnings=%d mask=%s\n",
		summary.Mode, summary.Hosts, summary.Networks, summary.Connections,
		summary.Warnings, summary.SubnetMask)
	if summary.Output != "" {
		fmt.Printf("output: %s\n", summary.Output)
	}
	return nil
}
