// Package cli wires the hopper commands. Each command loads the host and
// edge files, runs the build pipeline, and consumes the results it needs;
// warnings go to stderr so primary output stays pipeable.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func NewRootCommand(version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "hopper",
		Short: "Map IPv4 hosts into subnets and explore their connectivity",
		Long: `Hopper ingests a host list and a host-to-host link list, classifies the
hosts into subnets under a configurable mask, and builds an undirected
connectivity graph. From there it can display the network layout, answer
shortest-path queries, export a canonical JSON model, or generate an HTML
report.

Input files are line-oriented: one IPv4 address per line for hosts, one
"IP-IP" pair per line for links. Blank lines are ignored.`,
	}

	rootCmd.PersistentFlags().StringP("subnet", "s", "", "Subnet mask as dotted quad or prefix length (default 255.255.255.0)")
	rootCmd.PersistentFlags().String("config", "", "Path to hopper.yaml (default: ./hopper.yaml when present)")

	mapCmd := &cobra.Command{
		Use:   "map IPS_FILE EDGES_FILE",
		Short: "Classify hosts into subnets and show inter-subnet connectivity",
		Args:  cobra.ExactArgs(2),
		RunE:  RunMap,
	}
	mapCmd.Flags().Bool("json", false, "Print a machine-readable run summary")

	pathCmd := &cobra.Command{
		Use:   "path IPS_FILE EDGES_FILE SRC DST",
		Short: "Find a shortest path between two hosts",
		Args:  cobra.ExactArgs(4),
		RunE:  RunPath,
	}
	pathCmd.Flags().Bool("json", false, "Print the path as JSON")

	exportCmd := &cobra.Command{
		Use:   "export IPS_FILE EDGES_FILE",
		Short: "Write the canonical JSON model",
		Args:  cobra.ExactArgs(2),
		RunE:  RunExport,
	}
	exportCmd.Flags().StringP("output", "o", "", "Output file ('-' for stdout, default hopper_graph.json)")

	reportCmd := &cobra.Command{
		Use:   "report IPS_FILE EDGES_FILE",
		Short: "Generate a standalone HTML report with an inline graph drawing",
		Args:  cobra.ExactArgs(2),
		RunE:  RunReport,
	}
	reportCmd.Flags().StringP("output", "o", "", "Output file (default hopper_report.html)")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the hopper version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}

	rootCmd.AddCommand(mapCmd, pathCmd, exportCmd, reportCmd, versionCmd)
	return rootCmd
}
