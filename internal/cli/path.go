package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hopper-dev/hopper/internal/graph"
	"github.com/hopper-dev/hopper/internal/ipnet"
)

func RunPath(cmd *cobra.Command, args []string) error {
	asJSON, err := boolFlag(cmd, "json")
	if err != nil {
		return err
	}

	src, err := ipnet.ParseHost(args[2])
	if err != nil {
		return fmt.Errorf("invalid source %q: %w", args[2], err)
	}
	dst, err := ipnet.ParseHost(args[3])
	if err != nil {
		return fmt.Errorf("invalid destination %q: %w", args[3], err)
	}

	result, err := buildFromFiles(cmd, args[0], args[1])
	if err != nil {
		return err
	}

	path, err := graph.FindPath(result.Graph, src, dst)
	if err != nil {
		return err
	}

	summary := newRunSummary("path", result)
	if path == nil {
		summary.Unreachable = true
		if asJSON {
			return PrintRunSummary(summary, true)
		}
		fmt.Printf("No path found from %s to %s.\n", src, dst)
		return nil
	}

	for _, hop := range path.Hops {
		summary.Path = append(summary.Path, hop.String())
	}
	if asJSON {
		return PrintRunSummary(summary, true)
	}

	fmt.Fprintf(os.Stderr, "Looking for path from %s to %s...\n", src, dst)
	fmt.Print(RenderPath(path))
	return nil
}
