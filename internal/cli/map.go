package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func RunMap(cmd *cobra.Command, args []string) error {
	asJSON, err := boolFlag(cmd, "json")
	if err != nil {
		return err
	}

	result, err := buildFromFiles(cmd, args[0], args[1])
	if err != nil {
		return err
	}

	if asJSON {
		return PrintRunSummary(newRunSummary("map", result), true)
	}

	fmt.Println(RenderNetworks(result.Classification))
	fmt.Println(RenderAdjacency(result.Classification, result.Adjacency))
	return PrintRunSummary(newRunSummary("map", result), false)
}
