package cli

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/hopper-dev/hopper/internal/export"
	"github.com/hopper-dev/hopper/internal/fileutil"
)

const timestampLayout = "2006-01-02 15:04:05"

func RunExport(cmd *cobra.Command, args []string) error {
	result, err := buildFromFiles(cmd, args[0], args[1])
	if err != nil {
		return err
	}

	model := export.BuildModel(result.Hosts, result.Classification, result.Graph, result.Adjacency)
	model.Metadata.GeneratedAt = time.Now().Format(timestampLayout)

	out, err := OptionalStringFlag(cmd, "output")
	if err != nil {
		return err
	}
	if out == "" {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		out = cfg.ExportFile
	}

	if out == "-" {
		return fileutil.EncodeJSON(os.Stdout, model)
	}

	data, err := fileutil.MarshalJSON(model)
	if err != nil {
		return err
	}
	if err := fileutil.WriteIfChanged(out, data); err != nil {
		return err
	}

	summary := newRunSummary("export", result)
	summary.Output = out
	return PrintRunSummary(summary, false)
}
