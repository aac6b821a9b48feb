package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/hopper-dev/hopper/internal/export"
	"github.com/hopper-dev/hopper/internal/fileutil"
	"github.com/hopper-dev/hopper/internal/report"
)

func RunReport(cmd *cobra.Command, args []string) error {
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
		out = cfg.ReportFile
	}

	html, err := report.RenderHTML(model)
	if err != nil {
		return err
	}
	if err := fileutil.WriteIfChanged(out, html); err != nil {
		return err
	}

	summary := newRunSummary("report", result)
	summary.Output = out
	return PrintRunSummary(summary, false)
}
