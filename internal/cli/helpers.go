package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hopper-dev/hopper/internal/config"
	"github.com/hopper-dev/hopper/internal/diag"
	"github.com/hopper-dev/hopper/internal/fileutil"
	"github.com/hopper-dev/hopper/internal/ipnet"
	"github.com/hopper-dev/hopper/internal/netmap"
)

// loadConfig resolves the effective config: explicit --config path, or the
// default hopper.yaml when present in the working directory.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, err := OptionalStringFlag(cmd, "config")
	if err != nil {
		return config.Config{}, err
	}
	if path != "" {
		return config.Load(path, true)
	}
	return config.Load(config.DefaultFile, false)
}

// resolveMask applies the precedence --subnet flag > config > default.
func resolveMask(cmd *cobra.Command, cfg config.Config) (ipnet.Mask, error) {
	raw, err := OptionalStringFlag(cmd, "subnet")
	if err != nil {
		return ipnet.Mask{}, err
	}
	if raw == "" {
		raw = cfg.SubnetMask
	}
	mask, err := ipnet.ParseMask(raw)
	if err != nil {
		return ipnet.Mask{}, fmt.Errorf("invalid --subnet value: %w", err)
	}
	return mask, nil
}

// buildFromFiles loads both input files and runs the pipeline, reporting
// per-record diagnostics to stderr.
func buildFromFiles(cmd *cobra.Command, hostsPath, edgesPath string) (*netmap.Result, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	mask, err := resolveMask(cmd, cfg)
	if err != nil {
		return nil, err
	}

	hostLines, err := fileutil.ReadLines(hostsPath)
	if err != nil {
		return nil, err
	}
	edgeLines, err := fileutil.ReadLines(edgesPath)
	if err != nil {
		return nil, err
	}

	result, err := netmap.Build(hostLines, edgeLines, mask)
	if err != nil {
		return nil, err
	}
	ReportDiagnostics(result.Diagnostics)
	return result, nil
}

// ReportDiagnostics prints collected warnings and per-record errors to
// stderr without aborting the run.
func ReportDiagnostics(diags []diag.Diagnostic) {
	for _, d := range diags {
		fmt.Fprintln(os.Stderr, d)
	}
}

// OptionalStringFlag reads a string flag that may not be registered on cmd.
func OptionalStringFlag(cmd *cobra.Command, name string) (string, error) {
	if cmd == nil || cmd.Flags().Lookup(name) == nil {
		return "", nil
	}
	value, err := cmd.Flags().GetString(name)
	if err != nil {
		return "", fmt.Errorf("failed to read --%s flag: %w", name, err)
	}
	return strings.TrimSpace(value), nil
}

func boolFlag(cmd *cobra.Command, name string) (bool, error) {
	if cmd.Flags().Lookup(name) == nil {
		return false, nil
	}
	value, err := cmd.Flags().GetBool(name)
	if err != nil {
		return false, fmt.Errorf("failed to read --%s flag: %w", name, err)
	}
	return value, nil
}
