// Package config loads the optional hopper.yaml settings file. Flags always
// override config values; config values override the built-in defaults.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/hopper-dev/hopper/internal/ipnet"
)

// DefaultFile is the config file name looked up in the working directory
// when --config is not given.
const DefaultFile = "hopper.yaml"

// Config holds run defaults.
type Config struct {
	SubnetMask string `yaml:"subnet_mask"`
	HostsFile  string `yaml:"hosts_file"`
	EdgesFile  string `yaml:"edges_file"`
	ExportFile string `yaml:"export_file"`
	ReportFile string `yaml:"report_file"`
}

// Default returns the built-in defaults, matching the original tool's
// /24 mask and output file names.
func Default() Config {
	return Config{
		SubnetMask: "255.255.255.0",
		ExportFile: "hopper_graph.json",
		ReportFile: "hopper_report.html",
	}
}

// Load reads path over the defaults. A missing file is only an error when
// the path was explicitly requested.
func Load(path string, explicit bool) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	if _, err := ipnet.ParseMask(c.SubnetMask); err != nil {
		return fmt.Errorf("subnet_mask: %w", err)
	}
	if c.ExportFile == "" {
		return fmt.Errorf("export_file must not be empty")
	}
	if c.ReportFile == "" {
		return fmt.Errorf("report_file must not be empty")
	}
	return nil
}
