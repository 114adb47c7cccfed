package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/landcover/config"
	"github.com/katalvlaran/landcover/internal/logging"
	"github.com/katalvlaran/landcover/pipeline"
)

// options holds the persistent flags.
type options struct {
	configPath string
	catalogDir string
	outDir     string
	workers    int
	tileSize   int
	boundary   string
	logLevel   string
	logJSON    bool
}

func newRootCmd() *cobra.Command {
	o := &options{}
	root := &cobra.Command{
		Use:           "lulcrefine",
		Short:         "Refine and harmonize categorical land-cover maps",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	f := root.PersistentFlags()
	f.StringVar(&o.configPath, "config", "", "YAML run configuration (defaults when empty)")
	f.StringVar(&o.catalogDir, "catalog", ".", "directory of input grid documents")
	f.StringVar(&o.outDir, "out", "out", "directory for output grid documents")
	f.IntVar(&o.workers, "workers", 0, "concurrent epochs and tiles (overrides runtime.workers)")
	f.IntVar(&o.tileSize, "tile-size", 0, "tile edge in cells (overrides runtime.tile_size)")
	f.StringVar(&o.boundary, "boundary", "", "temporal boundary policy: pass-through or two-point")
	f.StringVar(&o.logLevel, "log-level", "", "debug, info, warn, or error (overrides runtime.log_level)")
	f.BoolVar(&o.logJSON, "log-json", false, "log JSON records")

	root.AddCommand(newRefineCmd(o), newHarmonizeCmd(o), newConfigCmd())
	return root
}

// load builds the configuration from file plus flag overrides.
func (o *options) load(cmd *cobra.Command) (config.Config, error) {
	cfg := config.Default()
	if o.configPath != "" {
		data, err := os.ReadFile(o.configPath)
		if err != nil {
			return config.Config{}, err
		}
		if cfg, err = config.Decode(data); err != nil {
			return config.Config{}, err
		}
	}
	flags := cmd.Flags()
	if flags.Changed("workers") {
		cfg.Runtime.Workers = o.workers
	}
	if flags.Changed("tile-size") {
		cfg.Runtime.TileSize = o.tileSize
	}
	if flags.Changed("boundary") {
		cfg.Temporal.Boundary = o.boundary
	}
	if flags.Changed("log-level") {
		cfg.Runtime.LogLevel = o.logLevel
	}
	if flags.Changed("log-json") {
		cfg.Runtime.LogJSON = o.logJSON
	}
	return cfg, nil
}

// build loads the configuration and builds a logging pipeline.
func (o *options) build(cmd *cobra.Command) (*pipeline.Pipeline, error) {
	cfg, err := o.load(cmd)
	if err != nil {
		return nil, err
	}
	lvl, err := logging.ParseLevel(cfg.Runtime.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("%w: runtime.log_level: %w", config.ErrInvalidConfiguration, err)
	}
	log := logging.New(logging.Config{Level: lvl, JSON: cfg.Runtime.LogJSON, Writer: cmd.ErrOrStderr()})
	return pipeline.New(cfg, pipeline.WithLogger(log.With(slog.String("cmd", cmd.Name()))))
}

var timeLayouts = []string{time.RFC3339, time.DateOnly, "2006-01", "2006"}

// parseTime accepts RFC 3339, a date, a year-month, or a bare year.
func parseTime(s string) (time.Time, error) {
	for _, l := range timeLayouts {
		if t, err := time.Parse(l, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("bad time %q: want RFC 3339, YYYY-MM-DD, YYYY-MM, or YYYY", s)
}
