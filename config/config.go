// Package config holds the run configuration of the latsum CLI: defaults
// mirroring the classic 4×4 / [-10,10] setup, file loading (YAML or HCL) and
// validation.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/latsum/pathsearch"
	"github.com/katalvlaran/latsum/weightgrid"
)

var (
	// ErrUnknownFormat indicates a config file extension other than .yaml, .yml or .hcl.
	ErrUnknownFormat = errors.New("config: unknown config file format")
	// ErrInvalid indicates inconsistent configuration values.
	ErrInvalid = errors.New("config: invalid configuration")
)

// Mode names accepted in config files and on the command line.
const (
	ModeParallel   = "parallel"
	ModeSequential = "sequential"
)

// Config is the full set of knobs for one search run.
type Config struct {
	Width     int    `yaml:"width" hcl:"width,optional"`
	Height    int    `yaml:"height" hcl:"height,optional"`
	Seed      int64  `yaml:"seed" hcl:"seed,optional"`
	Workers   int    `yaml:"workers" hcl:"workers,optional"`
	Mode      string `yaml:"mode" hcl:"mode,optional"`
	Narrow    bool   `yaml:"narrow" hcl:"narrow,optional"`
	MinDim    int    `yaml:"min_dim" hcl:"min_dim,optional"`
	MaxDim    int    `yaml:"max_dim" hcl:"max_dim,optional"`
	MinWeight int    `yaml:"min_weight" hcl:"min_weight,optional"`
	MaxWeight int    `yaml:"max_weight" hcl:"max_weight,optional"`
	LogLevel  string `yaml:"log_level" hcl:"log_level,optional"`
	LogFormat string `yaml:"log_format" hcl:"log_format,optional"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Width:     weightgrid.DefaultWidth,
		Height:    weightgrid.DefaultHeight,
		Seed:      0,
		Workers:   0,
		Mode:      ModeParallel,
		Narrow:    true,
		MinDim:    weightgrid.DefaultMinDim,
		MaxDim:    weightgrid.DefaultMaxDim,
		MinWeight: weightgrid.DefaultMinWeight,
		MaxWeight: weightgrid.DefaultMaxWeight,
		LogLevel:  "info",
		LogFormat: "text",
	}
}

// Load reads path over Default(). The format follows the extension:
// .yaml/.yml via yaml.v3, .hcl via hclparse and gohcl. Fields absent from the
// file keep their defaults. The result is validated.
//
// HCL files may use expressions over the variables of evalContext, e.g.
//
//	workers = max(1, floor(cpus / 2))
//	width   = defaults.width + 2
func Load(path string) (Config, error) {
	cfg := Default()
	src, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(src, &cfg); err != nil {
			return cfg, fmt.Errorf("config: decode %s: %w", path, err)
		}
	case ".hcl":
		file, diags := hclparse.NewParser().ParseHCL(src, path)
		if diags.HasErrors() {
			return cfg, fmt.Errorf("config: parse %s: %w", path, diags)
		}
		// Attributes missing from the file leave their fields untouched.
		if diags := gohcl.DecodeBody(file.Body, evalContext(), &cfg); diags.HasErrors() {
			return cfg, fmt.Errorf("config: decode %s: %w", path, diags)
		}
	default:
		return cfg, fmt.Errorf("config: %s (%q): %w", path, ext, ErrUnknownFormat)
	}

	return cfg, cfg.Validate()
}

// evalContext exposes the built-in defaults, the CPU count and a few numeric
// functions to HCL config expressions.
func evalContext() *hcl.EvalContext {
	d := Default()
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"cpus": cty.NumberIntVal(int64(runtime.NumCPU())),
			"defaults": cty.ObjectVal(map[string]cty.Value{
				"width":      cty.NumberIntVal(int64(d.Width)),
				"height":     cty.NumberIntVal(int64(d.Height)),
				"min_dim":    cty.NumberIntVal(int64(d.MinDim)),
				"max_dim":    cty.NumberIntVal(int64(d.MaxDim)),
				"min_weight": cty.NumberIntVal(int64(d.MinWeight)),
				"max_weight": cty.NumberIntVal(int64(d.MaxWeight)),
			}),
		},
		Functions: map[string]function.Function{
			"min":   stdlib.MinFunc,
			"max":   stdlib.MaxFunc,
			"floor": stdlib.FloorFunc,
			"ceil":  stdlib.CeilFunc,
		},
	}
}

// Validate checks value ranges and enumerations. Width and Height are not
// checked against MinDim/MaxDim: an unsupported size is recovered at grid
// construction time by falling back to the default grid.
func (c Config) Validate() error {
	switch {
	case c.MinDim < 1 || c.MaxDim < c.MinDim || c.MaxDim > weightgrid.HardMaxDim:
		return fmt.Errorf("dims [%d,%d] must satisfy 1 ≤ min ≤ max ≤ %d: %w",
			c.MinDim, c.MaxDim, weightgrid.HardMaxDim, ErrInvalid)
	case c.MaxWeight < c.MinWeight:
		return fmt.Errorf("weights [%d,%d]: %w", c.MinWeight, c.MaxWeight, ErrInvalid)
	case c.MinWeight < -weightgrid.MaxWeightMagnitude || c.MaxWeight > weightgrid.MaxWeightMagnitude:
		return fmt.Errorf("weights [%d,%d] exceed ±%d: %w",
			c.MinWeight, c.MaxWeight, weightgrid.MaxWeightMagnitude, ErrInvalid)
	case c.Workers < 0:
		return fmt.Errorf("workers=%d: %w", c.Workers, ErrInvalid)
	}
	if _, err := c.SearchMode(); err != nil {
		return err
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log_level %q: must be 'debug', 'info', 'warn', or 'error': %w", c.LogLevel, ErrInvalid)
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("log_format %q: must be 'text' or 'json': %w", c.LogFormat, ErrInvalid)
	}
	return nil
}

// SearchMode maps Mode onto pathsearch.Mode.
func (c Config) SearchMode() (pathsearch.Mode, error) {
	switch strings.ToLower(c.Mode) {
	case ModeParallel, "":
		return pathsearch.Parallel, nil
	case ModeSequential:
		return pathsearch.Sequential, nil
	default:
		return 0, fmt.Errorf("mode %q: must be %q or %q: %w", c.Mode, ModeParallel, ModeSequential, ErrInvalid)
	}
}

// GridOptions translates the grid-related fields into weightgrid options.
// Call Validate first; the option constructors panic on invalid ranges.
func (c Config) GridOptions() []weightgrid.Option {
	return []weightgrid.Option{
		weightgrid.WithSeed(c.Seed),
		weightgrid.WithBounds(c.MinDim, c.MaxDim),
		weightgrid.WithWeightRange(c.MinWeight, c.MaxWeight),
	}
}

// SearchOptions translates the engine-related fields into pathsearch.Options.
func (c Config) SearchOptions() (pathsearch.Options, error) {
	mode, err := c.SearchMode()
	if err != nil {
		return pathsearch.Options{}, err
	}
	opts := pathsearch.DefaultOptions()
	opts.Mode = mode
	opts.Workers = c.Workers
	opts.Narrow = c.Narrow
	return opts, nil
}
