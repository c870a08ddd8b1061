// Package config holds the settings of the pathsample command and loads them
// from TOML or YAML files.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"honnef.co/go/pathsample"
)

// Config is the command's configuration. Command line flags override values
// loaded from a file.
type Config struct {
	// Budget is the total sample budget.
	Budget int `toml:"budget" yaml:"budget"`
	// Dedup is one of "all", "adjacent" and "none".
	Dedup string `toml:"dedup" yaml:"dedup"`
	// YDown keeps the y-down coordinates of the path data.
	YDown bool `toml:"y_down" yaml:"y_down"`
	// Scale uniformly scales the output. 0 and 1 leave it unchanged.
	Scale float64 `toml:"scale" yaml:"scale"`
	// Workers bounds concurrent per-curve work.
	Workers int `toml:"workers" yaml:"workers"`
	// Output is the point file to write, or "-" for standard output.
	Output string `toml:"output" yaml:"output"`
	// Plot is the plotter command line. Empty disables plotting.
	Plot string `toml:"plot" yaml:"plot"`
}

// Format is a configuration file format.
type Format int

const (
	TOML Format = iota + 1
	YAML
)

// FormatOf returns the format implied by a file name's extension.
func FormatOf(name string) (Format, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".toml":
		return TOML, nil
	case ".yaml", ".yml":
		return YAML, nil
	default:
		return 0, fmt.Errorf("config: unsupported file type %q", filepath.Ext(name))
	}
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Budget: pathsample.DefaultBudget,
		Dedup:  pathsample.DedupModeAll.String(),
		Output: "points.csv",
	}
}

// Load reads the named file on top of [Default].
func Load(name string) (Config, error) {
	cfg := Default()
	format, err := FormatOf(name)
	if err != nil {
		return cfg, err
	}
	f, err := os.Open(name)
	if err != nil {
		return cfg, err
	}
	defer f.Close()
	if err := Decode(f, format, &cfg); err != nil {
		return cfg, fmt.Errorf("config: %s: %w", name, err)
	}
	return cfg, nil
}

// Decode reads a configuration from r into cfg. Fields missing from the input
// keep their values; unknown fields are an error.
func Decode(r io.Reader, format Format, cfg *Config) error {
	switch format {
	case TOML:
		return toml.NewDecoder(r).DisallowUnknownFields().Decode(cfg)
	case YAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		return nil
	default:
		return fmt.Errorf("config: unknown format %d", format)
	}
}

// Options converts the configuration to sampler options.
func (c Config) Options() (pathsample.Options, error) {
	if c.Budget < 1 {
		return pathsample.Options{}, fmt.Errorf("config: budget %d: %w", c.Budget, pathsample.ErrInvalidBudget)
	}
	mode, err := pathsample.ParseDedupMode(c.Dedup)
	if err != nil {
		return pathsample.Options{}, err
	}
	opts := pathsample.Options{
		Budget:    c.Budget,
		Dedup:     mode,
		KeepYDown: c.YDown,
		Workers:   c.Workers,
	}
	if c.Scale != 0 && c.Scale != 1 {
		aff := pathsample.Scale(c.Scale, c.Scale)
		opts.Transform = &aff
	}
	return opts, nil
}
