// Package config loads the YAML configuration of a batch run.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/ajroetker/go-cfv/cfv"
)

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("invalid configuration")

// Config holds the settings of a batch run.
type Config struct {
	// TargetDir receives README.md, reports.txtar and data/.
	TargetDir string `yaml:"target_dir"`

	// Functions to validate, in table order.
	Functions []string `yaml:"functions"`

	// ReportSize is the sampler size of the report maps; StatsSize the
	// size of the grid the rating is computed on.
	ReportSize Size `yaml:"report_size"`
	StatsSize  Size `yaml:"stats_size"`

	// Workers bounds the number of cells evaluated concurrently.
	Workers int `yaml:"workers"`

	Reference Reference `yaml:"reference"`

	// Libraries are compared against the reference, each on every dtype
	// of Dtypes and every device it knows.
	Libraries []string `yaml:"libraries"`
	Dtypes    []string `yaml:"dtypes"`

	FTZ string `yaml:"ftz"` // auto, on, off

	// Samples lists the codes whose representative samples are appended
	// to each report, e.g. "XIN".
	Samples string `yaml:"samples"`

	Logging Logging `yaml:"logging"`

	// HistoryDB is the SQLite file summary rows are recorded in. Empty
	// disables recording.
	HistoryDB string `yaml:"history_db"`
}

// Size is a pair of sampler sizes.
type Size struct {
	Re int `yaml:"re"`
	Im int `yaml:"im"`
}

// Reference selects the reference function of every comparison.
type Reference struct {
	Library string `yaml:"library"`
	Dtype   string `yaml:"dtype"`
	Device  string `yaml:"device"`
}

// Logging configures the logger.
type Logging struct {
	Level string `yaml:"level"` // debug, info, warn, error
	JSON  bool   `yaml:"json"`
}

// Default returns the default configuration: every function, 40x40
// reports rated on 200x200 grids, against the Go standard library at
// complex128.
func Default() *Config {
	return &Config{
		TargetDir:  "cfv_results",
		Functions:  append([]string(nil), cfv.FunctionNames...),
		ReportSize: Size{Re: 40, Im: 40},
		StatsSize:  Size{Re: 200, Im: 200},
		Workers:    runtime.NumCPU(),
		Reference: Reference{
			Library: "Go",
			Dtype:   "complex128",
			Device:  "cpu",
		},
		Libraries: []string{"Decomposed", "Hwy"},
		Dtypes:    []string{"complex64", "complex128"},
		FTZ:       "auto",
		Logging: Logging{
			Level: "info",
		},
	}
}

// Load reads the YAML file at path over the defaults and applies the
// environment overrides. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// Save writes the configuration to path as YAML.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func (c *Config) applyEnvOverrides() {
	if dir := os.Getenv("CFV_TARGET_DIR"); dir != "" {
		c.TargetDir = dir
	}
	if n, err := strconv.Atoi(os.Getenv("CFV_WORKERS")); err == nil && n > 0 {
		c.Workers = n
	}
	if path := os.Getenv("CFV_HISTORY_DB"); path != "" {
		c.HistoryDB = path
	}
}

// Validate reports every problem of c, joined.
func (c *Config) Validate() error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
	}

	if c.TargetDir == "" {
		bad("target_dir is empty")
	}
	if len(c.Functions) == 0 {
		bad("no functions")
	}
	for _, f := range c.Functions {
		if !cfv.IsFunctionName(f) {
			bad("unknown function %q", f)
		}
	}
	if s := c.ReportSize; s.Re < 0 || s.Im < 0 {
		bad("report_size %dx%d is negative", s.Re, s.Im)
	}
	if s := c.StatsSize; s.Re < 0 || s.Im < 0 {
		bad("stats_size %dx%d is negative", s.Re, s.Im)
	}
	if c.Workers < 1 {
		bad("workers must be at least 1, got %d", c.Workers)
	}
	if c.Reference.Library == "" {
		bad("reference library is empty")
	}
	if _, err := cfv.ParseDtype(c.Reference.Dtype); err != nil {
		bad("reference: %v", err)
	}
	for _, d := range c.Dtypes {
		if _, err := cfv.ParseDtype(d); err != nil {
			bad("dtypes: %v", err)
		}
	}
	if _, err := cfv.ParseFTZMode(c.FTZ); err != nil {
		bad("%v", err)
	}
	for i := 0; i < len(c.Samples); i++ {
		if cfv.Code(c.Samples[i]).Category() == cfv.Unknown {
			bad("samples: %q is not a code", c.Samples[i])
		}
	}
	return errors.Join(errs...)
}

// ReferenceDtype returns the parsed reference dtype.
func (c *Config) ReferenceDtype() cfv.Dtype {
	d, _ := cfv.ParseDtype(c.Reference.Dtype)
	return d
}

// ParsedDtypes returns Dtypes parsed; unknown names are skipped.
func (c *Config) ParsedDtypes() []cfv.Dtype {
	var out []cfv.Dtype
	for _, name := range c.Dtypes {
		if d, err := cfv.ParseDtype(name); err == nil {
			out = append(out, d)
		}
	}
	return out
}

// FTZMode returns the parsed FTZ mode; unknown modes are FTZAuto.
func (c *Config) FTZMode() cfv.FTZMode {
	m, _ := cfv.ParseFTZMode(c.FTZ)
	return m
}

// SampleCodes returns Samples as codes.
func (c *Config) SampleCodes() []cfv.Code {
	codes := make([]cfv.Code, len(c.Samples))
	for i := range codes {
		codes[i] = cfv.Code(c.Samples[i])
	}
	return codes
}
