package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"solar-string-sim/internal/model"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration shape (YAML).
type Config struct {
	// Optional: load cell parameters from a separate YAML (e.g. examples/cells/*.yaml).
	// If both CellFile and Cell are provided, Cell overrides CellFile.
	CellFile string       `yaml:"cell_file"`
	Cell     CellConfig   `yaml:"cell"`
	Solver   SolverConfig `yaml:"solver"`
	Sweep    SweepConfig  `yaml:"sweep"`
}

type CellConfig struct {
	Name           string  `yaml:"name"`
	Width          float64 `yaml:"width_m"`
	Height         float64 `yaml:"height_m"`
	Efficiency     float64 `yaml:"efficiency"`
	Voc            float64 `yaml:"voc"`
	Isc            float64 `yaml:"isc"`
	Vmp            float64 `yaml:"vmp"`
	Imp            float64 `yaml:"imp"`
	IdealityFactor float64 `yaml:"ideality_factor"`
	SeriesR        float64 `yaml:"series_r"`
	BypassDrop     float64 `yaml:"bypass_v_drop"`
}

type SolverConfig struct {
	Name   string         `yaml:"name"`
	Params map[string]any `yaml:"params"`
}

// SweepConfig configures the day-sweep analysis.
type SweepConfig struct {
	Latitude       float64 `yaml:"latitude"`
	Longitude      float64 `yaml:"longitude"`
	Month          int     `yaml:"month"`
	Day            int     `yaml:"day"`
	StartHour      float64 `yaml:"start_hour"`
	Duration       float64 `yaml:"duration_hours"`
	TimeSamples    int     `yaml:"time_samples"`
	HeadingSamples int     `yaml:"heading_samples"`
	Irradiance     float64 `yaml:"irradiance_w_m2"`
}

func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	// If no solver is named, default to the precise path.
	if c.Solver.Name == "" {
		c.Solver.Name = "full"
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads and merges config, but does not validate it.
// Useful for debugging/printing partial configs.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, err
	}
	// If cell_file is set, load it and merge in any explicit overrides from c.Cell.
	if c.CellFile != "" {
		cellPath := c.CellFile
		if !filepath.IsAbs(cellPath) {
			// Prefer interpreting relative paths as relative to the config file
			// directory, but fall back to cwd-relative if that doesn't exist.
			cand := filepath.Join(filepath.Dir(path), cellPath)
			if _, err := os.Stat(cand); err == nil {
				cellPath = cand
			}
		}
		loaded, err := LoadCellFile(cellPath)
		if err != nil {
			return nil, err
		}
		c.Cell = MergeCell(loaded, c.Cell)
	}
	return &c, nil
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if c.Solver.Name == "" {
		return errors.New("solver.name is required")
	}
	if err := c.Cell.ToModelParams().Validate(); err != nil {
		return fmt.Errorf("cell config invalid: %w", err)
	}
	return nil
}

func (c CellConfig) ToModelParams() model.CellParams {
	return model.CellParams{
		Name:           c.Name,
		Width:          c.Width,
		Height:         c.Height,
		Efficiency:     c.Efficiency,
		Voc:            c.Voc,
		Isc:            c.Isc,
		Vmp:            c.Vmp,
		Imp:            c.Imp,
		IdealityFactor: c.IdealityFactor,
		SeriesR:        c.SeriesR,
		BypassDrop:     c.BypassDrop,
	}
}

// FromModelParams converts a preset into its config shape, used when listing
// the built-in library alongside on-disk files.
func FromModelParams(p model.CellParams) CellConfig {
	return CellConfig{
		Name:           p.Name,
		Width:          p.Width,
		Height:         p.Height,
		Efficiency:     p.Efficiency,
		Voc:            p.Voc,
		Isc:            p.Isc,
		Vmp:            p.Vmp,
		Imp:            p.Imp,
		IdealityFactor: p.IdealityFactor,
		SeriesR:        p.SeriesR,
		BypassDrop:     p.BypassDrop,
	}
}

type cellFileWrapper struct {
	Cell CellConfig `yaml:"cell"`
}

// LoadCellFile reads a standalone cell preset YAML ({cell: {...}}).
func LoadCellFile(path string) (CellConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return CellConfig{}, err
	}
	var w cellFileWrapper
	if err := yaml.Unmarshal(raw, &w); err != nil {
		return CellConfig{}, err
	}
	return w.Cell, nil
}

// MergeCell overlays non-zero fields from override onto base.
// This is used when loading a cell file and then applying overrides from the
// request or config.
func MergeCell(base, override CellConfig) CellConfig {
	out := base
	if override.Name != "" {
		out.Name = override.Name
	}
	if override.Width != 0 {
		out.Width = override.Width
	}
	if override.Height != 0 {
		out.Height = override.Height
	}
	if override.Efficiency != 0 {
		out.Efficiency = override.Efficiency
	}
	if override.Voc != 0 {
		out.Voc = override.Voc
	}
	if override.Isc != 0 {
		out.Isc = override.Isc
	}
	if override.Vmp != 0 {
		out.Vmp = override.Vmp
	}
	if override.Imp != 0 {
		out.Imp = override.Imp
	}
	if override.IdealityFactor != 0 {
		out.IdealityFactor = override.IdealityFactor
	}
	if override.SeriesR != 0 {
		out.SeriesR = override.SeriesR
	}
	if override.BypassDrop != 0 {
		out.BypassDrop = override.BypassDrop
	}
	return out
}
