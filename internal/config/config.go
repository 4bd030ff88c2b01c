// Package config loads the optional YAML file that overrides check
// tolerances and report print caps. Zero-valued fields keep their
// defaults, so a partial file is valid.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/progship/layoutcheck/internal/inspect"
	"github.com/progship/layoutcheck/internal/report"
)

type Config struct {
	Tolerances Tolerances `yaml:"tolerances"`
	Limits     Limits     `yaml:"limits"`
}

type Tolerances struct {
	PlaneTolerance     float64 `yaml:"plane_tolerance"`
	BoundsTolerance    float64 `yaml:"bounds_tolerance"`
	AdjacencyTolerance float64 `yaml:"adjacency_tolerance"`
	HullMargin         float64 `yaml:"hull_margin"`
	PlayerRadius       float64 `yaml:"player_radius"`
	FarEntryDistance   float64 `yaml:"far_entry_distance"`
}

type Limits struct {
	MaxErrors       int `yaml:"max_errors"`
	MaxWarnings     int `yaml:"max_warnings"`
	MaxOverlaps     int `yaml:"max_overlaps"`
	MaxOtherSamples int `yaml:"max_other_samples"`
}

// Load reads a config file. An empty path returns the defaults.
func Load(path string) (Config, error) {
	var c Config
	if path == "" {
		return c, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return c, err
	}
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return c, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// CheckTolerances maps the config onto check tolerances, filling
// unset fields from the defaults.
func (c Config) CheckTolerances() inspect.Tolerances {
	t := inspect.DefaultTolerances()
	if c.Tolerances.PlaneTolerance > 0 {
		t.Plane = c.Tolerances.PlaneTolerance
	}
	if c.Tolerances.BoundsTolerance > 0 {
		t.Bounds = c.Tolerances.BoundsTolerance
	}
	if c.Tolerances.AdjacencyTolerance > 0 {
		t.Adjacency = c.Tolerances.AdjacencyTolerance
	}
	if c.Tolerances.HullMargin > 0 {
		t.HullMargin = c.Tolerances.HullMargin
	}
	if c.Tolerances.PlayerRadius > 0 {
		t.PlayerRadius = c.Tolerances.PlayerRadius
	}
	if c.Tolerances.FarEntryDistance > 0 {
		t.FarEntry = c.Tolerances.FarEntryDistance
	}
	return t
}

// PrintLimits maps the config onto report caps, filling unset fields
// from the defaults.
func (c Config) PrintLimits() report.Limits {
	l := report.DefaultLimits()
	if c.Limits.MaxErrors > 0 {
		l.MaxErrors = c.Limits.MaxErrors
	}
	if c.Limits.MaxWarnings > 0 {
		l.MaxWarnings = c.Limits.MaxWarnings
	}
	if c.Limits.MaxOverlaps > 0 {
		l.MaxOverlaps = c.Limits.MaxOverlaps
	}
	if c.Limits.MaxOtherSamples > 0 {
		l.MaxOtherSamples = c.Limits.MaxOtherSamples
	}
	return l
}
