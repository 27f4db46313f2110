// Package config loads the optional hammer.yaml next to the working
// directory and resolves it onto hammer.DefaultConfig.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/hammer/pkg/graphics"
	"github.com/go-drift/hammer/pkg/hammer"
)

// FileName is the configuration file looked up in a directory.
const FileName = "hammer.yaml"

// SchemaVersion is the configuration schema this build understands.
const SchemaVersion = "v1.0.0"

// Config represents the optional hammer.yaml configuration. Zero fields
// keep their defaults.
type Config struct {
	Version         string  `yaml:"version,omitempty"`
	Nodes           int     `yaml:"nodes,omitempty"`
	Bars            int     `yaml:"bars,omitempty"`
	SizeFactor      float64 `yaml:"size_factor,omitempty"`
	StrokeFactor    float64 `yaml:"stroke_factor,omitempty"`
	BarHeightFactor float64 `yaml:"bar_height_factor,omitempty"`
	Step            float64 `yaml:"step,omitempty"`
	FrameDelay      string  `yaml:"frame_delay,omitempty"`
	ForeColor       string  `yaml:"fore_color,omitempty"`
	BackColor       string  `yaml:"back_color,omitempty"`
	Resume          string  `yaml:"resume,omitempty"`
}

// Resolved contains the view configuration and where it came from.
type Resolved struct {
	// Path is the file that was read, or empty when defaults were used.
	Path string
	// Version is the schema version the file declared.
	Version string
	hammer.Config
}

// LoadOptional reads hammer.yaml from dir if present.
func LoadOptional(dir string) (*Config, string, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, "", nil
		}
		return nil, "", fmt.Errorf("failed to read %s: %w", FileName, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, "", fmt.Errorf("failed to parse %s: %w", FileName, err)
	}

	return &cfg, path, nil
}

// Resolve loads hammer.yaml (if present) and merges it onto the defaults.
func Resolve(dir string) (*Resolved, error) {
	cfg, path, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}
	resolved, err := cfg.Apply(hammer.DefaultConfig())
	if err != nil {
		if path != "" {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return nil, err
	}
	resolved.Path = path
	return resolved, nil
}

// Apply overrides base with every field set in c and validates the result.
func (c *Config) Apply(base hammer.Config) (*Resolved, error) {
	version := strings.TrimSpace(c.Version)
	if version == "" {
		version = SchemaVersion
	}
	if err := validateVersion(version); err != nil {
		return nil, err
	}

	out := base
	if c.Nodes != 0 {
		out.NodeCount = c.Nodes
	}
	if c.Bars != 0 {
		out.Bars = c.Bars
	}
	if c.SizeFactor != 0 {
		out.SizeFactor = c.SizeFactor
	}
	if c.StrokeFactor != 0 {
		out.StrokeFactor = c.StrokeFactor
	}
	if c.BarHeightFactor != 0 {
		out.BarHeightFactor = c.BarHeightFactor
	}
	if c.Step != 0 {
		out.Step = c.Step
	}
	if s := strings.TrimSpace(c.FrameDelay); s != "" {
		d, err := time.ParseDuration(s)
		if err != nil {
			return nil, fmt.Errorf("frame_delay: %w", err)
		}
		out.FrameDelay = d
	}
	if s := strings.TrimSpace(c.ForeColor); s != "" {
		col, err := graphics.ParseHex(s)
		if err != nil {
			return nil, fmt.Errorf("fore_color: %w", err)
		}
		out.ForeColor = col
	}
	if s := strings.TrimSpace(c.BackColor); s != "" {
		col, err := graphics.ParseHex(s)
		if err != nil {
			return nil, fmt.Errorf("back_color: %w", err)
		}
		out.BackColor = col
	}
	if s := strings.TrimSpace(c.Resume); s != "" {
		mode, err := hammer.ParseResumeMode(s)
		if err != nil {
			return nil, fmt.Errorf("resume: %w", err)
		}
		out.Resume = mode
	}

	if err := out.Validate(); err != nil {
		return nil, err
	}
	return &Resolved{Version: version, Config: out}, nil
}

// Marshal renders a resolved configuration back to hammer.yaml form.
func (r *Resolved) Marshal() ([]byte, error) {
	cfg := Config{
		Version:         r.Version,
		Nodes:           r.NodeCount,
		Bars:            r.Bars,
		SizeFactor:      r.SizeFactor,
		StrokeFactor:    r.StrokeFactor,
		BarHeightFactor: r.BarHeightFactor,
		Step:            r.Step,
		FrameDelay:      r.FrameDelay.String(),
		ForeColor:       hexRGB(r.ForeColor),
		BackColor:       hexRGB(r.BackColor),
		Resume:          r.Resume.String(),
	}
	return yaml.Marshal(&cfg)
}

func validateVersion(v string) error {
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	if !semver.IsValid(v) {
		return fmt.Errorf("version %q is not a valid semantic version", v)
	}
	if major := semver.Major(v); major != semver.Major(SchemaVersion) {
		return fmt.Errorf("version %s is not supported (this build reads %s.x)", v, semver.Major(SchemaVersion))
	}
	return nil
}

func hexRGB(c graphics.Color) string {
	r, g, b, _ := c.Components()
	return fmt.Sprintf("#%02X%02X%02X", r, g, b)
}
