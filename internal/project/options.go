// Package project implements the directory-of-models entry point (spec
// §6.4): Project(root, options, content) and Model(name, content) as pure
// builders that walk user declarations and write files. The core itself
// never defines a CLI; cmd/geocad is the only consumer of this package.
package project

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dshills/geocad/internal/env"
)

// Format names an export target a Model can be written to.
type Format string

const (
	FormatSTL   Format = "stl"
	FormatThreeMF Format = "3mf"
	FormatSVG   Format = "svg"
)

// SegmentationCfg is the YAML-serializable counterpart of env.Segmentation;
// env.Segmentation's own fields are unexported so options files describe it
// through this shape instead (spec §6.2's "fixed" vs "adaptive" modes).
type SegmentationCfg struct {
	Fixed    *int    `yaml:"fixed,omitempty"`
	MinAngle float64 `yaml:"minAngle,omitempty"`
	MinSize  float64 `yaml:"minSize,omitempty"`
}

// Resolve converts c into an env.Segmentation, falling back to
// env.DefaultSegmentation when c is nil or its adaptive fields are unset.
func (c *SegmentationCfg) Resolve() env.Segmentation {
	if c == nil {
		return env.DefaultSegmentation()
	}
	if c.Fixed != nil {
		return env.FixedSegmentation(*c.Fixed)
	}
	minAngle, minSize := c.MinAngle, c.MinSize
	if minAngle <= 0 {
		minAngle = 2
	}
	if minSize <= 0 {
		minSize = 0.15
	}
	return env.AdaptiveSegmentation(minAngle, minSize)
}

// Options configures a Project's shared output behavior: every Model in
// one project writes to the same directory in the same formats and starts
// from the same default Environment unless it overrides Segmentation
// itself during its own build.
type Options struct {
	OutputDir    string           `yaml:"outputDir"`
	Formats      []Format         `yaml:"formats"`
	Segmentation *SegmentationCfg `yaml:"segmentation,omitempty"`
}

// DefaultOptions writes stl+3mf into the current directory.
func DefaultOptions() Options {
	return Options{OutputDir: ".", Formats: []Format{FormatSTL, FormatThreeMF}}
}

// LoadOptions reads and validates a YAML options file.
func LoadOptions(path string) (Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Options{}, fmt.Errorf("reading options file: %w", err)
	}
	return LoadOptionsFromBytes(data)
}

// LoadOptionsFromBytes parses YAML options from a byte slice.
func LoadOptionsFromBytes(data []byte) (Options, error) {
	opts := DefaultOptions()
	opts.Formats = nil // distinguish "unset" from DefaultOptions' own list below
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return Options{}, fmt.Errorf("parsing YAML: %w", err)
	}
	if opts.OutputDir == "" {
		opts.OutputDir = "."
	}
	if len(opts.Formats) == 0 {
		opts.Formats = []Format{FormatSTL, FormatThreeMF}
	}
	if err := opts.Validate(); err != nil {
		return Options{}, fmt.Errorf("validation failed: %w", err)
	}
	return opts, nil
}

// Validate checks that every requested Format is one this package knows
// how to write.
func (o Options) Validate() error {
	for _, f := range o.Formats {
		switch f {
		case FormatSTL, FormatThreeMF, FormatSVG:
		default:
			return fmt.Errorf("unsupported format %q", f)
		}
	}
	return nil
}

func (o Options) baseEnvironment() env.Environment {
	e := env.Default()
	if o.Segmentation != nil {
		e = e.WithSegmentation(o.Segmentation.Resolve())
	}
	return e
}
