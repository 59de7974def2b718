// Package config loads the optional styledtext.yaml defaults file and
// the yaml fixture documents the CLI operates on.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the optional styledtext.yaml defaults file.
type Config struct {
	Shaper string    `yaml:"shaper,omitempty"`
	Scale  float64   `yaml:"scale,omitempty"`
	Widths []float64 `yaml:"widths,omitempty"`
}

// LoadOptional reads styledtext.yaml from dir if present.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, "styledtext.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read styledtext.yaml: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse styledtext.yaml: %w", err)
	}

	if err := validateShaper(cfg.Shaper); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Fixture is one yaml fixture document: a text tree described either as
// plain text or as markup, optional per-node property patches, and the
// widths to measure at.
type Fixture struct {
	Text          string      `yaml:"text,omitempty"`
	Markup        string      `yaml:"markup,omitempty"`
	Props         []PropPatch `yaml:"props,omitempty"`
	Widths        []float64   `yaml:"widths,omitempty"`
	NumberOfLines *int        `yaml:"numberOfLines,omitempty"`
	LineHeight    *float64    `yaml:"lineHeight,omitempty"`
	FontSize      *float64    `yaml:"fontSize,omitempty"`
	Shaper        string      `yaml:"shaper,omitempty"`
}

// PropPatch applies a property diff to the node with the given tag.
type PropPatch struct {
	Tag int            `yaml:"tag"`
	Set map[string]any `yaml:"set"`
}

// LoadFixture reads and validates a fixture document.
func LoadFixture(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fixture: %w", err)
	}

	var f Fixture
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse fixture %s: %w", filepath.Base(path), err)
	}

	if err := f.Validate(); err != nil {
		return nil, fmt.Errorf("invalid fixture %s: %w", filepath.Base(path), err)
	}
	return &f, nil
}

// Validate checks the fixture invariants.
func (f *Fixture) Validate() error {
	if f.Text != "" && f.Markup != "" {
		return fmt.Errorf("sets both text and markup; pick one")
	}
	if f.Text == "" && f.Markup == "" {
		return fmt.Errorf("needs either text or markup")
	}
	for _, w := range f.Widths {
		if w <= 0 {
			return fmt.Errorf("width %g is not positive", w)
		}
	}
	if f.NumberOfLines != nil && *f.NumberOfLines < 0 {
		return fmt.Errorf("numberOfLines %d is negative", *f.NumberOfLines)
	}
	return validateShaper(f.Shaper)
}

func validateShaper(name string) error {
	switch name {
	case "", "gofont", "fixed", "canvas":
		return nil
	default:
		return fmt.Errorf("unknown shaper %q (use gofont, fixed, or canvas)", name)
	}
}
