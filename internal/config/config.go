// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package config holds the matshow settings file and its defaults.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/matshow"
)

// DefaultPath is the matrix file shown when no path is configured.
const DefaultPath = "data/matrix.txt"

// ErrInvalid is returned by Validate for settings that cannot be used.
var ErrInvalid = errors.New("config: invalid setting")

// Config is the matshow configuration. Every field is optional in the file.
type Config struct {
	Path          string  `yaml:"path"`
	Title         string  `yaml:"title"`
	Colormap      string  `yaml:"colormap"`
	Interpolation string  `yaml:"interpolation"`
	VMin          float64 `yaml:"vmin"`
	VMax          float64 `yaml:"vmax"`
	CellSize      int     `yaml:"cell_size"` // pixels per cell, 0 = automatic
	Output        string  `yaml:"output"`    // image file; empty opens a window
	Watch         bool    `yaml:"watch"`
	Debounce      string  `yaml:"debounce"` // reload delay in watch mode
	LogLevel      string  `yaml:"log_level"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Path:          DefaultPath,
		Title:         "matshow",
		Colormap:      "gray",
		Interpolation: "none",
		VMin:          0,
		VMax:          1,
		CellSize:      0,
		Debounce:      "200ms",
		LogLevel:      "info",
	}
}

// Load reads a YAML configuration from path on top of Default.
// A missing file yields the defaults.
func Load(path string) (*Config, error) {
	return load(path, true)
}

// LoadRequired is like Load but fails when the file does not exist.
// It is used for a config path the user named explicitly.
func LoadRequired(path string) (*Config, error) {
	return load(path, false)
}

func load(path string, missingOK bool) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		if missingOK && errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the configuration as YAML to path.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// Validate checks every setting and returns the first problem found.
func (c *Config) Validate() error {
	if c.Path == "" {
		return fmt.Errorf("%w: path is empty", ErrInvalid)
	}
	if _, err := matshow.ParseColormap(c.Colormap); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if _, err := matshow.ParseInterpolation(c.Interpolation); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if err := c.Range().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if c.CellSize < 0 {
		return fmt.Errorf("%w: cell_size %d is negative", ErrInvalid, c.CellSize)
	}
	if c.CellSize > matshow.MaxFrameSide {
		return fmt.Errorf("%w: cell_size %d exceeds %d", ErrInvalid, c.CellSize, matshow.MaxFrameSide)
	}
	if c.Output != "" {
		if _, err := matshow.FormatFromPath(c.Output); err != nil {
			return fmt.Errorf("%w: output: %w", ErrInvalid, err)
		}
	}
	if _, err := c.DebounceDuration(); err != nil {
		return err
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Range returns the configured display value range.
func (c *Config) Range() matshow.Range {
	return matshow.Range{Min: c.VMin, Max: c.VMax}
}

// DebounceDuration parses Debounce. An empty value means no delay.
func (c *Config) DebounceDuration() (time.Duration, error) {
	if c.Debounce == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.Debounce)
	if err != nil {
		return 0, fmt.Errorf("%w: debounce: %w", ErrInvalid, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("%w: debounce %s is negative", ErrInvalid, d)
	}
	return d, nil
}

// Level parses LogLevel.
func (c *Config) Level() (zapcore.Level, error) {
	lvl, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return zapcore.InfoLevel, fmt.Errorf("%w: log_level: %w", ErrInvalid, err)
	}
	return lvl, nil
}

// Options converts the configuration into renderer options.
// Call Validate first; unknown names fall back to the defaults here.
func (c *Config) Options() []matshow.Option {
	opts := []matshow.Option{
		matshow.WithRange(c.VMin, c.VMax),
		matshow.WithCellSize(c.CellSize),
		matshow.WithTitle(c.Title),
	}
	if cm, err := matshow.ParseColormap(c.Colormap); err == nil {
		opts = append(opts, matshow.WithColormap(cm))
	}
	if in, err := matshow.ParseInterpolation(c.Interpolation); err == nil {
		opts = append(opts, matshow.WithInterpolation(in))
	}
	return opts
}
