// Package cliconfig loads and validates the renderer's CLI configuration
// from its three sources: a TOML scene file, MANDELBROT_* environment
// variables, and command-line flags/arguments, in that order of precedence.
package cliconfig

import (
	"fmt"
	"strconv"

	"github.com/bft-labs/mandelbrot/internal/domain"
)

// Defaults for the operational knobs. The scene itself (output path,
// dimensions, window corners) has no default; it must come from the scene
// file, the environment, or the command line.
const (
	DefaultWorkers    = 12
	DefaultIterations = 255
)

// Config holds CLI configuration for one render.
type Config struct {
	// Scene inputs, in their wire form. Validate parses them.
	Out        string
	Size       string // "WIDTHxHEIGHT"
	UpperLeft  string // "RE,IM"
	LowerRight string // "RE,IM"

	Workers    int
	Iterations int
	Watch      bool

	// Parsed forms, populated by Validate.
	Grid   domain.Grid
	Window domain.Window
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		Workers:    DefaultWorkers,
		Iterations: DefaultIterations,
	}
}

// Validate checks the configuration, parses the scene strings, and fills in
// Grid and Window. All failures here are input malformation: fatal before
// any rendering starts.
func (c *Config) Validate() error {
	if c.Out == "" {
		return fmt.Errorf("output file is required")
	}
	if c.Size == "" {
		return fmt.Errorf("pixel dimensions are required")
	}
	if c.UpperLeft == "" || c.LowerRight == "" {
		return fmt.Errorf("both plane corners are required")
	}

	grid, err := ParseSize(c.Size)
	if err != nil {
		return fmt.Errorf("parse dimensions: %w", err)
	}
	if err := grid.Validate(); err != nil {
		return err
	}

	ul, err := ParseComplex(c.UpperLeft)
	if err != nil {
		return fmt.Errorf("parse upper-left corner: %w", err)
	}
	lr, err := ParseComplex(c.LowerRight)
	if err != nil {
		return fmt.Errorf("parse lower-right corner: %w", err)
	}
	window := domain.Window{UpperLeft: ul, LowerRight: lr}
	if err := window.Validate(); err != nil {
		return err
	}

	if c.Workers <= 0 {
		return fmt.Errorf("%w: %d", domain.ErrInvalidWorkers, c.Workers)
	}
	if c.Iterations < 1 || c.Iterations > 255 {
		return fmt.Errorf("%w: %d", domain.ErrInvalidLimit, c.Iterations)
	}

	c.Grid = grid
	c.Window = window
	return nil
}

// configSetter helps apply configuration values while respecting flag precedence.
// It only applies values if the corresponding flag hasn't been explicitly set.
type configSetter struct {
	changed map[string]bool
}

// newConfigSetter creates a new setter with the given changed flags map.
func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setInt sets an int value if positive and flag not changed.
func (s *configSetter) setInt(flag string, value int, dst *int) {
	if value <= 0 || s.changed[flag] {
		return
	}
	*dst = value
}

// setBool sets a bool value from a pointer if not nil and flag not changed.
func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setIntFromString parses a string to int and sets the destination if valid.
// Used for environment variables that come as strings.
func (s *configSetter) setIntFromString(flag, value string, dst *int) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	if i <= 0 {
		return nil
	}
	*dst = i
	return nil
}

// setBoolFromString parses a string to bool and sets the destination.
// Accepts "true", "1" as true, anything else as false.
// Used for environment variables that come as strings.
func (s *configSetter) setBoolFromString(flag, value string, dst *bool) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value == "true" || value == "1"
}
