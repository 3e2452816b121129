package cliconfig

import "os"

// ApplyEnvConfig applies configuration from environment variables (MANDELBROT_*).
// It respects flags that have been explicitly set (changed map).
// Environment variables override the scene file but are overridden by flags
// and positional arguments.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("out", os.Getenv("MANDELBROT_OUT"), &cfg.Out)
	s.setString("pixels", os.Getenv("MANDELBROT_PIXELS"), &cfg.Size)
	s.setString("upper-left", os.Getenv("MANDELBROT_UPPER_LEFT"), &cfg.UpperLeft)
	s.setString("lower-right", os.Getenv("MANDELBROT_LOWER_RIGHT"), &cfg.LowerRight)

	if err := s.setIntFromString("workers", os.Getenv("MANDELBROT_WORKERS"), &cfg.Workers); err != nil {
		return err
	}
	if err := s.setIntFromString("iterations", os.Getenv("MANDELBROT_ITERATIONS"), &cfg.Iterations); err != nil {
		return err
	}

	s.setBoolFromString("watch", os.Getenv("MANDELBROT_WATCH"), &cfg.Watch)

	return nil
}
