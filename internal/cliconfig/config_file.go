package cliconfig

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// fileConfig mirrors Config with TOML field names. The scene file can carry
// the complete scene, so `mandelbrot --config scene.toml` renders with no
// positional arguments.
type fileConfig struct {
	Out        string `toml:"out"`
	Size       string `toml:"pixels"`
	UpperLeft  string `toml:"upper_left"`
	LowerRight string `toml:"lower_right"`
	Workers    int    `toml:"workers"`
	Iterations int    `toml:"iterations"`
	Watch      *bool  `toml:"watch"`
}

// LoadFileConfig reads and parses a TOML scene file.
func LoadFileConfig(path string) (fileConfig, error) {
	var fc fileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// DefaultConfigPath returns the default scene file path.
// Returns ~/.mandelbrot/config.toml if the user home directory is accessible.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".mandelbrot", "config.toml")
	}
	return ""
}

// ApplyFileConfig applies scene file values to the Config struct.
// It respects flags that have been explicitly set (changed map).
func ApplyFileConfig(cfg *Config, fc fileConfig, changed map[string]bool) {
	s := newConfigSetter(changed)

	s.setString("out", fc.Out, &cfg.Out)
	s.setString("pixels", fc.Size, &cfg.Size)
	s.setString("upper-left", fc.UpperLeft, &cfg.UpperLeft)
	s.setString("lower-right", fc.LowerRight, &cfg.LowerRight)

	s.setInt("workers", fc.Workers, &cfg.Workers)
	s.setInt("iterations", fc.Iterations, &cfg.Iterations)

	s.setBool("watch", fc.Watch, &cfg.Watch)
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
