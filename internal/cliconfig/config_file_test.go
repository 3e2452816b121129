package cliconfig

import (
	"os"
	"path/filepath"
	"testing"
)

func writeScene(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scene.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write scene file: %v", err)
	}
	return path
}

func TestLoadFileConfig(t *testing.T) {
	path := writeScene(t, `
out = "mandel.png"
pixels = "1000x750"
upper_left = "-1.20,0.35"
lower_right = "-1,0.20"
workers = 8
iterations = 100
watch = true
`)

	fc, err := LoadFileConfig(path)
	if err != nil {
		t.Fatalf("LoadFileConfig returned error: %v", err)
	}
	if fc.Out != "mandel.png" {
		t.Errorf("Out = %q, want mandel.png", fc.Out)
	}
	if fc.Size != "1000x750" {
		t.Errorf("Size = %q, want 1000x750", fc.Size)
	}
	if fc.Workers != 8 {
		t.Errorf("Workers = %d, want 8", fc.Workers)
	}
	if fc.Iterations != 100 {
		t.Errorf("Iterations = %d, want 100", fc.Iterations)
	}
	if fc.Watch == nil || !*fc.Watch {
		t.Error("Watch = nil or false, want true")
	}
}

func TestLoadFileConfigMissing(t *testing.T) {
	if _, err := LoadFileConfig(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Error("LoadFileConfig on missing file returned nil error")
	}
}

func TestLoadFileConfigMalformed(t *testing.T) {
	path := writeScene(t, `workers = "not a number`)
	if _, err := LoadFileConfig(path); err == nil {
		t.Error("LoadFileConfig on malformed TOML returned nil error")
	}
}

func TestApplyFileConfig(t *testing.T) {
	cfg := DefaultConfig()
	watch := true
	fc := fileConfig{
		Out:        "file.png",
		Size:       "640x480",
		UpperLeft:  "-2,1",
		LowerRight: "1,-1",
		Workers:    4,
		Iterations: 64,
		Watch:      &watch,
	}

	ApplyFileConfig(&cfg, fc, map[string]bool{})

	if cfg.Out != "file.png" || cfg.Size != "640x480" {
		t.Errorf("scene = (%q, %q), want (file.png, 640x480)", cfg.Out, cfg.Size)
	}
	if cfg.Workers != 4 || cfg.Iterations != 64 || !cfg.Watch {
		t.Errorf("knobs = (%d, %d, %v), want (4, 64, true)", cfg.Workers, cfg.Iterations, cfg.Watch)
	}
}

func TestApplyFileConfigRespectsChangedFlags(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Workers = 2 // set via flag
	fc := fileConfig{Workers: 4, Iterations: 64}

	ApplyFileConfig(&cfg, fc, map[string]bool{"workers": true})

	if cfg.Workers != 2 {
		t.Errorf("Workers = %d, want 2 (flag wins over file)", cfg.Workers)
	}
	if cfg.Iterations != 64 {
		t.Errorf("Iterations = %d, want 64 (file applies when flag unset)", cfg.Iterations)
	}
}

func TestFileExists(t *testing.T) {
	path := writeScene(t, "")
	if !FileExists(path) {
		t.Errorf("FileExists(%q) = false, want true", path)
	}
	if FileExists(path + ".absent") {
		t.Error("FileExists on missing path = true, want false")
	}
}
