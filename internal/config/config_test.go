package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.PythonScript != "process_images_enhanced.py" {
		t.Errorf("PythonScript = %s, want process_images_enhanced.py", cfg.PythonScript)
	}

	if cfg.VenvDir != ".venv" {
		t.Errorf("VenvDir = %s, want .venv", cfg.VenvDir)
	}

	if cfg.InputDir != "input" {
		t.Errorf("InputDir = %s, want input", cfg.InputDir)
	}

	if cfg.OutputDir != "output" {
		t.Errorf("OutputDir = %s, want output", cfg.OutputDir)
	}

	if cfg.Model != "u2net" {
		t.Errorf("Model = %s, want u2net", cfg.Model)
	}

	if !cfg.AlphaMatting {
		t.Error("AlphaMatting should default to true")
	}

	if cfg.OnlyMask {
		t.Error("OnlyMask should default to false")
	}

	if cfg.Timeout != 600 {
		t.Errorf("Timeout = %d, want 600", cfg.Timeout)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:    "default config is valid",
			mutate:  func(c *Config) {},
			wantErr: false,
		},
		{
			name:    "empty python_script",
			mutate:  func(c *Config) { c.PythonScript = "" },
			wantErr: true,
		},
		{
			name:    "zero timeout",
			mutate:  func(c *Config) { c.Timeout = 0 },
			wantErr: true,
		},
		{
			name:    "negative max_size",
			mutate:  func(c *Config) { c.MaxSize = -1 },
			wantErr: true,
		},
		{
			name:    "unknown model",
			mutate:  func(c *Config) { c.Model = "sam2" },
			wantErr: true,
		},
		{
			name:    "isnet model is valid",
			mutate:  func(c *Config) { c.Model = "isnet-general-use" },
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfig_ResolvePaths(t *testing.T) {
	cfg := &Config{
		ProjectRoot:  "/work/project",
		PythonScript: "process_images_enhanced.py",
		VenvDir:      ".venv",
		InputDir:     "input",
		OutputDir:    "output",
		LogsDir:      ".cutout-logs",
	}
	cfg.resolvePaths()

	want := map[string]string{
		cfg.VenvDir:      "/work/project/.venv",
		cfg.InputDir:     "/work/project/input",
		cfg.OutputDir:    "/work/project/output",
		cfg.LogsDir:      "/work/project/.cutout-logs",
		cfg.PythonScript: "/work/project/process_images_enhanced.py",
	}
	for got, expected := range want {
		if got != expected {
			t.Errorf("resolved path = %s, want %s", got, expected)
		}
	}

	// Absolute paths are left as-is
	cfg2 := &Config{
		ProjectRoot:  "/work/project",
		PythonScript: "/opt/scripts/process.py",
		VenvDir:      "/opt/venv",
		InputDir:     "input",
		OutputDir:    "output",
		LogsDir:      "logs",
	}
	cfg2.resolvePaths()
	if cfg2.VenvDir != "/opt/venv" {
		t.Errorf("absolute VenvDir was rewritten to %s", cfg2.VenvDir)
	}
	if cfg2.PythonScript != "/opt/scripts/process.py" {
		t.Errorf("absolute PythonScript was rewritten to %s", cfg2.PythonScript)
	}
}

func TestConfig_EnsureDirs_Permissions(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "config-perm-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tempDir)

	cfg := &Config{
		ProjectRoot: tempDir,
		InputDir:    filepath.Join(tempDir, "input"),
		OutputDir:   filepath.Join(tempDir, "output"),
		LogsDir:     filepath.Join(tempDir, ".cutout-logs"),
	}

	if err := cfg.EnsureDirs(); err != nil {
		t.Fatalf("EnsureDirs() error = %v", err)
	}

	// Logs may reference local paths; owner-only
	info, err := os.Stat(cfg.LogsDir)
	if err != nil {
		t.Fatalf("failed to stat logs dir: %v", err)
	}
	if perm := info.Mode().Perm(); perm&0077 != 0 {
		t.Errorf("logs directory has permissions %o, expected 0700", perm)
	}

	// Working folders are plain 0755
	for _, dir := range []string{cfg.InputDir, cfg.OutputDir} {
		info, err := os.Stat(dir)
		if err != nil {
			t.Errorf("failed to stat directory %s: %v", dir, err)
			continue
		}
		if perm := info.Mode().Perm(); perm != 0755 {
			t.Errorf("directory %s has permissions %o, expected 0755", dir, perm)
		}
	}
}

func TestGenerateDefaultConfigFile(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "config-gen-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tempDir)

	configPath := filepath.Join(tempDir, "subdir", "config.yaml")

	if err := GenerateDefaultConfigFile(configPath); err != nil {
		t.Fatalf("GenerateDefaultConfigFile() error = %v", err)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		t.Fatalf("failed to read generated config: %v", err)
	}
	for _, want := range []string{"python_script:", "venv_dir:", "input_dir:", "model: u2net"} {
		if !strings.Contains(string(data), want) {
			t.Errorf("generated config missing %q", want)
		}
	}
}
