// Package config provides configuration management
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// KnownModels lists the segmentation models the processing program accepts.
var KnownModels = []string{
	"u2net",
	"u2netp",
	"u2net_human_seg",
	"u2net_cloth_seg",
	"isnet-general-use",
}

// Config holds the application configuration
type Config struct {
	// Processor settings
	PythonScript string `mapstructure:"python_script"`
	Model        string `mapstructure:"model"`
	AlphaMatting bool   `mapstructure:"alpha_matting"`
	OnlyMask     bool   `mapstructure:"only_mask"`
	Timeout      int    `mapstructure:"timeout"` // seconds

	// Paths
	ProjectRoot string `mapstructure:"project_root"`
	VenvDir     string `mapstructure:"venv_dir"`
	InputDir    string `mapstructure:"input_dir"`
	OutputDir   string `mapstructure:"output_dir"`
	LogsDir     string `mapstructure:"logs_dir"`

	// Refine settings
	MaxSize int `mapstructure:"max_size"` // longest side in pixels, 0 keeps size

	// Execution settings
	DryRun  bool `mapstructure:"dry_run"`
	Verbose bool `mapstructure:"verbose"`
	Quiet   bool `mapstructure:"quiet"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	cwd, _ := os.Getwd()
	return &Config{
		PythonScript: "process_images_enhanced.py",
		Model:        "u2net",
		AlphaMatting: true,
		OnlyMask:     false,
		Timeout:      600,
		ProjectRoot:  cwd,
		VenvDir:      ".venv",
		InputDir:     "input",
		OutputDir:    "output",
		LogsDir:      ".cutout-logs",
		MaxSize:      0,
	}
}

// Load loads configuration from files and environment
func Load() (*Config, error) {
	cfg := DefaultConfig()

	v := viper.New()
	v.SetConfigName(".cutout")
	v.SetConfigType("yaml")

	// Search paths
	v.AddConfigPath(".")                     // Current directory
	v.AddConfigPath("$HOME")                 // Home directory
	v.AddConfigPath("$HOME/.config/cutout")  // XDG config

	// Environment variables
	v.SetEnvPrefix("CUTOUT")
	v.AutomaticEnv()

	// Set defaults
	v.SetDefault("python_script", cfg.PythonScript)
	v.SetDefault("model", cfg.Model)
	v.SetDefault("alpha_matting", cfg.AlphaMatting)
	v.SetDefault("only_mask", cfg.OnlyMask)
	v.SetDefault("timeout", cfg.Timeout)
	v.SetDefault("venv_dir", cfg.VenvDir)
	v.SetDefault("input_dir", cfg.InputDir)
	v.SetDefault("output_dir", cfg.OutputDir)
	v.SetDefault("logs_dir", cfg.LogsDir)
	v.SetDefault("max_size", cfg.MaxSize)

	// Try to read config file (don't fail if not found)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Unmarshal to struct
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	cfg.resolvePaths()

	return cfg, nil
}

// resolvePaths converts relative paths to absolute paths
func (c *Config) resolvePaths() {
	if c.ProjectRoot == "" {
		c.ProjectRoot, _ = os.Getwd()
	}

	if !filepath.IsAbs(c.VenvDir) {
		c.VenvDir = filepath.Join(c.ProjectRoot, c.VenvDir)
	}

	if !filepath.IsAbs(c.InputDir) {
		c.InputDir = filepath.Join(c.ProjectRoot, c.InputDir)
	}

	if !filepath.IsAbs(c.OutputDir) {
		c.OutputDir = filepath.Join(c.ProjectRoot, c.OutputDir)
	}

	if !filepath.IsAbs(c.LogsDir) {
		c.LogsDir = filepath.Join(c.ProjectRoot, c.LogsDir)
	}

	if !filepath.IsAbs(c.PythonScript) {
		c.PythonScript = filepath.Join(c.ProjectRoot, c.PythonScript)
	}
}

// Save saves the configuration to a file
func (c *Config) Save(path string) error {
	v := viper.New()

	v.Set("python_script", c.PythonScript)
	v.Set("model", c.Model)
	v.Set("alpha_matting", c.AlphaMatting)
	v.Set("only_mask", c.OnlyMask)
	v.Set("timeout", c.Timeout)
	v.Set("venv_dir", c.VenvDir)
	v.Set("input_dir", c.InputDir)
	v.Set("output_dir", c.OutputDir)
	v.Set("logs_dir", c.LogsDir)
	v.Set("max_size", c.MaxSize)

	return v.WriteConfigAs(path)
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.PythonScript == "" {
		return fmt.Errorf("python_script is required")
	}

	if c.Timeout < 1 {
		return fmt.Errorf("timeout must be at least 1 second")
	}

	if c.MaxSize < 0 {
		return fmt.Errorf("max_size must not be negative")
	}

	valid := false
	for _, m := range KnownModels {
		if c.Model == m {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("unknown model: %s", c.Model)
	}

	return nil
}

// EnsureDirs creates necessary directories.
// The logs directory may hold paths from the user's machine, so it is
// created owner-only; input and output are plain working folders.
func (c *Config) EnsureDirs() error {
	public := []string{c.InputDir, c.OutputDir}
	for _, dir := range public {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	if err := os.MkdirAll(c.LogsDir, 0700); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", c.LogsDir, err)
	}

	return nil
}

// GetConfigFilePath returns the path to the config file
func GetConfigFilePath() string {
	// Check current directory first
	if _, err := os.Stat(".cutout.yaml"); err == nil {
		return ".cutout.yaml"
	}

	// Then home directory
	home, err := os.UserHomeDir()
	if err != nil {
		return ".cutout.yaml"
	}

	configPath := filepath.Join(home, ".cutout.yaml")
	if _, err := os.Stat(configPath); err == nil {
		return configPath
	}

	// XDG config
	xdgConfig := filepath.Join(home, ".config", "cutout", "config.yaml")
	if _, err := os.Stat(xdgConfig); err == nil {
		return xdgConfig
	}

	// Default to current directory
	return ".cutout.yaml"
}

// GenerateDefaultConfigFile creates a default config file
func GenerateDefaultConfigFile(path string) error {
	content := `# Cutout configuration

# Processor settings
python_script: process_images_enhanced.py  # external processing program
model: u2net                  # u2net, u2netp, u2net_human_seg, u2net_cloth_seg, isnet-general-use
alpha_matting: true           # smoother edges, slightly slower
only_mask: false              # save the black/white mask instead of the cutout
timeout: 600                  # processor timeout in seconds

# Paths (relative to the project root)
venv_dir: .venv               # python virtual environment
input_dir: input              # images to process
output_dir: output            # processed PNGs
logs_dir: .cutout-logs        # run logs and summaries

# Refine settings
max_size: 0                   # downscale longest side to this many pixels, 0 keeps size
`

	dir := filepath.Dir(path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0700); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
