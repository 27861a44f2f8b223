// pkg/core/config.go
package core

import (
	"fmt"
	"os"
	"path/filepath"

	shellwords "github.com/mattn/go-shellwords"
	"gopkg.in/yaml.v3"
)

// Config holds tgfx-build configuration
type Config struct {
	// SourceDir is the root of the native source checkout
	SourceDir string `yaml:"source_dir"`

	// BuildDir is where the external build system writes its outputs
	BuildDir string `yaml:"build_dir"`

	// StageDir is the install prefix used by the build system's install phase
	StageDir string `yaml:"stage_dir"`

	// PackageDir is the Python package tree inside the source checkout
	PackageDir string `yaml:"package_dir"`

	// BuildType is Debug or Release
	BuildType string `yaml:"build_type"`

	// Generator overrides the auto-detected CMake generator
	Generator string `yaml:"generator"`

	// Interpreter is the path passed through to the build as the Python executable
	Interpreter string `yaml:"interpreter"`

	// ExtraCMakeArgs holds additional configure arguments, shell-style quoted
	ExtraCMakeArgs string `yaml:"extra_cmake_args"`

	// Parallel enables parallel compilation
	Parallel bool `yaml:"parallel"`

	// Debug enables debug logging
	Debug bool `yaml:"debug"`
}

// DefaultConfig returns a default configuration rooted at the current directory
func DefaultConfig() *Config {
	return &Config{
		SourceDir:  ".",
		BuildDir:   filepath.Join(".", "build"),
		StageDir:   filepath.Join(".", "build", "stage"),
		PackageDir: filepath.Join(".", "python", "tgfx"),
		BuildType:  "Release",
		Parallel:   true,
		Debug:      false,
	}
}

// LoadConfig loads configuration from file
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = filepath.Join(".", "tgfx-build.yaml")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if cfg.BuildType != "Debug" && cfg.BuildType != "Release" {
		return nil, fmt.Errorf("invalid build_type %q (want Debug or Release)", cfg.BuildType)
	}

	return cfg, nil
}

// SaveConfig saves configuration to file
func SaveConfig(cfg *Config, path string) error {
	if path == "" {
		path = filepath.Join(".", "tgfx-build.yaml")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

// ExtraArgs parses ExtraCMakeArgs into an argument slice, honoring
// shell-style quoting
func (c *Config) ExtraArgs() ([]string, error) {
	if c.ExtraCMakeArgs == "" {
		return nil, nil
	}

	args, err := shellwords.Parse(c.ExtraCMakeArgs)
	if err != nil {
		return nil, fmt.Errorf("parsing extra_cmake_args: %w", err)
	}
	return args, nil
}
