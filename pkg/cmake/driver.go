// pkg/cmake/driver.go
package cmake

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"regexp"
	"time"

	"github.com/Masterminds/semver/v3"
)

const (
	// Tool is the external build tool invoked for every phase
	Tool = "cmake"

	// MinVersion is the oldest CMake release the native build supports
	MinVersion = "3.16.0"
)

// Driver runs the three-phase CMake protocol: configure, build, install.
// Phases run strictly in order, each blocking until the external process
// exits; any non-zero exit aborts the run.
type Driver struct {
	cfg    Config
	runner Runner
	logger *log.Logger
}

// NewDriver creates a driver for the given configuration
func NewDriver(cfg Config) *Driver {
	runner := cfg.Runner
	if runner == nil {
		runner = execRunner{}
	}

	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	return &Driver{cfg: cfg, runner: runner, logger: logger}
}

// versionRe extracts the leading version from "cmake version 3.28.1"
var versionRe = regexp.MustCompile(`cmake version (\d+\.\d+(?:\.\d+)?)`)

// CheckTool verifies cmake is runnable and at least MinVersion
func (d *Driver) CheckTool(ctx context.Context) error {
	out, err := d.runner.Output(ctx, Tool, "--version")
	if err != nil {
		return fmt.Errorf("%s is not installed or not on PATH: %w", Tool, err)
	}

	m := versionRe.FindStringSubmatch(out)
	if m == nil {
		return fmt.Errorf("unrecognized %s version output: %q", Tool, out)
	}

	have, err := semver.NewVersion(m[1])
	if err != nil {
		return fmt.Errorf("parsing %s version %q: %w", Tool, m[1], err)
	}

	if have.LessThan(semver.MustParse(MinVersion)) {
		return fmt.Errorf("%s %s is too old, need %s or newer", Tool, have, MinVersion)
	}

	return nil
}

// Configure runs the configure phase in the build directory
func (d *Driver) Configure(ctx context.Context) error {
	if err := os.MkdirAll(d.cfg.BuildDir, 0755); err != nil {
		return fmt.Errorf("creating build directory: %w", err)
	}

	args := []string{
		d.cfg.SourceDir,
		"-DCMAKE_BUILD_TYPE=" + d.cfg.BuildType,
		"-DTGFX_BUILD_PYTHON=ON",
	}
	if d.cfg.StageDir != "" {
		args = append(args, "-DCMAKE_INSTALL_PREFIX="+d.cfg.StageDir)
	}
	if d.cfg.Interpreter != "" {
		args = append(args, "-DPython_EXECUTABLE="+d.cfg.Interpreter)
	}
	if d.cfg.Generator != "" {
		args = append(args, "-G", d.cfg.Generator)
	}
	args = append(args, d.cfg.ExtraArgs...)

	d.logger.Printf("Configuring in %s", d.cfg.BuildDir)
	if err := d.runner.Run(ctx, d.cfg.BuildDir, Tool, args...); err != nil {
		return fmt.Errorf("configure: %w", err)
	}
	return nil
}

// Build runs the compile phase
func (d *Driver) Build(ctx context.Context) error {
	args := []string{"--build", ".", "--config", d.cfg.BuildType}
	if d.cfg.Parallel {
		args = append(args, "--parallel")
	}

	d.logger.Printf("Building in %s", d.cfg.BuildDir)
	if err := d.runner.Run(ctx, d.cfg.BuildDir, Tool, args...); err != nil {
		return fmt.Errorf("build: %w", err)
	}
	return nil
}

// Install runs the install phase against the staging directory
func (d *Driver) Install(ctx context.Context) error {
	args := []string{"--install", ".", "--config", d.cfg.BuildType}
	if d.cfg.StageDir != "" {
		args = append(args, "--prefix", d.cfg.StageDir)
	}

	d.logger.Printf("Installing to %s", d.cfg.StageDir)
	if err := d.runner.Run(ctx, d.cfg.BuildDir, Tool, args...); err != nil {
		return fmt.Errorf("install: %w", err)
	}
	return nil
}

// RunAll runs all three phases in order and reports timing
func (d *Driver) RunAll(ctx context.Context) (*BuildResult, error) {
	start := time.Now()

	if err := d.Configure(ctx); err != nil {
		return nil, err
	}
	if err := d.Build(ctx); err != nil {
		return nil, err
	}
	if err := d.Install(ctx); err != nil {
		return nil, err
	}

	return &BuildResult{
		BuildDir: d.cfg.BuildDir,
		StageDir: d.cfg.StageDir,
		Elapsed:  time.Since(start),
	}, nil
}
