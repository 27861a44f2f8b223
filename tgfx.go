// tgfx.go

// Package tgfx builds and stages the termin_graphics native extension
// module. The orchestrator drives the external CMake build, discovers the
// produced artifacts from a per-platform manifest, and copies them plus
// their runtime libraries and SDK tree into an installable package layout.
package tgfx

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/termin-graphics/tgfx/pkg/artifact"
	"github.com/termin-graphics/tgfx/pkg/cmake"
	"github.com/termin-graphics/tgfx/pkg/core"
	"github.com/termin-graphics/tgfx/pkg/deps"
	"github.com/termin-graphics/tgfx/pkg/manifest"
	"github.com/termin-graphics/tgfx/pkg/platform"
	"github.com/termin-graphics/tgfx/pkg/stage"
)

// Re-export core types for convenience
type (
	Config     = core.Config
	Manifest   = manifest.Manifest
	Descriptor = manifest.Descriptor
	Artifact   = artifact.Artifact
	Receipt    = stage.Receipt
	Platform   = platform.Platform
)

// DefaultConfig returns a default build configuration
func DefaultConfig() *Config {
	return core.DefaultConfig()
}

// LoadConfig loads a build configuration from file
func LoadConfig(path string) (*Config, error) {
	return core.LoadConfig(path)
}

// DefaultManifest returns the built-in artifact manifest
func DefaultManifest() *Manifest {
	return manifest.Default()
}

// Orchestrator runs the full build-and-stage pipeline. The sequence is
// strictly linear with no retries: locate dependencies, configure, build,
// install, discover artifacts, copy artifacts, copy runtime libraries,
// stage the SDK. Any failure aborts the run; partially staged trees are
// left as-is and detectable by their missing receipt.
type Orchestrator struct {
	cfg    *core.Config
	man    *manifest.Manifest
	plat   *platform.Platform
	logger *log.Logger
	runner cmake.Runner
}

// OrchestratorOption customizes an Orchestrator
type OrchestratorOption func(*Orchestrator)

// WithRunner substitutes the external process runner, for tests
func WithRunner(r cmake.Runner) OrchestratorOption {
	return func(o *Orchestrator) { o.runner = r }
}

// WithLogger sets the step logger
func WithLogger(l *log.Logger) OrchestratorOption {
	return func(o *Orchestrator) { o.logger = l }
}

// NewOrchestrator creates an orchestrator for the given configuration and
// manifest. A nil manifest uses the built-in default.
func NewOrchestrator(cfg *core.Config, man *manifest.Manifest, opts ...OrchestratorOption) (*Orchestrator, error) {
	if cfg == nil {
		cfg = core.DefaultConfig()
	}
	if man == nil {
		man = manifest.Default()
	}

	plat, err := platform.Detect()
	if err != nil {
		return nil, &Error{Op: "detecting platform", Err: err}
	}

	o := &Orchestrator{cfg: cfg, man: man, plat: plat}
	for _, opt := range opts {
		opt(o)
	}

	if o.logger == nil {
		if cfg.Debug {
			o.logger = log.New(os.Stdout, "[TGFX] ", log.LstdFlags)
		} else {
			o.logger = log.New(io.Discard, "", 0)
		}
	}

	return o, nil
}

// Run executes the pipeline, staging the package into outDir as well as
// the source-tree package directory (both destinations receive the
// compiled module, so editable installs keep working). It returns the
// receipt written into outDir.
func (o *Orchestrator) Run(ctx context.Context, outDir string) (*stage.Receipt, error) {
	flatten := o.plat.OS == "windows"

	// The upstream dependency gate comes before any external build step,
	// so a missing install fails in milliseconds with ordering guidance
	o.logger.Printf("Step 1: Locating native dependencies")
	dep, err := deps.Locate(deps.TerminCore)
	if err != nil {
		return nil, &Error{Op: "locating dependency", Artifact: deps.TerminCore.Name,
			Err: fmt.Errorf("%w: %v", ErrDependencyNotFound, err)}
	}
	o.logger.Printf("  ✓ %s at %s", deps.TerminCore.Name, dep.Root)

	driver, err := o.driver()
	if err != nil {
		return nil, err
	}

	o.logger.Printf("Step 2: Checking build tool")
	if err := driver.CheckTool(ctx); err != nil {
		return nil, &Error{Op: "checking build tool", Err: fmt.Errorf("%w: %v", ErrBuildToolNotFound, err)}
	}

	o.logger.Printf("Step 3: Running external build")
	result, err := driver.RunAll(ctx)
	if err != nil {
		return nil, &Error{Op: "building", Err: fmt.Errorf("%w: %v", ErrBuildFailed, err)}
	}
	o.logger.Printf("  ✓ Build finished in %s", result.Elapsed.Round(time.Millisecond))

	o.logger.Printf("Step 4: Discovering artifacts")
	descs, err := o.man.ForPlatform(o.plat.OS)
	if err != nil {
		return nil, &Error{Op: "resolving manifest", Err: fmt.Errorf("%w: %v", ErrPlatformNotSupported, err)}
	}
	found, err := artifact.Discover(o.cfg.BuildDir, descs)
	if err != nil {
		return nil, &Error{Op: "discovering artifacts", Artifact: manifest.ModuleName,
			Err: fmt.Errorf("%w: %v", ErrArtifactNotFound, err)}
	}

	o.logger.Printf("Step 5: Staging artifacts")
	receipt := stage.NewReceipt(o.plat.OS, o.cfg.BuildType)
	for _, a := range found {
		name := filepath.Base(a.Path)
		// Dual destination: wheel-style output tree and the source tree
		for _, dst := range []string{outDir, o.cfg.PackageDir} {
			if err := stage.CopyFile(a.Path, filepath.Join(dst, name)); err != nil {
				return nil, &Error{Op: "staging artifact", Artifact: a.Name, Err: err}
			}
		}
		if err := receipt.Add(a.Name, filepath.Join(outDir, name)); err != nil {
			return nil, &Error{Op: "recording artifact", Artifact: a.Name, Err: err}
		}
		o.logger.Printf("  ✓ %s", name)
	}

	o.logger.Printf("Step 6: Copying runtime libraries")
	if err := o.copyRuntimeLibraries(dep, outDir, flatten); err != nil {
		return nil, err
	}

	o.logger.Printf("Step 7: Staging SDK")
	for _, dst := range []string{outDir, o.cfg.PackageDir} {
		if err := stage.StageSDK(o.cfg.StageDir, dst, flatten); err != nil {
			return nil, &Error{Op: "staging SDK", Err: err}
		}
	}
	if shared := stage.SharedSDKDir(o.plat.OS); shared != "" {
		if err := stage.StageSDK(o.cfg.StageDir, shared, flatten); err != nil {
			return nil, &Error{Op: "staging shared SDK", Err: err}
		}
	}

	if err := receipt.Write(outDir); err != nil {
		return nil, &Error{Op: "writing receipt", Err: err}
	}

	o.logger.Printf("Staged package at %s", outDir)
	return receipt, nil
}

// copyRuntimeLibraries propagates the upstream dependency's shared
// libraries into both staged trees. On Windows the DLLs additionally land
// next to the module binary, where the loader resolves them.
func (o *Orchestrator) copyRuntimeLibraries(dep *deps.Install, outDir string, flatten bool) error {
	prefix := deps.TerminCore.LibPrefix
	if flatten {
		prefix = "termin_core"
	}

	for _, dst := range []string{outDir, o.cfg.PackageDir} {
		libDir := filepath.Join(dst, stage.LibDir)
		if _, err := stage.CopyLibraries(dep.LibDir, libDir, prefix, flatten); err != nil {
			return &Error{Op: "copying runtime libraries", Artifact: deps.TerminCore.Name, Err: err}
		}
		if flatten {
			if _, err := stage.CopyLibraries(dep.LibDir, dst, prefix, flatten); err != nil {
				return &Error{Op: "copying loader libraries", Artifact: deps.TerminCore.Name, Err: err}
			}
		}
	}
	return nil
}

// Build runs only the external build phases, without staging
func (o *Orchestrator) Build(ctx context.Context) error {
	driver, err := o.driver()
	if err != nil {
		return err
	}
	if err := driver.CheckTool(ctx); err != nil {
		return &Error{Op: "checking build tool", Err: fmt.Errorf("%w: %v", ErrBuildToolNotFound, err)}
	}
	if _, err := driver.RunAll(ctx); err != nil {
		return &Error{Op: "building", Err: fmt.Errorf("%w: %v", ErrBuildFailed, err)}
	}
	return nil
}

func (o *Orchestrator) driver() (*cmake.Driver, error) {
	extra, err := o.cfg.ExtraArgs()
	if err != nil {
		return nil, &Error{Op: "parsing config", Err: err}
	}

	generator := o.cfg.Generator
	if generator == "" {
		generator = o.plat.Preferred
	}

	return cmake.NewDriver(cmake.Config{
		SourceDir:   o.cfg.SourceDir,
		BuildDir:    o.cfg.BuildDir,
		StageDir:    o.cfg.StageDir,
		BuildType:   o.cfg.BuildType,
		Generator:   generator,
		Interpreter: o.cfg.Interpreter,
		ExtraArgs:   extra,
		Parallel:    o.cfg.Parallel,
		Logger:      o.logger,
		Runner:      o.runner,
	}), nil
}
