// pkg/cmake/types.go
package cmake

import (
	"context"
	"log"
	"time"
)

// Config holds everything the driver needs to run an external build
type Config struct {
	// SourceDir is the directory containing the top-level CMakeLists.txt
	SourceDir string

	// BuildDir is the out-of-tree build directory
	BuildDir string

	// StageDir is the install prefix for the install phase
	StageDir string

	// BuildType is Debug or Release
	BuildType string

	// Generator selects the CMake generator; empty lets CMake decide
	Generator string

	// Interpreter is passed to the build as the Python executable
	Interpreter string

	// ExtraArgs are appended to the configure invocation
	ExtraArgs []string

	// Parallel enables parallel compilation in the build phase
	Parallel bool

	// Logger for step logging; nil discards
	Logger *log.Logger

	// Runner executes external processes; nil uses the real cmake binary
	Runner Runner
}

// Runner executes external build processes. The default implementation
// shells out; tests substitute a fake.
type Runner interface {
	// Run executes the command in dir, streaming output, and blocks until
	// it exits. A non-zero exit is returned as an error.
	Run(ctx context.Context, dir, name string, args ...string) error

	// Output executes the command and returns its standard output
	Output(ctx context.Context, name string, args ...string) (string, error)
}

// BuildResult summarizes one completed driver run
type BuildResult struct {
	BuildDir string        // Where outputs were written
	StageDir string        // Where the install phase staged files
	Elapsed  time.Duration // Wall time across all phases
}
