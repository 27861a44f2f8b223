// errors.go
package tgfx

import (
	"errors"
	"fmt"
)

var (
	// ErrArtifactNotFound indicates the build produced no file matching the
	// expected artifact patterns
	ErrArtifactNotFound = errors.New("build artifact not found")

	// ErrDependencyNotFound indicates a required upstream native dependency
	// is not installed
	ErrDependencyNotFound = errors.New("native dependency not found")

	// ErrBuildToolNotFound indicates the external build tool is not available
	ErrBuildToolNotFound = errors.New("build tool not found")

	// ErrBuildFailed indicates an external build step exited non-zero
	ErrBuildFailed = errors.New("build step failed")

	// ErrPlatformNotSupported indicates no artifact manifest exists for the platform
	ErrPlatformNotSupported = errors.New("platform not supported")
)

// Error wraps an error with additional context
type Error struct {
	Op       string // Operation that failed
	Artifact string // Artifact or module name if applicable
	Err      error  // Underlying error
}

func (e *Error) Error() string {
	if e.Artifact != "" {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Artifact, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
