// pkg/platform/detect.go
package platform

import (
	"fmt"
	"runtime"
)

// Platform represents the detected build platform
type Platform struct {
	OS        string   // linux, darwin, windows
	Arch      string   // amd64, arm64, 386, arm
	Available []string // Available build generators
	Preferred string   // Preferred build generator
}

// Detect detects the current platform and available build generators
func Detect() (*Platform, error) {
	p := &Platform{
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
		Available: []string{},
	}

	// Check which generators are available
	if commandExists("ninja") {
		p.Available = append(p.Available, "Ninja")
	}

	if commandExists("make") {
		p.Available = append(p.Available, "Unix Makefiles")
	}

	// Determine preferred generator based on OS
	switch p.OS {
	case "linux", "darwin":
		if contains(p.Available, "Ninja") {
			p.Preferred = "Ninja"
		} else if contains(p.Available, "Unix Makefiles") {
			p.Preferred = "Unix Makefiles"
		}
	case "windows":
		// Visual Studio generators are located by CMake itself, so an empty
		// preference lets CMake pick the default toolchain.
		if contains(p.Available, "Ninja") {
			p.Preferred = "Ninja"
		}
	default:
		return nil, fmt.Errorf("unsupported operating system: %s", p.OS)
	}

	return p, nil
}

// String returns a string representation of the platform
func (p *Platform) String() string {
	return fmt.Sprintf("%s/%s (generators: %v, preferred: %s)",
		p.OS, p.Arch, p.Available, p.Preferred)
}
