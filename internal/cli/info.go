// internal/cli/info.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/termin-graphics/tgfx/pkg/deps"
	"github.com/termin-graphics/tgfx/pkg/platform"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show platform, configuration, and dependency status",
	Args:  cobra.NoArgs,
	RunE:  runInfo,
}

func runInfo(cmd *cobra.Command, args []string) error {
	plat, err := platform.Detect()
	if err != nil {
		return fmt.Errorf("detecting platform: %w", err)
	}

	fmt.Printf("Platform:    %s\n", plat)
	fmt.Printf("Source dir:  %s\n", config.SourceDir)
	fmt.Printf("Build dir:   %s\n", config.BuildDir)
	fmt.Printf("Stage dir:   %s\n", config.StageDir)
	fmt.Printf("Package dir: %s\n", config.PackageDir)
	fmt.Printf("Build type:  %s\n", config.BuildType)

	dep, err := deps.Locate(deps.TerminCore)
	if err != nil {
		fmt.Printf("Dependency:  %s MISSING (%v)\n", deps.TerminCore.Name, err)
		return nil
	}
	fmt.Printf("Dependency:  %s at %s\n", deps.TerminCore.Name, dep.Root)

	return nil
}
