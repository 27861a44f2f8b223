// internal/cli/build.go
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/termin-graphics/tgfx"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Run the external build without staging",
	Long: `Run the configure, compile, and install phases of the external
CMake build against the staging directory, without copying anything into
the package tree.

Examples:
  tgfx-build build
  tgfx-build build --build-type=Debug`,
	Args: cobra.NoArgs,
	RunE: runBuild,
}

func runBuild(cmd *cobra.Command, args []string) error {
	man, err := loadManifest()
	if err != nil {
		return err
	}

	orch, err := tgfx.NewOrchestrator(config, man)
	if err != nil {
		return err
	}

	return orch.Build(context.Background())
}
