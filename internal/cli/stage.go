// internal/cli/stage.go
package cli

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/termin-graphics/tgfx"
)

var stageOut string

var stageCmd = &cobra.Command{
	Use:   "stage",
	Short: "Build and stage the installable package",
	Long: `Run the full pipeline: locate the native dependency, run the
external build, discover the produced artifacts, and copy them with their
runtime libraries and SDK tree into the output directory as well as the
source tree (for editable installs).

Examples:
  tgfx-build stage
  tgfx-build stage --out dist/tgfx --build-type=Debug`,
	Args: cobra.NoArgs,
	RunE: runStage,
}

func init() {
	stageCmd.Flags().StringVar(&stageOut, "out", filepath.Join("dist", "tgfx"), "output package directory")
}

func runStage(cmd *cobra.Command, args []string) error {
	man, err := loadManifest()
	if err != nil {
		return err
	}

	orch, err := tgfx.NewOrchestrator(config, man)
	if err != nil {
		return err
	}

	receipt, err := orch.Run(context.Background(), stageOut)
	if err != nil {
		return err
	}

	fmt.Printf("✓ Staged %d artifacts to %s (build %s)\n", len(receipt.Artifacts), stageOut, receipt.ID)
	return nil
}
