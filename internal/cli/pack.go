// internal/cli/pack.go
package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/termin-graphics/tgfx"
	"github.com/termin-graphics/tgfx/pkg/archive"
	"github.com/termin-graphics/tgfx/pkg/stage"
)

var (
	packOut  string
	packFrom string
)

var packCmd = &cobra.Command{
	Use:   "pack",
	Short: "Build, stage, and produce a distributable archive",
	Long: `Stage the package and compress it into a .tar.xz archive. With
--from, an already staged directory is packed instead of rebuilding; the
directory must carry a valid build receipt.

Examples:
  tgfx-build pack
  tgfx-build pack --out dist/tgfx-linux-amd64.tar.xz
  tgfx-build pack --from dist/tgfx`,
	Args: cobra.NoArgs,
	RunE: runPack,
}

func init() {
	packCmd.Flags().StringVar(&packOut, "out", "", "archive path (default dist/tgfx-<os>-<arch>.tar.xz)")
	packCmd.Flags().StringVar(&packFrom, "from", "", "pack an existing staged directory instead of building")
}

func runPack(cmd *cobra.Command, args []string) error {
	stagedDir := packFrom
	if stagedDir == "" {
		stagedDir = filepath.Join("dist", "tgfx")

		man, err := loadManifest()
		if err != nil {
			return err
		}
		orch, err := tgfx.NewOrchestrator(config, man)
		if err != nil {
			return err
		}
		if _, err := orch.Run(context.Background(), stagedDir); err != nil {
			return err
		}
	}

	// A staged tree without a verifiable receipt is partial; refuse to ship it
	receipt, err := stage.LoadReceipt(stagedDir)
	if err != nil {
		return fmt.Errorf("%s is not a complete staged package: %w", stagedDir, err)
	}
	if err := receipt.Verify(stagedDir); err != nil {
		return fmt.Errorf("%s is not a complete staged package: %w", stagedDir, err)
	}

	out := packOut
	if out == "" {
		out = filepath.Join("dist", fmt.Sprintf("tgfx-%s-%s.tar.xz", runtime.GOOS, runtime.GOARCH))
	}

	if err := archive.Pack(stagedDir, out); err != nil {
		return err
	}

	fmt.Printf("✓ Packed %s\n", out)
	return nil
}
