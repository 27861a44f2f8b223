// internal/cli/watch.go
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/termin-graphics/tgfx"
	"github.com/termin-graphics/tgfx/pkg/watch"
)

var watchDebounce time.Duration

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Rebuild whenever the native sources change",
	Long: `Watch the source tree and re-run the external build after each
batch of changes. Interrupt with Ctrl-C.

Examples:
  tgfx-build watch
  tgfx-build watch --debounce 2s`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", watch.DefaultDebounce, "delay before rebuilding after a change")
}

func runWatch(cmd *cobra.Command, args []string) error {
	man, err := loadManifest()
	if err != nil {
		return err
	}

	orch, err := tgfx.NewOrchestrator(config, man)
	if err != nil {
		return err
	}

	logger := log.New(os.Stderr, "[WATCH] ", log.LstdFlags)
	if !config.Debug {
		logger.SetOutput(io.Discard)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Printf("Watching %s (Ctrl-C to stop)\n", config.SourceDir)

	w := watch.New(config.SourceDir, watchDebounce, logger)
	err = w.Run(ctx, func(ctx context.Context) error {
		fmt.Println("Change detected, rebuilding...")
		if err := orch.Build(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "✗ Build failed: %v\n", err)
			return err
		}
		fmt.Println("✓ Build succeeded")
		return nil
	})

	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
