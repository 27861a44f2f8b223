// internal/cli/clean.go
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove the build directory",
	Args:  cobra.NoArgs,
	RunE:  runClean,
}

func runClean(cmd *cobra.Command, args []string) error {
	if err := os.RemoveAll(config.BuildDir); err != nil {
		return fmt.Errorf("removing build directory: %w", err)
	}
	fmt.Printf("✓ Removed %s\n", config.BuildDir)
	return nil
}
