// internal/cli/version.go
package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("tgfx-build %s (%s/%s)\n", rootCmd.Version, runtime.GOOS, runtime.GOARCH)
	},
}
