// internal/cli/root.go
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/termin-graphics/tgfx/pkg/core"
	"github.com/termin-graphics/tgfx/pkg/manifest"
)

var (
	cfgFile      string
	manifestFile string
	buildType    string
	debug        bool
	config       *core.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "tgfx-build",
	Short: "Build orchestrator for the termin_graphics native module",
	Long: `tgfx-build - termin_graphics build orchestrator

Drives the external CMake build of the native extension module, discovers
the produced artifacts for the current platform, and stages them together
with their runtime libraries and SDK into an installable package layout.`,
	Version: "0.2.0",
}

// Execute executes the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./tgfx-build.yaml)")
	rootCmd.PersistentFlags().StringVar(&manifestFile, "manifest", "", "artifact manifest file (default is built in)")
	rootCmd.PersistentFlags().StringVar(&buildType, "build-type", "", "build configuration (Debug or Release)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	// Add commands
	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(stageCmd)
	rootCmd.AddCommand(packCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(cleanCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	var err error
	config, err = core.LoadConfig(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		config = core.DefaultConfig()
	}

	// Override config with flags
	if buildType != "" {
		config.BuildType = buildType
	}
	if debug {
		config.Debug = true
	}
}

// loadManifest returns the manifest selected by flag, or the built-in one
func loadManifest() (*manifest.Manifest, error) {
	if manifestFile == "" {
		return manifest.Default(), nil
	}
	return manifest.Load(manifestFile)
}
