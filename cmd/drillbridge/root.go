// Root command for the drillbridge CLI.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/geoforge/drillbridge/internal/paths"
	"github.com/geoforge/drillbridge/pkg/logging"
	"github.com/geoforge/drillbridge/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
	flagDBProfile string
	flagJSON      bool
	flagVerbose   bool
)

// settings is the resolved configuration value object, built once by
// PersistentPreRunE and passed explicitly into the connect layer.
var settings types.Settings

// configDataDir holds the data_dir value loaded from config.yaml.
var configDataDir string

var rootCmd = &cobra.Command{
	Use:     "drillbridge",
	Short:   "Drillbridge hands selected map features to the subsurface-investigation CLI",
	Version: version,
	// Runtime failures are not usage errors; main prints them once.
	SilenceUsage:  true,
	SilenceErrors: true,
	Long: `Drillbridge turns selected map features (boreholes, planned drilling
points) into invocations of the external subsurface-investigation CLI:
opening drillings in the stratigraphy viewer, creating new drilling records,
and listing database profiles and projects.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := logging.LevelWarn
		if flagVerbose {
			level = logging.LevelDebug
		}
		logging.Init(level, os.Stderr)

		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}

		cfg, err := loadConfig(configDir)
		if err != nil {
			return err
		}

		configDataDir = cfg.GetString(cfgKeyDataDir)
		settings = settingsFromConfig(cfg)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory for the invocation journal (default: platform data dir)")
	rootCmd.PersistentFlags().StringVar(&flagDBProfile, "db-profile", "", "database profile (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "enable debug logging")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(openCmd)
	rootCmd.AddCommand(createCmd)
	rootCmd.AddCommand(profilesCmd)
	rootCmd.AddCommand(projectsCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(configCmd)
}

// resolveConfigDir returns the configuration directory following the
// precedence chain: --config-dir flag > env > platform default.
func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flagConfigDir)
}

// resolveDataDir returns the data directory following the precedence chain:
// --data-dir flag > config.yaml data_dir > env > platform default.
func resolveDataDir() (string, error) {
	return paths.ResolveDataDir(flagDataDir, configDataDir)
}
