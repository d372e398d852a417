// Config command shows and edits the persisted drillbridge configuration.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/geoforge/drillbridge/pkg/types"
)

// editableConfigKeys are the keys config set accepts.
var editableConfigKeys = []string{
	cfgKeyCLIPath,
	cfgKeyDBProfile,
	cfgKeyDefaultProjectID,
	cfgKeyPayloadFormat,
	cfgKeyDataDir,
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change the drillbridge configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value and persist it",
	Long: `Set writes a configuration value to config.yaml.

Valid keys: cli_path, db_profile, default_project_id, payload_format, data_dir

Example:
  drillbridge config set cli_path "C:/Program Files/GGU/ConnectCLI.exe"
  drillbridge config set payload_format json`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	configDir, err := resolveConfigDir()
	if err != nil {
		return fmt.Errorf("resolve config dir: %w", err)
	}
	dataDir, err := resolveDataDir()
	if err != nil {
		return fmt.Errorf("resolve data dir: %w", err)
	}

	cliStatus := "not set"
	if settings.CLIPath != "" {
		if _, err := os.Stat(settings.CLIPath); err == nil {
			cliStatus = "found"
		} else {
			cliStatus = "missing"
		}
	}

	if flagJSON {
		return printJSON(map[string]string{
			"config_dir":           configDir,
			"data_dir":             dataDir,
			cfgKeyCLIPath:          settings.CLIPath,
			"cli_path_status":      cliStatus,
			cfgKeyDBProfile:        settings.DBProfile,
			cfgKeyDefaultProjectID: settings.DefaultProjectID,
			cfgKeyPayloadFormat:    settings.EffectivePayloadFormat(),
		})
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"Key", "Value"})
	t.AppendRow(table.Row{"config dir", configDir})
	t.AppendRow(table.Row{"data dir", dataDir})
	t.AppendRow(table.Row{cfgKeyCLIPath, fmt.Sprintf("%s (%s)", settings.CLIPath, cliStatus)})
	t.AppendRow(table.Row{cfgKeyDBProfile, settings.DBProfile})
	t.AppendRow(table.Row{cfgKeyDefaultProjectID, settings.DefaultProjectID})
	t.AppendRow(table.Row{cfgKeyPayloadFormat, settings.EffectivePayloadFormat()})
	t.Render()
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key := args[0]
	value := args[1]

	if !slices.Contains(editableConfigKeys, key) {
		return fmt.Errorf("unknown config key %q (valid: cli_path, db_profile, default_project_id, payload_format, data_dir)", key)
	}

	if key == cfgKeyPayloadFormat && value != types.PayloadXML && value != types.PayloadJSON {
		return fmt.Errorf("invalid payload_format %q (valid: xml, json)", value)
	}

	configDir, err := resolveConfigDir()
	if err != nil {
		return fmt.Errorf("resolve config dir: %w", err)
	}

	v, err := loadConfig(configDir)
	if err != nil {
		return err
	}

	v.Set(key, value)

	if err := v.WriteConfigAs(filepath.Join(configDir, configFileExt)); err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	fmt.Printf("Set %s = %s\n", key, value)
	return nil
}
