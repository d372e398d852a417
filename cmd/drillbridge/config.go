// Config loading for the drillbridge CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/geoforge/drillbridge/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	// Config keys.
	cfgKeyCLIPath          = "cli_path"
	cfgKeyDBProfile        = "db_profile"
	cfgKeyDefaultProjectID = "default_project_id"
	cfgKeyPayloadFormat    = "payload_format"
	cfgKeyDataDir          = "data_dir"
)

// defaultConfigYAML is the content written to config.yaml on first run.
const defaultConfigYAML = `# drillbridge configuration

# Path to the subsurface-investigation CLI executable (required)
# cli_path: C:/Program Files/GGU/ConnectCLI.exe

# Database profile passed to the CLI (optional)
# db_profile:

# Project GUID used when creating drillings (optional)
# default_project_id:

# Structured create payload format: xml (default) or json,
# matching the installed CLI generation
payload_format: xml

# Data directory for the invocation journal (optional)
# data_dir:
`

// loadConfig reads config.yaml from the resolved config directory using
// Viper. It creates the config directory and a default config.yaml on first
// run. A missing config.yaml is not an error.
func loadConfig(configDir string) (*viper.Viper, error) {
	if err := ensureConfigDir(configDir); err != nil {
		return nil, fmt.Errorf("ensure config dir: %w", err)
	}

	if err := ensureDefaultConfigFile(configDir); err != nil {
		return nil, fmt.Errorf("ensure default config: %w", err)
	}

	v := viper.New()
	v.SetDefault(cfgKeyPayloadFormat, types.PayloadXML)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	return v, nil
}

// settingsFromConfig builds the settings value object from the loaded
// config. The --db-profile flag overrides the configured profile.
func settingsFromConfig(v *viper.Viper) types.Settings {
	s := types.Settings{
		CLIPath:          v.GetString(cfgKeyCLIPath),
		DBProfile:        v.GetString(cfgKeyDBProfile),
		DefaultProjectID: v.GetString(cfgKeyDefaultProjectID),
		PayloadFormat:    v.GetString(cfgKeyPayloadFormat),
	}
	if flagDBProfile != "" {
		s.DBProfile = flagDBProfile
	}
	return s
}

// ensureConfigDir creates the config directory if it does not exist.
func ensureConfigDir(configDir string) error {
	return os.MkdirAll(configDir, 0o755)
}

// ensureDefaultConfigFile creates a default config.yaml if the file does not
// exist in the config directory.
func ensureDefaultConfigFile(configDir string) error {
	path := filepath.Join(configDir, configFileExt)

	_, err := os.Stat(path)
	if err == nil {
		// File already exists.
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}

	return os.WriteFile(path, []byte(defaultConfigYAML), 0o644)
}
