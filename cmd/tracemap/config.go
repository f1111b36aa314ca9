// Config loading for the tracemap CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/dukaforge/tracemap/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	// Config keys.
	cfgKeyDatabasePath = "database_path"
	cfgKeyOutputDir    = "output_dir"
	cfgKeyFirstBatch   = "first_batch"
	cfgKeyLastBatch    = "last_batch"
	cfgKeyPageSize     = "page_size"

	// Default trace database file name, matching the indexer's output.
	defaultDatabasePath = "game_trace.db"
)

// defaultConfigYAML is the content written to config.yaml on first run.
const defaultConfigYAML = `# Tracemap CLI configuration

# Trace database produced by the XML indexer (overridable by --db)
database_path: game_trace.db

# Batch output directory (optional; overridable by --out-dir)
# output_dir:

# Default batch range for export (overridable by --from / --to)
first_batch: 1
last_batch: 1

# Rows per batch file (overridable by --page-size)
page_size: 100
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
	v.SetDefault(cfgKeyDatabasePath, defaultDatabasePath)
	v.SetDefault(cfgKeyFirstBatch, 1)
	v.SetDefault(cfgKeyLastBatch, 1)
	v.SetDefault(cfgKeyPageSize, types.DefaultPageSize)
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

// ensureConfigDir creates the config directory if it does not exist.
func ensureConfigDir(configDir string) error {
	return os.MkdirAll(configDir, 0o755)
}

// ensureDefaultConfigFile creates a default config.yaml if the file does
// not exist in the config directory.
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
