// Root command for the tracemap CLI.
package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dukaforge/tracemap/internal/paths"
)

// Global flag values.
var (
	flagConfigDir string
	flagDB        string
	flagOutDir    string
	flagJSON      bool
)

// cfg holds the loaded config.yaml values. Set by PersistentPreRunE so all
// subcommands can read it.
var cfg *viper.Viper

var rootCmd = &cobra.Command{
	Use:   "tracemap",
	Short: "Tracemap exports annotated game entity traces as JSONL batches",
	Long: `Tracemap reads reverse-engineered game entity traces from a local
SQLite database, derives layman, technical, and player-impact descriptions
for each row, and writes them as newline-delimited JSON batch files.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// The version command needs no configuration.
		if cmd.Name() == "version" {
			return nil
		}

		configDir, err := paths.ResolveConfigDir(flagConfigDir)
		if err != nil {
			return err
		}

		cfg, err = loadConfig(configDir)
		return err
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagDB, "db", "", "trace database path (default: config.yaml database_path)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(sampleCmd)
}

// resolveDBPath returns the trace database path: --db flag > config.yaml.
func resolveDBPath() string {
	if flagDB != "" {
		return flagDB
	}
	return cfg.GetString(cfgKeyDatabasePath)
}

// resolveOutputDir returns the batch output directory following the
// precedence chain: --out-dir flag > config.yaml > env > $(CWD)/batches.
func resolveOutputDir() (string, error) {
	return paths.ResolveOutputDir(flagOutDir, cfg.GetString(cfgKeyOutputDir))
}
