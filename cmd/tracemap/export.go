// Export command: the batch loop plus summary.
package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dukaforge/tracemap/internal/export"
	"github.com/dukaforge/tracemap/internal/sqlite"
	"github.com/dukaforge/tracemap/pkg/types"
)

var (
	exportFrom     int
	exportTo       int
	exportPageSize int
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export annotated trace batches as JSONL files",
	Long: `Export pages the trace table in id order, derives the three
description fields for every row, and writes one batch_NNN.jsonl file per
batch number in the range. A manifest.json with the run outcome is written
alongside the batch files.

Example:
  tracemap export
  tracemap export --from 90 --to 100
  tracemap export --db game_trace.db --out-dir batches --from 1 --to 10`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVar(&flagOutDir, "out-dir", "", "batch output directory (default: config.yaml output_dir or ./batches)")
	exportCmd.Flags().IntVar(&exportFrom, "from", 0, "first batch number (default: config.yaml first_batch)")
	exportCmd.Flags().IntVar(&exportTo, "to", 0, "last batch number (default: config.yaml last_batch)")
	exportCmd.Flags().IntVar(&exportPageSize, "page-size", 0, "rows per batch file (default: config.yaml page_size)")
}

// exportConfig assembles the run config from flags over config.yaml values.
func exportConfig() (types.Config, error) {
	outDir, err := resolveOutputDir()
	if err != nil {
		return types.Config{}, fmt.Errorf("resolve output dir: %w", err)
	}

	c := types.Config{
		DatabasePath: resolveDBPath(),
		OutputDir:    outDir,
		FirstBatch:   cfg.GetInt(cfgKeyFirstBatch),
		LastBatch:    cfg.GetInt(cfgKeyLastBatch),
		PageSize:     cfg.GetInt(cfgKeyPageSize),
	}
	if exportFrom != 0 {
		c.FirstBatch = exportFrom
	}
	if exportTo != 0 {
		c.LastBatch = exportTo
	}
	if exportPageSize != 0 {
		c.PageSize = exportPageSize
	}
	return c, c.Validate()
}

func runExport(cmd *cobra.Command, args []string) error {
	c, err := exportConfig()
	if err != nil {
		return err
	}

	store, err := sqlite.Open(c.DatabasePath)
	if err != nil {
		return fmt.Errorf("open trace database: %w", err)
	}
	defer store.Close()

	progress := cmd.OutOrStdout()
	if flagJSON {
		progress = nil
	}

	runner := export.NewRunner(store, c.OutputDir, c.PageSize, progress)
	result, err := runner.Run(c.FirstBatch, c.LastBatch)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}

	manifest, err := export.WriteManifest(c.OutputDir, result)
	if err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}

	if flagJSON {
		out := struct {
			Manifest *export.Manifest  `json:"manifest"`
			Result   *export.RunResult `json:"result"`
		}{manifest, result}
		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal result: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	if err := export.PrintSummary(cmd.OutOrStdout(), c.OutputDir, result); err != nil {
		return fmt.Errorf("summary: %w", err)
	}
	cmd.Printf("\nRun ID: %s\n", manifest.RunID)
	return nil
}
