// Sample command: re-read a written batch file and show its last record.
package main

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/dukaforge/tracemap/internal/export"
)

var sampleCmd = &cobra.Command{
	Use:   "sample BATCH",
	Short: "Print the last record of a written batch file",
	Long: `Sample parses a previously exported batch file back and prints the
last record's entity name and descriptions, as a spot check of the output.

Example:
  tracemap sample 100
  tracemap sample 100 --out-dir batches --json`,
	Args: cobra.ExactArgs(1),
	RunE: runSample,
}

func init() {
	sampleCmd.Flags().StringVar(&flagOutDir, "out-dir", "", "batch output directory (default: config.yaml output_dir or ./batches)")
}

func runSample(cmd *cobra.Command, args []string) error {
	batch, err := strconv.Atoi(args[0])
	if err != nil || batch < 1 {
		return fmt.Errorf("invalid batch number %q", args[0])
	}

	outDir, err := resolveOutputDir()
	if err != nil {
		return fmt.Errorf("resolve output dir: %w", err)
	}

	records, err := export.ReadBatch(outDir, batch)
	if err != nil {
		return fmt.Errorf("read batch: %w", err)
	}
	if len(records) == 0 {
		return fmt.Errorf("%s has no records", export.BatchFileName(batch))
	}

	last := records[len(records)-1]
	if flagJSON {
		data, err := json.MarshalIndent(last, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal record: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	cmd.Printf("Last entry from %s:\n", export.BatchFileName(batch))
	cmd.Printf("Entity: %s\n", last.EntityName)
	cmd.Printf("Layman: %s\n", last.LaymanDescription)
	cmd.Printf("Tech:   %s\n", last.TechnicalDescription)
	cmd.Printf("Impact: %s\n", last.PlayerImpact)
	return nil
}
