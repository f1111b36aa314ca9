// This file implements the run manifest and the post-run console summary.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// ManifestFileName is written to the output directory after a successful run.
const ManifestFileName = "manifest.json"

// Manifest describes a completed export run.
type Manifest struct {
	RunID        string    `json:"run_id"`
	FirstBatch   int       `json:"first_batch"`
	LastBatch    int       `json:"last_batch"`
	PageSize     int       `json:"page_size"`
	TotalRecords int       `json:"total_records"`
	CompletedAt  time.Time `json:"completed_at"`
}

// WriteManifest records the run outcome in manifest.json with a fresh
// UUID v7 run ID, and returns the written manifest.
func WriteManifest(outDir string, result *RunResult) (*Manifest, error) {
	runID, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("generating run ID: %w", err)
	}

	m := &Manifest{
		RunID:        runID.String(),
		FirstBatch:   result.FirstBatch,
		LastBatch:    result.LastBatch,
		PageSize:     result.PageSize,
		TotalRecords: result.TotalRecords,
		CompletedAt:  time.Now().UTC(),
	}

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling manifest: %w", err)
	}
	path := filepath.Join(outDir, ManifestFileName)
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return nil, fmt.Errorf("writing %s: %w", ManifestFileName, err)
	}
	return m, nil
}

// ReadManifest loads manifest.json from the output directory.
func ReadManifest(outDir string) (*Manifest, error) {
	data, err := os.ReadFile(filepath.Join(outDir, ManifestFileName))
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", ManifestFileName, err)
	}
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", ManifestFileName, err)
	}
	return &m, nil
}

// PrintSummary prints the completion banner, the per-batch counts, and a
// sanity check re-reading the last record of the final batch file.
func PrintSummary(out io.Writer, outDir string, result *RunResult) error {
	fmt.Fprintf(out, "\n====== EXPORT COMPLETE ======\n\n")
	for _, br := range result.Batches {
		fmt.Fprintf(out, "  ✓ %s (%d records)\n", br.File, br.Records)
	}
	fmt.Fprintf(out, "\nTotal: %d records in %d batches\n", result.TotalRecords, len(result.Batches))

	last := result.Batches[len(result.Batches)-1]
	records, err := ReadBatch(outDir, last.Number)
	if err != nil {
		return fmt.Errorf("re-reading %s: %w", last.File, err)
	}
	if len(records) == 0 {
		fmt.Fprintf(out, "\n%s is empty; no sample record to show\n", last.File)
		return nil
	}

	sample := records[len(records)-1]
	fmt.Fprintf(out, "\nSample check - last entry from %s:\n", last.File)
	fmt.Fprintf(out, "Entity: %s\n", sample.EntityName)
	fmt.Fprintf(out, "Layman: %s\n", sample.LaymanDescription)
	fmt.Fprintf(out, "Tech:   %s\n", sample.TechnicalDescription)
	fmt.Fprintf(out, "Impact: %s\n", sample.PlayerImpact)
	return nil
}
