// This file implements the batch loop over the trace table.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/dukaforge/tracemap/internal/describe"
	"github.com/dukaforge/tracemap/pkg/types"
)

// Pager is the slice of the trace store the runner needs: one ordered page
// of rows per call.
type Pager interface {
	Page(limit, offset int) ([]types.TraceRecord, error)
}

// BatchResult records the outcome of one exported batch.
type BatchResult struct {
	Number  int    `json:"number"`
	Records int    `json:"records"`
	File    string `json:"file"`
}

// RunResult records the outcome of a whole export run.
type RunResult struct {
	FirstBatch   int           `json:"first_batch"`
	LastBatch    int           `json:"last_batch"`
	PageSize     int           `json:"page_size"`
	TotalRecords int           `json:"total_records"`
	Batches      []BatchResult `json:"batches"`
}

// Runner executes the export: for each batch number it pages the trace
// table, resolves descriptions, and writes one JSONL file. Batches run
// strictly in ascending order; the first error aborts the run.
type Runner struct {
	store    Pager
	outDir   string
	pageSize int
	out      io.Writer
}

// NewRunner creates a runner writing batch files to outDir and progress
// lines to out. A nil out discards progress output.
func NewRunner(store Pager, outDir string, pageSize int, out io.Writer) *Runner {
	if out == nil {
		out = io.Discard
	}
	return &Runner{
		store:    store,
		outDir:   outDir,
		pageSize: pageSize,
		out:      out,
	}
}

// Run exports the inclusive batch range [first, last].
func (r *Runner) Run(first, last int) (*RunResult, error) {
	if err := os.MkdirAll(r.outDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output dir: %w", err)
	}

	result := &RunResult{
		FirstBatch: first,
		LastBatch:  last,
		PageSize:   r.pageSize,
	}
	for batch := first; batch <= last; batch++ {
		br, err := r.exportBatch(batch)
		if err != nil {
			return nil, fmt.Errorf("batch %d: %w", batch, err)
		}
		result.Batches = append(result.Batches, br)
		result.TotalRecords += br.Records
	}
	return result, nil
}

// exportBatch writes one batch file and returns its record count.
func (r *Runner) exportBatch(batch int) (BatchResult, error) {
	// Offsets are shifted by one to preserve the batch layout of the
	// original exporter: batch n starts at ordered row n*pageSize-pageSize+2.
	offset := (batch-1)*r.pageSize + 1

	fmt.Fprintf(r.out, "Processing batch %d (offset=%d, limit=%d)...\n", batch, offset, r.pageSize)

	rows, err := r.store.Page(r.pageSize, offset)
	if err != nil {
		return BatchResult{}, err
	}

	lines := make([]json.RawMessage, 0, len(rows))
	for _, row := range rows {
		d := describe.Resolve(row.EntityType, row.EntityName, row.ParentContext)
		line, err := json.Marshal(types.NewExportRecord(row, d))
		if err != nil {
			return BatchResult{}, fmt.Errorf("marshaling record %d: %w", row.ID, err)
		}
		lines = append(lines, line)
	}

	name := BatchFileName(batch)
	if err := writeJSONL(filepath.Join(r.outDir, name), lines); err != nil {
		return BatchResult{}, err
	}

	fmt.Fprintf(r.out, "  ✓ %s - %d records\n", name, len(lines))
	return BatchResult{Number: batch, Records: len(lines), File: name}, nil
}

// ReadBatch parses a written batch file back into export records.
func ReadBatch(outDir string, batch int) ([]types.ExportRecord, error) {
	raw, err := readJSONL(filepath.Join(outDir, BatchFileName(batch)))
	if err != nil {
		return nil, err
	}
	records := make([]types.ExportRecord, 0, len(raw))
	for i, line := range raw {
		var rec types.ExportRecord
		if err := json.Unmarshal(line, &rec); err != nil {
			return nil, fmt.Errorf("parsing line %d of %s: %w", i+1, BatchFileName(batch), err)
		}
		records = append(records, rec)
	}
	return records, nil
}
