package export

import (
	"bytes"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dukaforge/tracemap/pkg/types"
)

func TestWriteManifestRoundTrip(t *testing.T) {
	outDir := t.TempDir()
	result := &RunResult{
		FirstBatch:   1,
		LastBatch:    3,
		PageSize:     100,
		TotalRecords: 249,
		Batches: []BatchResult{
			{Number: 1, Records: 100, File: "batch_001.jsonl"},
			{Number: 2, Records: 100, File: "batch_002.jsonl"},
			{Number: 3, Records: 49, File: "batch_003.jsonl"},
		},
	}

	written, err := WriteManifest(outDir, result)
	require.NoError(t, err)

	id, err := uuid.Parse(written.RunID)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), id.Version())

	read, err := ReadManifest(outDir)
	require.NoError(t, err)
	assert.Equal(t, written.RunID, read.RunID)
	assert.Equal(t, 1, read.FirstBatch)
	assert.Equal(t, 3, read.LastBatch)
	assert.Equal(t, 249, read.TotalRecords)
	assert.False(t, read.CompletedAt.IsZero())
}

func TestPrintSummarySampleRecord(t *testing.T) {
	outDir := t.TempDir()
	rows := makeRows(2)
	rows[1] = types.TraceRecord{
		ID:            2,
		EntityType:    types.EntityTypeDefinition,
		EntityName:    "rwgmixer",
		ParentContext: types.ContextEntityGroup,
		CodeTrace:     "<entitygroup/>",
		GameContext:   "spawning",
	}
	runner := NewRunner(&fakeStore{rows: rows}, outDir, types.DefaultPageSize, nil)
	result, err := runner.Run(1, 1)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, PrintSummary(&buf, outDir, result))

	out := buf.String()
	assert.Contains(t, out, "EXPORT COMPLETE")
	assert.Contains(t, out, "Total: 1 records in 1 batches")
	assert.Contains(t, out, "Entity: rwgmixer")
	assert.Contains(t, out, "Layman: Enemy spawn group that controls which zombie types appear together during gameplay")
}

func TestPrintSummaryEmptyFinalBatch(t *testing.T) {
	outDir := t.TempDir()
	runner := NewRunner(&fakeStore{rows: makeRows(1)}, outDir, types.DefaultPageSize, nil)
	result, err := runner.Run(2, 2)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, PrintSummary(&buf, outDir, result))
	assert.Contains(t, buf.String(), "batch_002.jsonl is empty")
}
