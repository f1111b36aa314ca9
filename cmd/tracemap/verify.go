// Verify command: database sanity check.
package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dukaforge/tracemap/internal/sqlite"
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check the trace database and report its contents",
	Long: `Verify opens the trace database read-only, lists its tables, and
counts the trace rows.

Example:
  tracemap verify
  tracemap verify --db game_trace.db --json`,
	RunE: runVerify,
}

func runVerify(cmd *cobra.Command, args []string) error {
	store, err := sqlite.Open(resolveDBPath())
	if err != nil {
		return fmt.Errorf("open trace database: %w", err)
	}
	defer store.Close()

	tables, err := store.Tables()
	if err != nil {
		return fmt.Errorf("list tables: %w", err)
	}
	count, err := store.Count()
	if err != nil {
		return fmt.Errorf("count trace rows: %w", err)
	}

	if flagJSON {
		out := struct {
			Tables       []string `json:"tables"`
			TraceRecords int64    `json:"trace_records"`
		}{tables, count}
		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal result: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	cmd.Printf("Tables: %s\n", strings.Join(tables, ", "))
	cmd.Printf("Trace records: %d\n", count)
	return nil
}
