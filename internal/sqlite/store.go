// Package sqlite implements the read-only store over the trace database.
package sqlite

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/dukaforge/tracemap/pkg/types"
)

// Store wraps a single SQLite connection to the trace database. The
// connection is opened once, reused for every page, and closed at the end
// of the run.
type Store struct {
	db *sql.DB
}

// Open opens the trace database read-only. The file must already exist;
// this tool never creates or modifies it.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", "file:"+path+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	// sql.Open defers I/O; ping so a missing or unreadable file fails here.
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	return &Store{db: db}, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Page returns up to limit trace rows starting at offset, ordered by id.
// The id column defines the stable total order paging relies on.
func (s *Store) Page(limit, offset int) ([]types.TraceRecord, error) {
	rows, err := s.db.Query(
		`SELECT id, entity_type, entity_name, parent_context, code_trace,
		        usage_examples, related_entities, game_context
		 FROM trace
		 ORDER BY id
		 LIMIT ? OFFSET ?`,
		limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("querying trace page (limit=%d offset=%d): %w", limit, offset, err)
	}
	defer rows.Close()

	var records []types.TraceRecord
	for rows.Next() {
		var (
			rec              types.TraceRecord
			usage, relatives sql.NullString
		)
		err := rows.Scan(
			&rec.ID, &rec.EntityType, &rec.EntityName, &rec.ParentContext,
			&rec.CodeTrace, &usage, &relatives, &rec.GameContext,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning trace row: %w", err)
		}
		if usage.Valid {
			rec.UsageExamples = &usage.String
		}
		if relatives.Valid {
			rec.RelatedEntities = &relatives.String
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating trace rows: %w", err)
	}
	return records, nil
}

// Count returns the total number of trace rows.
func (s *Store) Count() (int64, error) {
	var n int64
	if err := s.db.QueryRow("SELECT COUNT(*) FROM trace").Scan(&n); err != nil {
		return 0, fmt.Errorf("counting trace rows: %w", err)
	}
	return n, nil
}

// Tables returns the table names in the database, in sqlite_master order.
func (s *Store) Tables() ([]string, error) {
	rows, err := s.db.Query("SELECT name FROM sqlite_master WHERE type = 'table'")
	if err != nil {
		return nil, fmt.Errorf("listing tables: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scanning table name: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating table names: %w", err)
	}
	return names, nil
}
