package types

import "errors"

// Config validation errors.
var (
	ErrDatabasePathEmpty = errors.New("database path must not be empty")
	ErrPageSizeInvalid   = errors.New("page size must be positive")
	ErrBatchRangeInvalid = errors.New("batch range must start at 1 or later and not be inverted")
)

// DefaultPageSize is the number of trace rows per batch file.
const DefaultPageSize = 100

// Config holds the parameters of one export run.
type Config struct {
	DatabasePath string `json:"database_path" yaml:"database_path"`
	OutputDir    string `json:"output_dir" yaml:"output_dir"`
	FirstBatch   int    `json:"first_batch" yaml:"first_batch"`
	LastBatch    int    `json:"last_batch" yaml:"last_batch"`
	PageSize     int    `json:"page_size" yaml:"page_size"`
}

// Validate checks that the Config is well-formed. It returns a sentinel
// error from this package on failure.
func (c Config) Validate() error {
	if c.DatabasePath == "" {
		return ErrDatabasePathEmpty
	}
	if c.PageSize <= 0 {
		return ErrPageSizeInvalid
	}
	if c.FirstBatch < 1 || c.LastBatch < c.FirstBatch {
		return ErrBatchRangeInvalid
	}
	return nil
}
