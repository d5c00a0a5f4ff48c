package sheet

import (
	"context"
	"errors"
	"fmt"

	"product-builder/core/storage"

	"gorm.io/gorm"
)

var (
	// ErrInvalidRange is returned for malformed A1 ranges.
	ErrInvalidRange = errors.New("invalid A1 range")

	// ErrNoHeader is returned when records are read from a sheet without a header row.
	ErrNoHeader = errors.New("sheet has no header row")
)

// Store is a document of named sheets.
type Store interface {
	// Prepare creates whatever the backing store needs (tables, bucket).
	Prepare(ctx context.Context) error

	// Get returns the cells of rng. Trailing empty rows and cells are trimmed;
	// empty rows between data rows are returned as empty slices.
	Get(ctx context.Context, sheet, rng string) ([][]string, error)

	// Records returns every row below the header as a map keyed by header cell.
	// The record at index i is sheet row i+2.
	Records(ctx context.Context, sheet string) ([]map[string]string, error)

	// AppendRows writes rows after the last non-empty row of the sheet.
	AppendRows(ctx context.Context, sheet string, rows [][]string) error

	// BatchClear blanks every cell of the given ranges.
	BatchClear(ctx context.Context, sheet string, ranges []string) error
}

// Open returns the store selected by cfg.Driver.
func Open(cfg Config, db *gorm.DB, client storage.Client, bucket string) (Store, error) {
	switch cfg.Driver {
	case DriverDatabase:
		if db == nil {
			return nil, fmt.Errorf("sheet driver %q requires a database connection", cfg.Driver)
		}
		return NewDatabaseStore(db, cfg.Document), nil
	case DriverStorage:
		if client == nil {
			return nil, fmt.Errorf("sheet driver %q requires a storage client", cfg.Driver)
		}
		return NewObjectStore(client, bucket, cfg.Prefix, cfg.Document), nil
	default:
		return nil, fmt.Errorf("unsupported sheet driver %q", cfg.Driver)
	}
}
