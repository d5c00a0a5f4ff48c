// Package sheet provides the tabular store the builder reads pending barcodes from and
// appends product rows to.
//
// A document holds named sheets; a sheet is a grid of string cells addressed with A1
// notation ("A2:A3", "A2:D", "B5"). Rows are numbered from 1 and row 1 is the header row
// when records are read.
//
// # Drivers
//
//   - database: rows live in the sheet_rows table (MySQL in production, SQLite locally).
//   - storage: each sheet is one CSV object at {prefix}/{document}/{sheet}.csv in a MinIO
//     or S3 bucket. The first CSV column holds the row number.
//
// # Usage
//
//	store, err := sheet.Open(cfg.Sheet, db, client)
//	if err := store.Prepare(ctx); err != nil {
//	    return err
//	}
//	rows, err := store.Get(ctx, "Pending Barcodes", "A2:A")
package sheet
