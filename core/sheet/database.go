package sheet

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// Row is one sheet row persisted by DatabaseStore.
type Row struct {
	ID       uint     `gorm:"primaryKey"`
	Document string   `gorm:"size:191;not null;uniqueIndex:idx_sheet_row,priority:1"`
	Sheet    string   `gorm:"size:191;not null;uniqueIndex:idx_sheet_row,priority:2"`
	Number   int      `gorm:"not null;uniqueIndex:idx_sheet_row,priority:3"`
	Cells    []string `gorm:"serializer:json;type:text"`
}

// TableName overrides the default table name.
func (Row) TableName() string {
	return "sheet_rows"
}

// DatabaseStore keeps sheets in the sheet_rows table.
type DatabaseStore struct {
	db       *gorm.DB
	document string
}

// NewDatabaseStore creates a store for one document.
func NewDatabaseStore(db *gorm.DB, document string) *DatabaseStore {
	return &DatabaseStore{db: db, document: document}
}

// Prepare migrates the sheet_rows table.
func (s *DatabaseStore) Prepare(ctx context.Context) error {
	if err := s.db.WithContext(ctx).AutoMigrate(&Row{}); err != nil {
		return fmt.Errorf("failed to migrate sheet rows: %w", err)
	}
	return nil
}

// Get returns the cells of rng in sheet.
func (s *DatabaseStore) Get(ctx context.Context, sheet, rng string) ([][]string, error) {
	r, err := ParseRange(rng)
	if err != nil {
		return nil, err
	}

	rows, err := s.load(s.db.WithContext(ctx), sheet, r)
	if err != nil {
		return nil, err
	}
	return sliceGrid(index(rows), r), nil
}

// Records returns every row below the header of sheet.
func (s *DatabaseStore) Records(ctx context.Context, sheet string) ([]map[string]string, error) {
	rows, err := s.load(s.db.WithContext(ctx), sheet, Range{StartRow: 1})
	if err != nil {
		return nil, err
	}
	return toRecords(index(rows))
}

// AppendRows writes rows after the last non-empty row of sheet.
func (s *DatabaseStore) AppendRows(ctx context.Context, sheet string, rows [][]string) error {
	if len(rows) == 0 {
		return nil
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := s.load(tx, sheet, Range{StartRow: 1})
		if err != nil {
			return err
		}
		last := lastRow(index(existing))

		// Blank rows past the last data row are reused.
		if err := tx.Where("document = ? AND sheet = ? AND number > ?", s.document, sheet, last).
			Delete(&Row{}).Error; err != nil {
			return fmt.Errorf("failed to drop blank rows of %q: %w", sheet, err)
		}

		batch := make([]Row, 0, len(rows))
		for i, cells := range rows {
			batch = append(batch, Row{
				Document: s.document,
				Sheet:    sheet,
				Number:   last + i + 1,
				Cells:    cells,
			})
		}
		if err := tx.Create(&batch).Error; err != nil {
			return fmt.Errorf("failed to append %d rows to %q: %w", len(rows), sheet, err)
		}
		return nil
	})
}

// BatchClear blanks every cell of ranges in sheet.
func (s *DatabaseStore) BatchClear(ctx context.Context, sheet string, ranges []string) error {
	parsed := make([]Range, 0, len(ranges))
	for _, rng := range ranges {
		r, err := ParseRange(rng)
		if err != nil {
			return err
		}
		parsed = append(parsed, r)
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, r := range parsed {
			rows, err := s.load(tx, sheet, r)
			if err != nil {
				return err
			}
			for i := range rows {
				clearRange(map[int][]string{rows[i].Number: rows[i].Cells}, r)
				if err := tx.Save(&rows[i]).Error; err != nil {
					return fmt.Errorf("failed to clear row %d of %q: %w", rows[i].Number, sheet, err)
				}
			}
		}
		return nil
	})
}

func (s *DatabaseStore) load(db *gorm.DB, sheet string, r Range) ([]Row, error) {
	query := db.Where("document = ? AND sheet = ?", s.document, sheet).
		Where("number >= ?", r.StartRow)
	if r.EndRow > 0 {
		query = query.Where("number <= ?", r.EndRow)
	}

	var rows []Row
	if err := query.Order("number").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}
	return rows, nil
}

func index(rows []Row) map[int][]string {
	m := make(map[int][]string, len(rows))
	for _, row := range rows {
		m[row.Number] = row.Cells
	}
	return m
}
