package sessions

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"product-builder/core/sheet"

	"go.uber.org/zap"
)

// ErrNothingExpired is returned when no session row has outlived the TTL.
var ErrNothingExpired = errors.New("no expired session tokens")

// SweepResult describes one sweep.
type SweepResult struct {
	Scanned int      `json:"scanned"`
	Expired []int    `json:"expired_rows"`
	Ranges  []string `json:"cleared_ranges"`
}

// Sweeper clears expired session rows.
type Sweeper struct {
	cfg    Config
	store  sheet.Store
	logger *zap.Logger
	now    func() time.Time
}

// NewSweeper creates a new sweeper.
func NewSweeper(cfg Config, store sheet.Store, logger *zap.Logger) (*Sweeper, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Sweeper{
		cfg:    cfg,
		store:  store,
		logger: logger,
		now:    time.Now,
	}, nil
}

// Sweep clears every row whose timestamp is at least TTL old.
// Rows with an empty timestamp are left alone.
func (s *Sweeper) Sweep(ctx context.Context) (*SweepResult, error) {
	records, err := s.store.Records(ctx, s.cfg.Sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read %q: %w", s.cfg.Sheet, err)
	}

	now := s.now()
	result := &SweepResult{}
	for i, record := range records {
		value := strings.TrimSpace(record[s.cfg.TimestampField])
		if value == "" {
			continue
		}
		result.Scanned++

		// Record i sits below the header, on sheet row i+2.
		row := i + 2
		ts, err := time.ParseInLocation(s.cfg.TimestampLayout, value, time.Local)
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid timestamp %q: %w", row, value, err)
		}
		if now.Sub(ts) >= s.cfg.TTL {
			result.Expired = append(result.Expired, row)
		}
	}

	if len(result.Expired) == 0 {
		return result, ErrNothingExpired
	}

	for _, group := range GroupConsecutive(result.Expired) {
		result.Ranges = append(result.Ranges, RowRange(group, s.cfg.StartColumn, s.cfg.EndColumn))
	}

	if err := s.store.BatchClear(ctx, s.cfg.Sheet, result.Ranges); err != nil {
		return nil, fmt.Errorf("failed to clear %q: %w", s.cfg.Sheet, err)
	}

	s.logger.Info("Expired session tokens cleared",
		zap.Int("scanned", result.Scanned),
		zap.Int("expired", len(result.Expired)),
		zap.Strings("ranges", result.Ranges),
	)
	return result, nil
}

// GroupConsecutive splits ascending row numbers into runs of consecutive values.
func GroupConsecutive(rows []int) [][]int {
	var groups [][]int
	var current []int
	for _, n := range rows {
		if len(current) > 0 && n != current[len(current)-1]+1 {
			groups = append(groups, current)
			current = nil
		}
		current = append(current, n)
	}
	if len(current) > 0 {
		groups = append(groups, current)
	}
	return groups
}

// RowRange returns the A1 range spanning rows from startCol to endCol, e.g. "A3:D5".
func RowRange(rows []int, startCol, endCol string) string {
	if len(rows) == 0 {
		return ""
	}
	return fmt.Sprintf("%s%d:%s%d",
		strings.ToUpper(startCol), rows[0],
		strings.ToUpper(endCol), rows[len(rows)-1])
}
