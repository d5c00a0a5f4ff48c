package sessions

import (
	"fmt"
	"strings"
	"time"

	"product-builder/core/sheet"
)

// Config holds configuration for the session sweeper.
type Config struct {
	Sheet string `mapstructure:"sheet" default:"Session Tokens"`
	// TimestampField is the header of the timestamp column.
	TimestampField string `mapstructure:"timestamp_field" default:"timestamp"`
	// TimestampLayout is a Go time layout, parsed in local time.
	TimestampLayout string        `mapstructure:"timestamp_layout" default:"01/02/2006 15:04:05"`
	TTL             time.Duration `mapstructure:"ttl" default:"8h"`
	// StartColumn and EndColumn bound every cleared range.
	StartColumn string `mapstructure:"start_column" default:"A"`
	EndColumn   string `mapstructure:"end_column" default:"D"`
}

// Validate checks the column bounds and the TTL.
func (c Config) Validate() error {
	start, err := sheet.ColumnIndex(c.StartColumn)
	if err != nil {
		return err
	}
	end, err := sheet.ColumnIndex(c.EndColumn)
	if err != nil {
		return err
	}
	if end < start {
		return fmt.Errorf("end column %s precedes start column %s", strings.ToUpper(c.EndColumn), strings.ToUpper(c.StartColumn))
	}
	if c.TTL <= 0 {
		return fmt.Errorf("session ttl must be positive, got %s", c.TTL)
	}
	if c.Sheet == "" || c.TimestampField == "" || c.TimestampLayout == "" {
		return fmt.Errorf("sheet, timestamp_field and timestamp_layout are required")
	}
	return nil
}
