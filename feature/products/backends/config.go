package backends

import (
	"errors"
	"fmt"
	"time"
)

// Config holds configuration for every lookup backend.
type Config struct {
	// TimeoutSeconds bounds each backend call. An expired call counts as a failure.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"10"`
	// Concurrency caps in-flight backend calls during one resolution.
	Concurrency int `mapstructure:"concurrency" default:"4"`
	// UserAgent is sent with every request.
	UserAgent string `mapstructure:"user_agent" default:"product-builder/1.0"`

	UPCItemDB      UPCItemDBConfig      `mapstructure:"upcitemdb"`
	UPCDatabase    UPCDatabaseConfig    `mapstructure:"upcdatabase"`
	BarcodeMonster BarcodeMonsterConfig `mapstructure:"barcodemonster"`
}

// UPCItemDBConfig configures the batch item-lookup backend.
type UPCItemDBConfig struct {
	BaseURL string `mapstructure:"base_url" default:"https://api.upcitemdb.com"`
	// RatePerSecond is the sustained request rate; the trial plan allows 6 requests per minute.
	RatePerSecond float64 `mapstructure:"rate_per_second" default:"0.1"`
	Burst         int     `mapstructure:"burst" default:"6"`
}

// UPCDatabaseConfig configures the keyed database backend.
type UPCDatabaseConfig struct {
	BaseURL string `mapstructure:"base_url" default:"https://api.upcdatabase.org"`
	// APIKey is sent as a bearer token.
	APIKey          string  `mapstructure:"api_key" default:""`
	NotFoundMessage string  `mapstructure:"not_found_message" default:"Not Found. No product could be found with that code."`
	RatePerSecond   float64 `mapstructure:"rate_per_second" default:"1"`
	Burst           int     `mapstructure:"burst" default:"5"`
}

// BarcodeMonsterConfig configures the community backend.
type BarcodeMonsterConfig struct {
	BaseURL       string  `mapstructure:"base_url" default:"https://barcode.monster"`
	RatePerSecond float64 `mapstructure:"rate_per_second" default:"2"`
	Burst         int     `mapstructure:"burst" default:"5"`
}

// Timeout returns the per-call timeout.
func (c Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// Validate checks the settings every backend needs.
func (c Config) Validate() error {
	if c.TimeoutSeconds <= 0 {
		return fmt.Errorf("backend timeout must be positive, got %d seconds", c.TimeoutSeconds)
	}
	if c.UPCDatabase.APIKey == "" {
		return errors.New("upcdatabase API key is required (set BACKENDS_UPCDATABASE_API_KEY)")
	}
	if c.UPCItemDB.BaseURL == "" || c.UPCDatabase.BaseURL == "" || c.BarcodeMonster.BaseURL == "" {
		return errors.New("every backend needs a base_url")
	}
	return nil
}
