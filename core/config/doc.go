// Package config provides configuration management for the product builder.
//
// It utilizes Viper for loading configuration from environment variables and an
// optional .env file. Defaults come from the `default` struct tags of every section.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP server settings (port, API key, timeouts)
//   - Database: MySQL or SQLite connection details
//   - Storage: S3/MinIO credentials and bucket settings
//   - Log: Logging level and format
//   - Sheet: which store holds the spreadsheet (database or storage)
//   - Backends: base URLs, rate limits and credentials of the lookup backends
//   - Builder: sheet names, normalization strategy, invalid barcode policy, merge priority
//   - Sessions: session sheet, timestamp layout, TTL and cleared columns
//
// Nested keys map to environment variables with dots replaced by underscores,
// e.g. builder.on_invalid is read from BUILDER_ON_INVALID.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Builder.ProductSheet)
package config
