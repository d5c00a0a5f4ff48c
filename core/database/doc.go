// Package database opens the SQL database that backs the tabular sheet store.
//
// It wraps GORM and configures either MySQL (production) or SQLite (local runs and tests)
// based on the application's configuration.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    return fmt.Errorf("failed to connect to database: %w", err)
//	}
package database
