package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"product-builder/core/config"
	"product-builder/core/database"
	"product-builder/core/logger"
	"product-builder/core/sheet"
	"product-builder/core/storage"
	"product-builder/feature/products"
	"product-builder/feature/products/backends"
	"product-builder/feature/sessions"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// deps bundles what every command needs.
type deps struct {
	cfg    *config.Config
	logger *zap.Logger
	store  sheet.Store
}

// setup loads the configuration, creates the logger and opens the sheet store.
// Only the connection required by the configured sheet driver is opened.
func setup(ctx context.Context) (*deps, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	var (
		db     *gorm.DB
		client storage.Client
	)
	switch cfg.Sheet.Driver {
	case sheet.DriverDatabase:
		if db, err = database.Connect(cfg.Database); err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
	case sheet.DriverStorage:
		if client, err = storage.NewClient(cfg.Storage); err != nil {
			return nil, fmt.Errorf("failed to create storage client: %w", err)
		}
	}

	store, err := sheet.Open(cfg.Sheet, db, client, cfg.Storage.Bucket)
	if err != nil {
		return nil, err
	}
	if err := store.Prepare(ctx); err != nil {
		return nil, fmt.Errorf("failed to prepare sheet store: %w", err)
	}

	logg.Debug("Sheet store ready",
		zap.String("driver", cfg.Sheet.Driver),
		zap.String("document", cfg.Sheet.Document),
	)

	return &deps{cfg: cfg, logger: logg, store: store}, nil
}

// productService wires the lookup backends into a product service.
func (r *deps) productService() (*products.Service, error) {
	if err := r.cfg.Backends.Validate(); err != nil {
		return nil, err
	}
	return products.NewService(r.cfg.Builder, r.store, backends.NewResolver(r.cfg.Backends), r.logger)
}

// sweeper creates the session sweeper.
func (r *deps) sweeper() (*sessions.Sweeper, error) {
	return sessions.NewSweeper(r.cfg.Sessions, r.store, r.logger)
}

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	_, err = fmt.Fprintln(os.Stdout, string(data))
	return err
}
