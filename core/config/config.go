package config

import (
	"fmt"
	"reflect"
	"strings"

	"product-builder/core/database"
	"product-builder/core/logger"
	"product-builder/core/server"
	"product-builder/core/sheet"
	"product-builder/core/storage"
	"product-builder/feature/products"
	"product-builder/feature/products/backends"
	"product-builder/feature/sessions"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Server holds configuration for the HTTP server.
	Server server.Config `mapstructure:"server"`
	// Storage holds configuration for the object storage (e.g., S3, Minio).
	Storage storage.Config `mapstructure:"storage"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Database holds configuration for the database connection.
	Database database.Config `mapstructure:"database"`
	// Sheet selects where the spreadsheet lives.
	Sheet sheet.Config `mapstructure:"sheet"`
	// Backends holds configuration for every product lookup backend.
	Backends backends.Config `mapstructure:"backends"`
	// Builder holds configuration for the product database build.
	Builder products.Config `mapstructure:"builder"`
	// Sessions holds configuration for the session token sweep.
	Sessions sessions.Config `mapstructure:"sessions"`
}

// LoadConfig loads configuration from environment variables and .env file.
func LoadConfig(path string) (*Config, error) {
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// Ignore error if file doesn't exist (e.g. production)
	_ = godotenv.Overload(envPath)

	v := viper.New()

	// Recursively parse struct tags to set default values
	bindValues(v, Config{}, "")

	// Map environment variables to nested keys (e.g. BUILDER_ON_INVALID -> builder.on_invalid)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate checks the enumerations shared by every command.
// Backend credentials are checked by the commands that query backends.
func (c *Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return err
	}
	if !c.Sheet.IsValidDriver() {
		return fmt.Errorf("invalid sheet driver %q (must be %s or %s)", c.Sheet.Driver, sheet.DriverDatabase, sheet.DriverStorage)
	}
	if !c.Database.IsValidDriver() {
		return fmt.Errorf("invalid database driver %q", c.Database.Driver)
	}
	if err := c.Builder.Validate(); err != nil {
		return fmt.Errorf("builder: %w", err)
	}
	if err := c.Sessions.Validate(); err != nil {
		return fmt.Errorf("sessions: %w", err)
	}
	return nil
}

// bindValues uses reflection to iterate over the struct and set default values in Viper
// based on the 'default' and 'mapstructure' tags.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	// If it's a pointer, get the element
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")

		if tag == "" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, field.Tag.Get("default"))
	}
}
