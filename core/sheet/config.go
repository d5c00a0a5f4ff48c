package sheet

// Config holds configuration for the sheet store.
type Config struct {
	// Driver selects the backing store (database, storage).
	Driver string `mapstructure:"driver" default:"database"`
	// Document is the spreadsheet every sheet belongs to.
	Document string `mapstructure:"document" default:"retail"`
	// Prefix is the object key prefix used by the storage driver.
	Prefix string `mapstructure:"prefix" default:"sheets"`
}

const (
	DriverDatabase = "database"
	DriverStorage  = "storage"
)

// IsValidDriver checks if the configured driver is supported.
func (c Config) IsValidDriver() bool {
	switch c.Driver {
	case DriverDatabase, DriverStorage:
		return true
	default:
		return false
	}
}
