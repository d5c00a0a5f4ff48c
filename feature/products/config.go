package products

import (
	"fmt"
	"strings"

	"product-builder/core/barcode"
)

// Invalid barcode policies.
const (
	// OnInvalidAbort fails the whole build on the first invalid barcode.
	OnInvalidAbort = "abort"
	// OnInvalidSkip drops invalid barcodes and reports them.
	OnInvalidSkip = "skip"
)

// Config holds configuration for the product builder.
type Config struct {
	PendingSheet string `mapstructure:"pending_sheet" default:"Pending Barcodes"`
	PendingRange string `mapstructure:"pending_range" default:"A2:A"`
	ProductSheet string `mapstructure:"product_sheet" default:"Product Database"`
	// Normalization is the barcode strategy: upce or ean13.
	Normalization string `mapstructure:"normalization" default:"upce"`
	// OnInvalid is the invalid barcode policy: abort or skip.
	OnInvalid string `mapstructure:"on_invalid" default:"abort"`
	// Priority is the comma separated backend order used when merging.
	Priority string `mapstructure:"priority" default:"upcitemdb,barcodemonster,upcdatabase"`
}

// PriorityList returns the merge priority as backend names.
func (c Config) PriorityList() []string {
	var names []string
	for _, name := range strings.Split(c.Priority, ",") {
		if name = strings.ToLower(strings.TrimSpace(name)); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// Validate checks enumerations and required sheet names.
func (c Config) Validate() error {
	if _, err := barcode.NewNormalizer(barcode.Strategy(c.Normalization)); err != nil {
		return err
	}
	switch c.OnInvalid {
	case OnInvalidAbort, OnInvalidSkip:
	default:
		return fmt.Errorf("invalid on_invalid policy %q (must be %s or %s)", c.OnInvalid, OnInvalidAbort, OnInvalidSkip)
	}
	if c.PendingSheet == "" || c.ProductSheet == "" || c.PendingRange == "" {
		return fmt.Errorf("pending_sheet, pending_range and product_sheet are required")
	}
	if len(c.PriorityList()) == 0 {
		return fmt.Errorf("merge priority is empty")
	}
	return nil
}
