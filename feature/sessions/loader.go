package sessions

import (
	"github.com/gofiber/fiber/v2"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	sweeper *Sweeper
	handler *Handler
}

// NewFeature creates a new sessions feature.
func NewFeature(sweeper *Sweeper) *Feature {
	return &Feature{sweeper: sweeper, handler: NewHandler(sweeper)}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "sessions"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return f.sweeper != nil
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
