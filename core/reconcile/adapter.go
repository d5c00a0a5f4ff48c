package reconcile

import "context"

// Backend is an external product lookup service.
type Backend interface {
	// Name returns the unique name of the backend (e.g., "upcitemdb").
	// It is the key used by merge priorities.
	Name() string
}

// BatchIdentifier looks up many codes with a single request.
type BatchIdentifier interface {
	Backend

	// IdentifyBatch returns one product per requested code, in the same order.
	// Codes the backend did not return yield a product with every field nil.
	// A backend-reported error fails the whole batch and returns an error wrapping
	// ErrBackendFailure.
	IdentifyBatch(ctx context.Context, codes []string) ([]Product, error)
}

// Identifier looks up one code per request.
type Identifier interface {
	Backend

	// Identify returns the product for code.
	// A "not found" answer is not an error: it yields a product with every field nil.
	// Any other backend-reported error, transport error or timeout returns an error
	// wrapping ErrBackendFailure.
	Identify(ctx context.Context, code string) (Product, error)
}
