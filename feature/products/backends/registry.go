package backends

import (
	"product-builder/core/reconcile"
)

// DefaultPriority is the merge order used when none is configured.
var DefaultPriority = []string{NameUPCItemDB, NameBarcodeMonster, NameUPCDatabase}

// NewResolver wires every backend into a resolver.
func NewResolver(cfg Config) *reconcile.Resolver {
	singles := []reconcile.Identifier{
		NewUPCDatabase(cfg),
		NewBarcodeMonster(cfg),
	}

	return reconcile.NewResolver(NewUPCItemDB(cfg), singles, reconcile.ResolverOptions{
		Concurrency: cfg.Concurrency,
		Timeout:     cfg.Timeout(),
	})
}
