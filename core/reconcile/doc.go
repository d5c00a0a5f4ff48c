// Package reconcile merges the partial, sometimes conflicting answers of several product
// lookup backends into one authoritative record per barcode.
//
// # Architecture
//
// The package consists of four steps run in order:
//
// 1. Resolver: fans a batch of codes out to one batch-capable backend (a single request)
// and to every single-item backend (one request per code). Calls run concurrently with a
// bounded limit and a per-call timeout. Nothing is retried.
//
// 2. Aggregation: Resolution.AllSucceeded is true only when every call of every backend
// succeeded. Callers must not merge or write anything otherwise.
//
// 3. Merger: for each field the first backend in priority order that has a value wins.
// An empty string is a value; only a nil field is absent. Missing fields become NotFound.
// Every field is uppercased.
//
// 4. ToRows: formats records as [code, title, desc, brand] rows for the product sheet.
//
// # Adapters
//
// Backends implement BatchIdentifier or Identifier. A "not found" answer is a success with an
// empty Product; anything else the backend reports as an error wraps ErrBackendFailure.
// See feature/products/backends for the concrete adapters.
//
// # Usage Example
//
//	resolver := reconcile.NewResolver(batch, []reconcile.Identifier{a, b}, reconcile.ResolverOptions{
//	    Concurrency: 8,
//	    Timeout:     10 * time.Second,
//	})
//	res := resolver.ResolveAll(ctx, codes)
//	if !res.AllSucceeded() {
//	    return res.Failures()
//	}
//	records, _ := reconcile.NewMerger(priority).MergeAll(res, nil)
//	rows := reconcile.ToRows(records)
package reconcile
