// Package products builds the product database from pending barcodes.
//
// A build reads the pending barcodes, normalizes them, resolves every code against all
// lookup backends and, only when every backend call succeeded, appends one reconciled row
// per barcode to the product sheet. Lookup runs the same resolution for ad-hoc codes
// without touching any sheet.
//
// Key components:
//   - Service: build and lookup pipelines.
//   - Handler: HTTP endpoints under /products.
//   - Feature: loader registration.
package products
