package products

import (
	"context"
	"errors"

	"product-builder/core/reconcile"
)

func strPtr(s string) *string { return &s }

// memStore is an in-memory sheet.Store.
type memStore struct {
	pending   [][]string
	getErr    error
	appendErr error
	appended  [][]string
	gotSheet  string
	gotRange  string
	appends   int
}

func (m *memStore) Prepare(context.Context) error { return nil }

func (m *memStore) Get(_ context.Context, sheetName, rng string) ([][]string, error) {
	m.gotSheet, m.gotRange = sheetName, rng
	return m.pending, m.getErr
}

func (m *memStore) Records(context.Context, string) ([]map[string]string, error) {
	return nil, errors.New("not supported")
}

func (m *memStore) AppendRows(_ context.Context, _ string, rows [][]string) error {
	m.appends++
	if m.appendErr != nil {
		return m.appendErr
	}
	m.appended = append(m.appended, rows...)
	return nil
}

func (m *memStore) BatchClear(context.Context, string, []string) error { return nil }

// fakeBatch answers from a fixed catalog.
type fakeBatch struct {
	catalog map[string]reconcile.Product
	err     error
	seen    []string
}

func (f *fakeBatch) Name() string { return "upcitemdb" }

func (f *fakeBatch) IdentifyBatch(_ context.Context, codes []string) ([]reconcile.Product, error) {
	f.seen = append(f.seen, codes...)
	if f.err != nil {
		return nil, f.err
	}
	out := make([]reconcile.Product, len(codes))
	for i, c := range codes {
		out[i] = f.catalog[c]
		out[i].Code = c
	}
	return out, nil
}

// fakeSingle answers from a fixed catalog and fails for selected codes.
type fakeSingle struct {
	name    string
	catalog map[string]reconcile.Product
	failFor map[string]bool
}

func (f *fakeSingle) Name() string { return f.name }

func (f *fakeSingle) Identify(_ context.Context, code string) (reconcile.Product, error) {
	if f.failFor[code] {
		return reconcile.Product{}, errors.Join(reconcile.ErrBackendFailure, errors.New("boom"))
	}
	p := f.catalog[code]
	p.Code = code
	return p, nil
}

func newTestResolver(batch *fakeBatch, singles ...*fakeSingle) *reconcile.Resolver {
	ids := make([]reconcile.Identifier, 0, len(singles))
	for _, s := range singles {
		ids = append(ids, s)
	}
	return reconcile.NewResolver(batch, ids, reconcile.ResolverOptions{Concurrency: 4})
}

func testConfig() Config {
	return Config{
		PendingSheet:  "Pending Barcodes",
		PendingRange:  "A2:A",
		ProductSheet:  "Product Database",
		Normalization: "upce",
		OnInvalid:     OnInvalidAbort,
		Priority:      "upcitemdb,barcodemonster,upcdatabase",
	}
}
