package reconcile

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

// ResolverOptions tunes how backend calls are scheduled.
type ResolverOptions struct {
	// Concurrency caps the number of in-flight backend calls. Zero or less means unbounded.
	Concurrency int

	// Timeout bounds every single backend call. Zero disables the per-call deadline.
	Timeout time.Duration
}

// Resolver fans a batch of codes out to every configured backend.
// It never retries: a failed call is recorded and left for the aggregation step.
type Resolver struct {
	batch   BatchIdentifier
	singles []Identifier
	opts    ResolverOptions
}

// NewResolver creates a resolver over one optional batch backend and any number of
// single-item backends.
func NewResolver(batch BatchIdentifier, singles []Identifier, opts ResolverOptions) *Resolver {
	return &Resolver{
		batch:   batch,
		singles: singles,
		opts:    opts,
	}
}

// Backends returns the names of every backend, batch backend first.
func (r *Resolver) Backends() []string {
	names := make([]string, 0, len(r.singles)+1)
	if r.batch != nil {
		names = append(names, r.batch.Name())
	}
	for _, s := range r.singles {
		names = append(names, s.Name())
	}
	return names
}

// ResolveAll queries every backend for codes: the batch backend once, each single-item
// backend once per code. Calls are independent and run concurrently up to the configured limit.
func (r *Resolver) ResolveAll(ctx context.Context, codes []string) *Resolution {
	res := &Resolution{Codes: codes}

	// Duplicate codes within this call share one request; separate calls never share.
	var sf singleflight.Group

	// Callbacks never return an error so one failure does not cancel the other calls.
	g, gctx := errgroup.WithContext(ctx)
	if r.opts.Concurrency > 0 {
		g.SetLimit(r.opts.Concurrency)
	}

	if r.batch != nil {
		out := &Outcome{
			Backend:  r.batch.Name(),
			Batch:    true,
			Statuses: make([]Status, 1),
			Errors:   make([]error, 1),
		}
		res.Outcomes = append(res.Outcomes, out)

		g.Go(func() error {
			products, err := r.callBatch(gctx, codes)
			out.Statuses[0] = StatusOf(err)
			out.Errors[0] = err
			if err == nil {
				out.Products = products
			}
			return nil
		})
	}

	for _, backend := range r.singles {
		out := &Outcome{
			Backend:  backend.Name(),
			Statuses: make([]Status, len(codes)),
			Products: make([]Product, len(codes)),
			Errors:   make([]error, len(codes)),
		}
		res.Outcomes = append(res.Outcomes, out)

		for i, code := range codes {
			g.Go(func() error {
				product, err := r.callSingle(gctx, &sf, backend, code)
				if err != nil {
					product = Product{Code: code}
				}
				out.Statuses[i] = StatusOf(err)
				out.Products[i] = product
				out.Errors[i] = err
				return nil
			})
		}
	}

	_ = g.Wait()

	return res
}

func (r *Resolver) callBatch(ctx context.Context, codes []string) ([]Product, error) {
	cctx, cancel := r.callContext(ctx)
	defer cancel()

	products, err := r.batch.IdentifyBatch(cctx, codes)
	if err != nil {
		return nil, err
	}
	if len(products) != len(codes) {
		return nil, fmt.Errorf("%w: %s returned %d products for %d codes",
			ErrBackendFailure, r.batch.Name(), len(products), len(codes))
	}
	for i := range products {
		products[i].Code = codes[i]
	}
	return products, nil
}

func (r *Resolver) callSingle(ctx context.Context, sf *singleflight.Group, backend Identifier, code string) (Product, error) {
	v, err, _ := sf.Do(backend.Name()+"|"+code, func() (any, error) {
		cctx, cancel := r.callContext(ctx)
		defer cancel()
		return backend.Identify(cctx, code)
	})
	if err != nil {
		return Product{}, err
	}

	product := v.(Product)
	product.Code = code
	return product, nil
}

func (r *Resolver) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if r.opts.Timeout > 0 {
		return context.WithTimeout(ctx, r.opts.Timeout)
	}
	return context.WithCancel(ctx)
}

// AllSucceeded reports whether every call to every backend succeeded.
// A single failure anywhere rejects the whole batch.
func (res *Resolution) AllSucceeded() bool {
	for _, out := range res.Outcomes {
		if !out.Succeeded() {
			return false
		}
	}
	return true
}

// Failures lists every failed call.
func (res *Resolution) Failures() []Failure {
	var failures []Failure
	for _, out := range res.Outcomes {
		for i, status := range out.Statuses {
			if status == StatusSuccess {
				continue
			}
			f := Failure{Backend: out.Backend}
			if !out.Batch && i < len(res.Codes) {
				f.Code = res.Codes[i]
			}
			if err := out.Errors[i]; err != nil {
				f.Reason = err.Error()
			}
			failures = append(failures, f)
		}
	}
	return failures
}

// Summaries returns per-backend call counts, in outcome order.
func (res *Resolution) Summaries() []Summary {
	summaries := make([]Summary, 0, len(res.Outcomes))
	for _, out := range res.Outcomes {
		s := Summary{
			Backend:   out.Backend,
			Calls:     len(out.Statuses),
			Succeeded: out.Succeeded(),
		}
		for _, status := range out.Statuses {
			if status == StatusFailure {
				s.Failures++
			}
		}
		for _, p := range out.Products {
			if !p.IsEmpty() {
				s.Matches++
			}
		}
		summaries = append(summaries, s)
	}
	return summaries
}

// Candidates returns each backend's product for the code at index i.
// Backends without a product for that position are left out.
func (res *Resolution) Candidates(i int) map[string]Product {
	candidates := make(map[string]Product, len(res.Outcomes))
	for _, out := range res.Outcomes {
		if i < len(out.Products) {
			candidates[out.Backend] = out.Products[i]
		}
	}
	return candidates
}
