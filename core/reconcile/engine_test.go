package reconcile

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

// mockBatch is a simple batch test backend.
type mockBatch struct {
	name     string
	products map[string]Product
	err      error
	calls    int32
	lookup   func(ctx context.Context, codes []string) ([]Product, error)
}

func (m *mockBatch) Name() string { return m.name }

func (m *mockBatch) IdentifyBatch(ctx context.Context, codes []string) ([]Product, error) {
	atomic.AddInt32(&m.calls, 1)
	if m.lookup != nil {
		return m.lookup(ctx, codes)
	}
	if m.err != nil {
		return nil, m.err
	}
	out := make([]Product, 0, len(codes))
	for _, code := range codes {
		if p, ok := m.products[code]; ok {
			out = append(out, p)
			continue
		}
		out = append(out, Product{Code: code})
	}
	return out, nil
}

// mockSingle is a simple single-item test backend.
type mockSingle struct {
	name     string
	products map[string]Product
	failFor  map[string]bool
	delay    time.Duration
	mu       sync.Mutex
	seen     []string
}

func (m *mockSingle) Name() string { return m.name }

func (m *mockSingle) Identify(ctx context.Context, code string) (Product, error) {
	m.mu.Lock()
	m.seen = append(m.seen, code)
	m.mu.Unlock()

	if m.delay > 0 {
		select {
		case <-time.After(m.delay):
		case <-ctx.Done():
			return Product{}, fmt.Errorf("%w: %v", ErrBackendFailure, ctx.Err())
		}
	}
	if m.failFor[code] {
		return Product{}, fmt.Errorf("%w: %s rejected %s", ErrBackendFailure, m.name, code)
	}
	if p, ok := m.products[code]; ok {
		return p, nil
	}
	return Product{Code: code}, nil
}

func TestResolveAll_CardinalityAndOrder(t *testing.T) {
	codes := []string{"111111111111", "222222222222", "333333333333"}

	batch := &mockBatch{name: "b1", products: map[string]Product{
		"222222222222": {Title: strPtr("Batch Two")},
	}}
	s2 := &mockSingle{name: "b2", products: map[string]Product{
		"111111111111": {Title: strPtr("Keyed One")},
	}}
	s3 := &mockSingle{name: "b3"}

	r := NewResolver(batch, []Identifier{s2, s3}, ResolverOptions{Concurrency: 2})
	res := r.ResolveAll(context.Background(), codes)

	require.True(t, res.AllSucceeded())
	assert.Empty(t, res.Failures())
	assert.Equal(t, []string{"b1", "b2", "b3"}, r.Backends())
	require.Len(t, res.Outcomes, 3)

	assert.Len(t, res.Outcomes[0].Statuses, 1)
	for _, out := range res.Outcomes {
		require.Len(t, out.Products, len(codes))
		for i, p := range out.Products {
			assert.Equal(t, codes[i], p.Code)
		}
	}
	assert.Len(t, res.Outcomes[1].Statuses, 3)
	assert.Equal(t, int32(1), batch.calls)
	assert.ElementsMatch(t, codes, s3.seen)
}

func TestResolveAll_FailClosed(t *testing.T) {
	codes := []string{"111111111111", "222222222222"}

	tests := []struct {
		name    string
		batch   *mockBatch
		single  *mockSingle
		backend string
	}{
		{
			name:    "batch failure",
			batch:   &mockBatch{name: "b1", err: fmt.Errorf("%w: code TOO_FAST", ErrBackendFailure)},
			single:  &mockSingle{name: "b2"},
			backend: "b1",
		},
		{
			name:    "one single-item failure",
			batch:   &mockBatch{name: "b1"},
			single:  &mockSingle{name: "b2", failFor: map[string]bool{"222222222222": true}},
			backend: "b2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := NewResolver(tt.batch, []Identifier{tt.single}, ResolverOptions{}).
				ResolveAll(context.Background(), codes)

			assert.False(t, res.AllSucceeded())
			failures := res.Failures()
			require.Len(t, failures, 1)
			assert.Equal(t, tt.backend, failures[0].Backend)

			records, err := NewMerger([]string{"b1", "b2"}).MergeAll(res, nil)
			assert.ErrorIs(t, err, ErrIncomplete)
			assert.Nil(t, records)
		})
	}
}

func TestResolveAll_BatchCardinalityMismatch(t *testing.T) {
	batch := &mockBatch{name: "b1", lookup: func(ctx context.Context, codes []string) ([]Product, error) {
		return []Product{{Code: codes[0]}}, nil
	}}

	res := NewResolver(batch, nil, ResolverOptions{}).
		ResolveAll(context.Background(), []string{"111111111111", "222222222222"})

	assert.False(t, res.AllSucceeded())
	assert.ErrorIs(t, res.Outcomes[0].Errors[0], ErrBackendFailure)
}

func TestResolveAll_TimeoutIsFailure(t *testing.T) {
	slow := &mockSingle{name: "slow", delay: time.Second}

	res := NewResolver(nil, []Identifier{slow}, ResolverOptions{Timeout: 10 * time.Millisecond}).
		ResolveAll(context.Background(), []string{"111111111111"})

	assert.False(t, res.AllSucceeded())
	assert.Equal(t, StatusFailure, res.Outcomes[0].Statuses[0])
	assert.True(t, res.Outcomes[0].Products[0].IsEmpty())
}

func TestResolveAll_DuplicatesShareOnlyWithinOneCall(t *testing.T) {
	backend := &mockSingle{name: "slow", delay: 100 * time.Millisecond}
	r := NewResolver(nil, []Identifier{backend}, ResolverOptions{})

	res := r.ResolveAll(context.Background(), []string{"111111111111", "111111111111"})
	require.True(t, res.AllSucceeded())
	assert.Len(t, backend.seen, 1)

	backend.seen = nil
	var wg sync.WaitGroup
	for range 2 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.ResolveAll(context.Background(), []string{"222222222222"})
		}()
	}
	wg.Wait()
	assert.Len(t, backend.seen, 2)
}

func TestResolution_Summaries(t *testing.T) {
	codes := []string{"111111111111", "222222222222"}
	batch := &mockBatch{name: "b1", products: map[string]Product{
		"111111111111": {Brand: strPtr("Acme")},
	}}
	single := &mockSingle{name: "b2", failFor: map[string]bool{"111111111111": true}}

	res := NewResolver(batch, []Identifier{single}, ResolverOptions{}).ResolveAll(context.Background(), codes)
	summaries := res.Summaries()

	require.Len(t, summaries, 2)
	assert.Equal(t, Summary{Backend: "b1", Calls: 1, Matches: 1, Succeeded: true}, summaries[0])
	assert.Equal(t, Summary{Backend: "b2", Calls: 2, Failures: 1, Succeeded: false}, summaries[1])
}

func TestStatus(t *testing.T) {
	assert.Equal(t, StatusSuccess, StatusOf(nil))
	assert.Equal(t, StatusFailure, StatusOf(ErrBackendFailure))
	assert.Equal(t, "success", StatusSuccess.String())

	text, err := StatusFailure.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "failure", string(text))
}
