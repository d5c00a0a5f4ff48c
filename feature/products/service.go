package products

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"product-builder/core/barcode"
	"product-builder/core/reconcile"
	"product-builder/core/sheet"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Source placeholder values that are never treated as barcodes.
const notAvailable = "#N/A"

var (
	// ErrSourceEmpty is returned when the pending sheet holds no usable barcodes.
	ErrSourceEmpty = errors.New("no pending barcodes")

	// ErrSinkWrite is returned when the product sheet could not be written.
	ErrSinkWrite = errors.New("failed to write product rows")
)

// Resolver queries every backend for a batch of codes.
type Resolver interface {
	ResolveAll(ctx context.Context, codes []string) *reconcile.Resolution
	Backends() []string
}

// BuildOptions tunes a single build.
type BuildOptions struct {
	// DryRun resolves and merges without writing the product sheet.
	DryRun bool
}

// Skipped is a pending value dropped by the skip policy.
type Skipped struct {
	Value  string `json:"value"`
	Reason string `json:"reason"`
}

// Report describes one build.
type Report struct {
	RunID     string                   `json:"run_id"`
	StartedAt time.Time                `json:"started_at"`
	Duration  string                   `json:"duration"`
	DryRun    bool                     `json:"dry_run"`
	Pending   int                      `json:"pending"`
	Resolved  int                      `json:"resolved"`
	Written   int                      `json:"written"`
	Skipped   []Skipped                `json:"skipped,omitempty"`
	Backends  []reconcile.Summary      `json:"backends"`
	Failures  []reconcile.Failure      `json:"failures,omitempty"`
	Records   []reconcile.MergedRecord `json:"records"`
}

// Service runs the product pipelines.
type Service struct {
	cfg        Config
	store      sheet.Store
	resolver   Resolver
	normalizer *barcode.Normalizer
	merger     *reconcile.Merger
	logger     *zap.Logger
}

// NewService creates a new product service. Every backend named in the merge priority
// must be known to the resolver.
func NewService(cfg Config, store sheet.Store, resolver Resolver, logger *zap.Logger) (*Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	normalizer, err := barcode.NewNormalizer(barcode.Strategy(cfg.Normalization))
	if err != nil {
		return nil, err
	}

	known := resolver.Backends()
	priority := cfg.PriorityList()
	for _, name := range priority {
		if !slices.Contains(known, name) {
			return nil, fmt.Errorf("merge priority names unknown backend %q (known: %s)", name, strings.Join(known, ", "))
		}
	}
	for _, name := range known {
		if !slices.Contains(priority, name) {
			logger.Warn("Backend is queried but never merged", zap.String("backend", name))
		}
	}

	return &Service{
		cfg:        cfg,
		store:      store,
		resolver:   resolver,
		normalizer: normalizer,
		merger:     reconcile.NewMerger(priority),
		logger:     logger,
	}, nil
}

// Build reads the pending barcodes, reconciles them and appends the rows to the product sheet.
// Nothing is written unless every backend call succeeded. On backend failure the partial report
// is returned together with the error.
func (s *Service) Build(ctx context.Context, opts BuildOptions) (*Report, error) {
	report := &Report{
		RunID:     uuid.NewString(),
		StartedAt: time.Now(),
		DryRun:    opts.DryRun,
	}
	l := s.logger.With(zap.String("run_id", report.RunID))
	defer func() {
		report.Duration = time.Since(report.StartedAt).String()
	}()

	pending, err := s.pending(ctx)
	if err != nil {
		return nil, err
	}
	report.Pending = len(pending)
	if len(pending) == 0 {
		return nil, ErrSourceEmpty
	}

	rowCodes := make([]string, 0, len(pending))
	codes := make([]string, 0, len(pending))
	for _, raw := range pending {
		code, err := s.normalizer.ToCanonical(raw)
		if err != nil {
			if s.cfg.OnInvalid != OnInvalidSkip {
				return nil, err
			}
			l.Warn("Skipping invalid barcode", zap.String("value", raw), zap.Error(err))
			report.Skipped = append(report.Skipped, Skipped{Value: raw, Reason: err.Error()})
			continue
		}
		rowCodes = append(rowCodes, raw)
		codes = append(codes, code)
	}
	if len(codes) == 0 {
		return nil, fmt.Errorf("%w: all %d pending values are invalid", ErrSourceEmpty, len(pending))
	}
	report.Resolved = len(codes)

	l.Info("Resolving barcodes",
		zap.Int("pending", report.Pending),
		zap.Int("skipped", len(report.Skipped)),
		zap.Strings("backends", s.resolver.Backends()),
	)

	res := s.resolver.ResolveAll(ctx, codes)
	report.Backends = res.Summaries()
	if !res.AllSucceeded() {
		report.Failures = res.Failures()
		for _, f := range report.Failures {
			l.Error("Backend call failed", zap.String("backend", f.Backend), zap.String("code", f.Code), zap.String("reason", f.Reason))
		}
		return report, fmt.Errorf("%w: %d failed calls, nothing written", reconcile.ErrBackendFailure, len(report.Failures))
	}

	records, err := s.merger.MergeAll(res, rowCodes)
	if err != nil {
		return report, err
	}
	report.Records = records

	if opts.DryRun {
		l.Info("Dry run, skipping write", zap.Int("records", len(records)))
		return report, nil
	}

	if err := s.store.AppendRows(ctx, s.cfg.ProductSheet, reconcile.ToRows(records)); err != nil {
		return report, fmt.Errorf("%w: %w", ErrSinkWrite, err)
	}
	report.Written = len(records)

	l.Info("Build completed", zap.Int("written", report.Written))
	return report, nil
}

// Lookup resolves and merges codes without reading or writing any sheet.
func (s *Service) Lookup(ctx context.Context, raws []string) ([]reconcile.MergedRecord, error) {
	if len(raws) == 0 {
		return nil, ErrSourceEmpty
	}

	codes := make([]string, len(raws))
	for i, raw := range raws {
		code, err := s.normalizer.ToCanonical(raw)
		if err != nil {
			return nil, err
		}
		codes[i] = code
	}

	res := s.resolver.ResolveAll(ctx, codes)
	if !res.AllSucceeded() {
		failures := res.Failures()
		reasons := make([]string, 0, len(failures))
		for _, f := range failures {
			reasons = append(reasons, f.Backend+": "+f.Reason)
		}
		return nil, fmt.Errorf("%w: %s", reconcile.ErrBackendFailure, strings.Join(reasons, "; "))
	}

	return s.merger.MergeAll(res, raws)
}

// pending returns the non-blank pending values in sheet order.
func (s *Service) pending(ctx context.Context) ([]string, error) {
	grid, err := s.store.Get(ctx, s.cfg.PendingSheet, s.cfg.PendingRange)
	if err != nil {
		return nil, fmt.Errorf("failed to read pending barcodes: %w", err)
	}

	var values []string
	for _, row := range grid {
		for _, cell := range row {
			v := strings.TrimSpace(cell)
			if v == "" || v == notAvailable {
				continue
			}
			values = append(values, v)
		}
	}
	return values, nil
}
