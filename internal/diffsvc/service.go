// Package diffsvc runs diff computations for callers that need more than the
// pure engine: cancellation, input size guards, result caching and tracing.
package diffsvc

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/RayLabsHQ/formatfuse-sub003/internal/cachemanager"
	"github.com/RayLabsHQ/formatfuse-sub003/internal/flags"
	"github.com/RayLabsHQ/formatfuse-sub003/internal/log"
	"github.com/RayLabsHQ/formatfuse-sub003/internal/textdiff"
	"github.com/RayLabsHQ/formatfuse-sub003/internal/tracing"
)

// Algorithm names reported in Result.Algorithm.
const (
	AlgorithmLCS   = "lcs"
	AlgorithmMyers = "myers"
)

// Request is one comparison.
type Request struct {
	Text1   string
	Text2   string
	Mode    textdiff.Mode
	Options textdiff.Options
}

// Result is the outcome of a comparison. Records may be shared with the
// cache and must not be modified.
type Result struct {
	ID        string
	Mode      textdiff.Mode
	Records   []textdiff.Record
	Stats     textdiff.Statistics
	Algorithm string
	Cached    bool
}

// Config holds service settings.
type Config struct {
	// Algorithm is "lcs" (default) or "myers".
	Algorithm string
	// MaxCells bounds the LCS table. Zero or less disables the guard.
	MaxCells int
	// CacheTTL is the lifetime of cached results.
	CacheTTL time.Duration
}

// Service computes diffs. It is safe for concurrent use.
type Service struct {
	cfg    Config
	flags  *flags.Registry
	tracer trace.Tracer
	cache  *cachemanager.ReadThroughCache[string, Result, Request]
	newID  func() string
}

// Option configures a Service.
type Option func(*Service)

// WithCache stores results in cache, keyed by a digest of the request.
func WithCache(cache cachemanager.CacheManager[string, Result]) Option {
	return func(s *Service) {
		s.cache = cachemanager.NewReadThroughCache(cache, s.compute, cache == nil)
	}
}

// WithFlags sets the feature flag registry.
func WithFlags(registry *flags.Registry) Option {
	return func(s *Service) {
		s.flags = registry
	}
}

// WithTracer sets the tracer used for computation spans.
func WithTracer(tracer trace.Tracer) Option {
	return func(s *Service) {
		if tracer != nil {
			s.tracer = tracer
		}
	}
}

// New creates a Service. Without WithCache every call computes.
func New(cfg Config, opts ...Option) *Service {
	s := &Service{
		cfg:    cfg,
		tracer: noop.NewTracerProvider().Tracer("noop"),
		newID:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.cache == nil {
		s.cache = cachemanager.NewReadThroughCache[string, Result, Request](nil, s.compute, true)
	}
	return s
}

// Compute diffs req. It returns ctx.Err() if ctx ends before the alignment
// finishes and an error wrapping ErrInputTooLarge when the size guard trips.
func (s *Service) Compute(ctx context.Context, req Request) (Result, error) {
	if req.Mode == textdiff.ModeWord {
		req.Options.IgnoreWhitespace = false
	}

	id := s.newID()
	ctx = tracing.ContextWithComputationID(ctx, id)

	ctx, span := s.tracer.Start(ctx, tracing.SpanCompute,
		trace.WithAttributes(
			attribute.String(tracing.AttrComputationID, id),
			attribute.String(tracing.AttrDiffMode, req.Mode.String()),
			attribute.Bool(tracing.AttrIgnoreCase, req.Options.IgnoreCase),
			attribute.Bool(tracing.AttrIgnoreSpace, req.Options.IgnoreWhitespace),
		),
	)
	defer span.End()

	key := cacheKey(req, s.cfg.Algorithm)

	var (
		res    Result
		cached bool
		err    error
	)
	if s.flags.Enabled(flags.FlagCacheRefresh) {
		res, cached, err = s.cache.GetWithRefresh(ctx, key, req, s.cfg.CacheTTL)
	} else {
		res, cached, err = s.cache.Get(ctx, key, req, s.cfg.CacheTTL)
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		log.Debug(log.CatEngine, "diff failed", "id", id, "error", err)
		return Result{}, err
	}

	res.ID = id
	res.Cached = cached

	span.SetAttributes(
		attribute.Bool(tracing.AttrCacheHit, cached),
		attribute.String(tracing.AttrDiffAlgorithm, res.Algorithm),
		attribute.Int(tracing.AttrAdditions, res.Stats.Additions),
		attribute.Int(tracing.AttrDeletions, res.Stats.Deletions),
		attribute.Int(tracing.AttrTotal, res.Stats.Total),
	)
	if cached {
		span.AddEvent(tracing.EventCacheHit)
	}
	span.SetStatus(codes.Ok, "")

	log.Debug(log.CatEngine, "diff computed",
		"id", id,
		"mode", res.Mode,
		"algorithm", res.Algorithm,
		"cached", cached,
		"additions", res.Stats.Additions,
		"deletions", res.Stats.Deletions,
		"total", res.Stats.Total)

	return res, nil
}

// compute is the cache loader. Errors are never cached.
func (s *Service) compute(ctx context.Context, req Request) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	_, tokSpan := s.tracer.Start(ctx, tracing.SpanTokenize)
	tokensA := textdiff.Tokenize(req.Text1, req.Mode, req.Options)
	tokensB := textdiff.Tokenize(req.Text2, req.Mode, req.Options)
	tokSpan.SetAttributes(
		attribute.Int(tracing.AttrTokensOld, len(tokensA)),
		attribute.Int(tracing.AttrTokensNew, len(tokensB)),
	)
	tokSpan.End()

	aligner, algorithm, err := s.chooseAligner(ctx, len(tokensA), len(tokensB))
	if err != nil {
		return Result{}, err
	}

	alignCtx, alignSpan := s.tracer.Start(ctx, tracing.SpanAlign,
		trace.WithAttributes(attribute.String(tracing.AttrDiffAlgorithm, algorithm)))
	defer alignSpan.End()

	done := make(chan []textdiff.Record, 1)
	go func() {
		actions := aligner.Align(textdiff.Keys(tokensA), textdiff.Keys(tokensB))
		done <- textdiff.Classify(actions, tokensA, tokensB, req.Mode)
	}()

	var records []textdiff.Record
	select {
	case <-alignCtx.Done():
		alignSpan.AddEvent(tracing.EventCanceled)
		alignSpan.SetStatus(codes.Error, alignCtx.Err().Error())
		log.Debug(log.CatEngine, "diff abandoned", "id", tracing.ComputationIDFromContext(ctx), "error", alignCtx.Err())
		return Result{}, alignCtx.Err()
	case records = <-done:
	}

	return Result{
		Mode:      req.Mode,
		Records:   records,
		Stats:     textdiff.ComputeStatistics(records),
		Algorithm: algorithm,
	}, nil
}

func (s *Service) chooseAligner(ctx context.Context, m, n int) (textdiff.Aligner, string, error) {
	if s.cfg.Algorithm == AlgorithmMyers {
		return textdiff.Myers, AlgorithmMyers, nil
	}

	cells := textdiff.LCSCells(m, n)
	if s.cfg.MaxCells <= 0 || cells <= s.cfg.MaxCells {
		return textdiff.LCS, AlgorithmLCS, nil
	}

	if s.flags.Enabled(flags.FlagMyersFallback) {
		trace.SpanFromContext(ctx).AddEvent(tracing.EventAlgorithmChanged,
			trace.WithAttributes(attribute.Int(tracing.AttrCells, cells)))
		log.Info(log.CatEngine, "LCS table too large, using myers", "cells", cells, "max_cells", s.cfg.MaxCells)
		return textdiff.Myers, AlgorithmMyers, nil
	}

	return nil, "", fmt.Errorf("%w: %d x %d tokens needs %d cells, limit is %d",
		ErrInputTooLarge, m, n, cells, s.cfg.MaxCells)
}

// cacheKey digests everything that determines a result.
func cacheKey(req Request, algorithm string) string {
	h := sha256.New()
	fmt.Fprintf(h, "%d:%s|%d:%s|%s|%t|%t|%s",
		len(req.Text1), req.Text1,
		len(req.Text2), req.Text2,
		req.Mode, req.Options.IgnoreCase, req.Options.IgnoreWhitespace,
		algorithm)
	return hex.EncodeToString(h.Sum(nil))
}
