// Package planner is the query boundary of lvroute: it resolves user-facing
// inputs (algorithm aliases, free coordinates, location names) into a search
// over one frozen graph and returns a reconstructed route.
//
// A Planner is immutable after New and safe for concurrent use; every query
// runs synchronously on the caller's goroutine under its own deadline.
package planner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/nearest"
	"github.com/katalvlaran/lvroute/search"
)

// Options configures a Planner.
type Options struct {
	Logger           *slog.Logger
	DefaultAlgorithm string        // used when a query names no algorithm
	Timeout          time.Duration // per query; 0 disables
	MaxExpansions    int           // per query; 0 disables
	BatchConcurrency int           // FindPaths worker limit
}

// Option represents a functional option for configuring a Planner.
type Option func(*Options)

// DefaultOptions returns A* by default, a 5s timeout, no expansion budget and
// a batch limit of 8.
func DefaultOptions() Options {
	return Options{
		Logger:           slog.New(slog.NewTextHandler(io.Discard, nil)),
		DefaultAlgorithm: search.AStar.String(),
		Timeout:          5 * time.Second,
		BatchConcurrency: 8,
	}
}

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithDefaultAlgorithm sets the token used when a query leaves it empty.
func WithDefaultAlgorithm(token string) Option {
	return func(o *Options) { o.DefaultAlgorithm = token }
}

// WithTimeout bounds every query.
func WithTimeout(d time.Duration) Option {
	return func(o *Options) { o.Timeout = d }
}

// WithMaxExpansions caps expansions per query.
func WithMaxExpansions(n int) Option {
	return func(o *Options) { o.MaxExpansions = n }
}

// WithBatchConcurrency bounds the goroutines used by FindPaths. Values < 1 are
// treated as 1.
func WithBatchConcurrency(n int) Option {
	return func(o *Options) { o.BatchConcurrency = n }
}

// Planner answers route queries against one graph.
type Planner struct {
	g        *core.Graph
	resolver *nearest.Resolver
	opts     Options
	fallback search.Strategy
}

// Route is a reconstructed route plus the facts of the search that produced it.
type Route struct {
	search.Route
	Strategy search.Strategy
	Origin   string // location the route starts at, after snapping
	Expanded int
}

// New builds a planner over g. The nearest-location index is built here.
// Errors: ErrNilGraph; ErrInvalidAlgorithmToken for a bad default algorithm.
func New(g *core.Graph, opts ...Option) (*Planner, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.BatchConcurrency < 1 {
		cfg.BatchConcurrency = 1
	}
	fallback, err := ResolveAlgorithm(cfg.DefaultAlgorithm)
	if err != nil {
		return nil, fmt.Errorf("planner: default algorithm: %w", err)
	}

	return &Planner{
		g:        g,
		resolver: nearest.New(g),
		opts:     cfg,
		fallback: fallback,
	}, nil
}

// Graph returns the graph the planner searches.
func (p *Planner) Graph() *core.Graph { return p.g }

// ListImportantLocations returns the names of every important location,
// ordered by name.
func (p *Planner) ListImportantLocations() []string {
	locs := p.g.ImportantLocations()
	out := make([]string, len(locs))
	for i, l := range locs {
		out[i] = l.Name
	}

	return out
}

// ListSupportedAlgorithms returns the canonical strategy tokens.
func (p *Planner) ListSupportedAlgorithms() []string { return ListSupportedAlgorithms() }

// strategyFor resolves token, falling back to the default when it is blank.
func (p *Planner) strategyFor(token string) (search.Strategy, error) {
	if normalizeToken(token) == "" {
		return p.fallback, nil
	}

	return ResolveAlgorithm(token)
}

// resolveOrigin snaps coordinates and looks references up.
func (p *Planner) resolveOrigin(o Origin) (core.Location, error) {
	if o.IsPoint {
		loc, err := p.resolver.Nearest(o.Coordinate)
		if err != nil {
			return core.Location{}, fmt.Errorf("%w: %v", ErrMalformedOrigin, err)
		}

		return loc, nil
	}
	if o.Ref == "" {
		return core.Location{}, fmt.Errorf("%w: empty", ErrMalformedOrigin)
	}

	return p.g.Resolve(o.Ref)
}

// FindPath plans a route from origin to destination with the algorithm named
// by token (blank selects the configured default).
//
// Steps:
//  1. Resolve the algorithm token.
//  2. Resolve the origin (snap or look up) and the destination.
//  3. Run the search under the configured deadline and budget.
//  4. Reconstruct coordinates and distance.
//
// Errors: ErrInvalidAlgorithmToken, ErrMalformedOrigin,
// core.ErrUnknownLocation, search.ErrPathNotFound, search.ErrExpansionLimit
// and context errors, all wrapped.
func (p *Planner) FindPath(ctx context.Context, origin Origin, destination, token string) (*Route, error) {
	ctx, span := tracer.Start(ctx, "planner.FindPath",
		trace.WithAttributes(
			attribute.String("origin", origin.String()),
			attribute.String("destination", destination),
			attribute.String("algorithm", token),
		))
	defer span.End()

	started := time.Now()
	route, strategy, err := p.findPath(ctx, origin, destination, token)
	elapsed := time.Since(started)

	label := strategyLabel(strategy, err)
	queryTotal.WithLabelValues(label, resultOf(err)).Inc()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		p.opts.Logger.Warn("route query failed",
			slog.String("origin", origin.String()),
			slog.String("destination", destination),
			slog.String("algorithm", token),
			slog.Duration("duration", elapsed),
			slog.String("error", err.Error()),
		)

		return nil, err
	}

	queryDuration.WithLabelValues(label).Observe(elapsed.Seconds())
	queryExpansions.WithLabelValues(label).Observe(float64(route.Expanded))
	span.SetAttributes(
		attribute.String("strategy", label),
		attribute.Float64("distance", route.Distance),
		attribute.Int("expanded", route.Expanded),
	)
	span.SetStatus(codes.Ok, "")
	p.opts.Logger.Debug("route found",
		slog.String("origin", route.Origin),
		slog.String("destination", destination),
		slog.String("strategy", label),
		slog.Int("hops", len(route.LocationIDs)),
		slog.Float64("distance", route.Distance),
		slog.Int("expanded", route.Expanded),
		slog.Duration("duration", elapsed),
	)

	return route, nil
}

func (p *Planner) findPath(ctx context.Context, origin Origin, destination, token string) (*Route, search.Strategy, error) {
	// 1) Algorithm
	strategy, err := p.strategyFor(token)
	if err != nil {
		return nil, -1, err
	}

	// 2) Endpoints
	from, err := p.resolveOrigin(origin)
	if err != nil {
		return nil, strategy, err
	}
	to, err := p.g.Resolve(destination)
	if err != nil {
		return nil, strategy, fmt.Errorf("planner: destination: %w", err)
	}

	// 3) Search
	if p.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.opts.Timeout)
		defer cancel()
	}
	var sopts []search.Option
	if p.opts.MaxExpansions > 0 {
		sopts = append(sopts, search.WithMaxExpansions(p.opts.MaxExpansions))
	}
	res, err := search.Run(ctx, p.g, strategy, from.ID, to.ID, sopts...)
	if err != nil {
		return nil, strategy, err
	}

	// 4) Reconstruct
	r, err := search.Reconstruct(p.g, res, from.ID, to.ID)
	if err != nil {
		return nil, strategy, err
	}

	return &Route{Route: *r, Strategy: strategy, Origin: from.ID, Expanded: res.Expanded}, strategy, nil
}

func strategyLabel(s search.Strategy, err error) string {
	if errors.Is(err, ErrInvalidAlgorithmToken) {
		return "unknown"
	}

	return s.String()
}

func resultOf(err error) string {
	switch {
	case err == nil:
		return resultOK
	case errors.Is(err, search.ErrPathNotFound):
		return resultNotFound
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled),
		errors.Is(err, search.ErrExpansionLimit):
		return resultTimeout
	case errors.Is(err, ErrInvalidAlgorithmToken), errors.Is(err, ErrMalformedOrigin),
		errors.Is(err, core.ErrUnknownLocation):
		return resultInvalid
	default:
		return resultError
	}
}
