// SPDX-License-Identifier: MIT

package dijkstra

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"time"

	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/geograph/core"
)

// Sentinel errors returned by Compute and ShortestPath.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrEmptySource indicates that the source name is empty.
	ErrEmptySource = errors.New("dijkstra: source node name is empty")

	// ErrUnknownNode is core.ErrUnknownNode, so callers can match either.
	ErrUnknownNode = core.ErrUnknownNode

	// ErrBadMaxDistance indicates a negative or NaN MaxDistance.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates an InfEdgeThreshold that is not positive.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Options configures a search.
//
// MaxDistance      – nodes whose distance would exceed it are not settled. Default +Inf.
// InfEdgeThreshold – arcs with weight ≥ it are impassable. Default +Inf, which still
// skips arcs of infinite weight.
type Options struct {
	MaxDistance      float64
	InfEdgeThreshold float64

	Ctx            context.Context
	Logger         *slog.Logger
	Observer       Observer
	TracerProvider trace.TracerProvider

	// first invalid option value, surfaced by Compute
	err error
}

// Option is a functional option for Compute and ShortestPath.
type Option func(*Options)

// DefaultOptions returns the options used when none are given.
func DefaultOptions() Options {
	return Options{
		MaxDistance:      math.Inf(1),
		InfEdgeThreshold: math.Inf(1),
		Ctx:              context.Background(),
		Logger:           slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithMaxDistance stops the search from settling nodes farther than max.
// A negative or NaN max makes Compute return ErrBadMaxDistance.
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		if max < 0 || math.IsNaN(max) {
			o.setErr(fmt.Errorf("%w: got %g", ErrBadMaxDistance, max))
			return
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold treats arcs with weight ≥ threshold as absent.
// A threshold ≤ 0 or NaN makes Compute return ErrBadInfThreshold.
func WithInfEdgeThreshold(threshold float64) Option {
	return func(o *Options) {
		if !(threshold > 0) {
			o.setErr(fmt.Errorf("%w: got %g", ErrBadInfThreshold, threshold))
			return
		}
		o.InfEdgeThreshold = threshold
	}
}

// WithContext sets a context for cancellation. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithLogger sets the logger for per-search debug records. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithObserver registers an observer notified after every successful search.
func WithObserver(obs Observer) Option {
	return func(o *Options) { o.Observer = obs }
}

// WithTracerProvider sets the OpenTelemetry tracer provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(o *Options) { o.TracerProvider = tp }
}

func (o *Options) setErr(err error) {
	if o.err == nil {
		o.err = err
	}
}

// SearchStats describes one completed search.
type SearchStats struct {
	Source string
	Nodes  int
	Arcs   int

	// Settled counts heap entries accepted as final distances.
	Settled int
	// Stale counts heap entries discarded because a shorter distance was known.
	Stale int
	// Relaxed counts arcs that improved a tentative distance.
	Relaxed int
	// Reached counts nodes with a finite distance, the source included.
	Reached int

	Elapsed time.Duration
}

// Observer receives statistics for every successful search.
type Observer interface {
	ObserveSearch(SearchStats)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(SearchStats)

// ObserveSearch calls f(s).
func (f ObserverFunc) ObserveSearch(s SearchStats) { f(s) }
