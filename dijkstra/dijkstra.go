// SPDX-License-Identifier: MIT

package dijkstra

import (
	"container/heap"
	"fmt"
	"math"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/geograph/core"
)

const tracerName = "github.com/katalvlaran/geograph/dijkstra"

// Compute returns shortest distances and predecessors from source to every
// node of g.
//
// Preconditions and validation (in order):
//  1. Options must be valid (ErrBadMaxDistance, ErrBadInfThreshold).
//  2. g must be non-nil (ErrNilGraph).
//  3. source must be non-empty (ErrEmptySource).
//  4. g must contain source (ErrUnknownNode).
//
// Edge weights are validated by core.Graph on insertion, so no scan for
// negative weights is needed here.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Compute(g *core.Graph, source string, opts ...Option) (*Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	tp := cfg.TracerProvider
	if tp == nil {
		tp = otel.GetTracerProvider()
	}
	ctx, span := tp.Tracer(tracerName).Start(cfg.Ctx, "dijkstra.Compute",
		trace.WithAttributes(attribute.String("dijkstra.source", source)))
	defer span.End()
	cfg.Ctx = ctx

	res, err := compute(g, source, cfg)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(
		attribute.Int("dijkstra.nodes", res.stats.Nodes),
		attribute.Int("dijkstra.arcs", res.stats.Arcs),
		attribute.Int("dijkstra.settled", res.stats.Settled),
		attribute.Int("dijkstra.reached", res.stats.Reached),
	)

	return res, nil
}

func compute(g *core.Graph, source string, cfg Options) (*Result, error) {
	// 1) Validate inputs
	if cfg.err != nil {
		return nil, cfg.err
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	if source == "" {
		return nil, ErrEmptySource
	}
	src, ok := g.Index(source)
	if !ok {
		return nil, fmt.Errorf("%w: source %q", ErrUnknownNode, source)
	}

	// 2) Fresh per-run state sized to the current node count
	n := g.NodeCount()
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make([]float64, n),
		prev:    make([]int, n),
		pq:      make(nodePQ, 0, n),
		stats: SearchStats{
			Source: source,
			Nodes:  n,
			Arcs:   g.EdgeCount(),
		},
	}

	// 3) Run
	start := time.Now()
	r.init(src)
	if err := r.process(); err != nil {
		return nil, err
	}
	r.stats.Elapsed = time.Since(start)
	for _, d := range r.dist {
		if !math.IsInf(d, 1) {
			r.stats.Reached++
		}
	}

	cfg.Logger.Debug("dijkstra: search finished",
		"source", source,
		"nodes", r.stats.Nodes,
		"settled", r.stats.Settled,
		"stale", r.stats.Stale,
		"relaxed", r.stats.Relaxed,
		"reached", r.stats.Reached,
		"elapsed", r.stats.Elapsed)
	if cfg.Observer != nil {
		cfg.Observer.ObserveSearch(r.stats)
	}

	return &Result{
		g:      g,
		source: src,
		dist:   r.dist,
		prev:   r.prev,
		stats:  r.stats,
	}, nil
}

// runner holds the mutable state of a single search.
type runner struct {
	g       *core.Graph // read-only within the search
	options Options
	dist    []float64 // node index → best known distance
	prev    []int     // node index → predecessor index, -1 if none
	pq      nodePQ
	stats   SearchStats
}

// init sets every distance to +Inf and every predecessor to -1, then seeds
// the heap with the source at distance 0.
func (r *runner) init(src int) {
	for i := range r.dist {
		r.dist[i] = math.Inf(1)
		r.prev[i] = -1
	}
	r.dist[src] = 0

	heap.Init(&r.pq)
	heap.Push(&r.pq, nodeItem{idx: src, dist: 0})
}

// process pops the closest entry until the heap is empty. An entry whose
// distance is larger than the recorded one is stale and skipped.
func (r *runner) process() error {
	ctx := r.options.Ctx
	var item nodeItem
	for r.pq.Len() > 0 {
		item = heap.Pop(&r.pq).(nodeItem)

		if item.dist > r.dist[item.idx] {
			r.stats.Stale++
			continue
		}

		select {
		case <-ctx.Done():
			return fmt.Errorf("dijkstra: search from %q interrupted: %w", r.stats.Source, ctx.Err())
		default:
		}

		r.stats.Settled++
		r.relax(item.idx, item.dist)
	}

	return nil
}

// relax tries every outgoing arc of u, whose distance d is final.
func (r *runner) relax(u int, d float64) {
	var (
		a       core.Arc
		newDist float64
	)
	for _, a = range r.g.Arcs(u) {
		// Impassable arc; NaN never compares and would relax forever
		if a.Weight >= r.options.InfEdgeThreshold || math.IsNaN(a.Weight) {
			continue
		}

		newDist = d + a.Weight
		if newDist > r.options.MaxDistance {
			continue
		}
		// Strictly better only; equal distances keep the first predecessor found.
		if newDist >= r.dist[a.To] {
			continue
		}

		r.dist[a.To] = newDist
		r.prev[a.To] = u
		r.stats.Relaxed++
		heap.Push(&r.pq, nodeItem{idx: a.To, dist: newDist})
	}
}

// nodeItem is a heap entry: a node index and a tentative distance.
type nodeItem struct {
	idx  int
	dist float64
}

// nodePQ is a min-heap of nodeItem ordered by dist.
type nodePQ []nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by distance; ties are broken by node index for determinism.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].idx < pq[j].idx
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push is called by heap.Push; x must be a nodeItem.
func (pq *nodePQ) Push(x any) { *pq = append(*pq, x.(nodeItem)) }

// Pop is called by heap.Pop and removes the last element.
func (pq *nodePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
