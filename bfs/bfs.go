// SPDX-License-Identifier: MIT

package bfs

import (
	"context"
	"fmt"
	"math"

	"github.com/katalvlaran/geograph/core"
)

// queueItem pairs a node index with its BFS depth.
type queueItem struct {
	idx   int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *core.Graph
	opts    Options
	ctx     context.Context
	queue   []queueItem
	visited []bool
	res     *Result
}

// BFS runs breadth-first search on g starting from start.
// Returns ErrGraphNil, ErrOptionViolation or ErrUnknownNode for invalid
// input, the context error on cancellation, or a wrapped OnVisit error.
func BFS(g *core.Graph, start string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	src, ok := g.Index(start)
	if !ok {
		return nil, fmt.Errorf("%w: start %q", ErrUnknownNode, start)
	}

	n := g.NodeCount()
	w := &walker{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, n),
		visited: make([]bool, n),
		res: &Result{
			Order:  make([]string, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
	}

	w.enqueue(src, 0, -1)

	return w.res, w.loop()
}

// enqueue marks idx visited at depth d, records its parent and calls OnEnqueue.
func (w *walker) enqueue(idx, d, parent int) {
	name := w.graph.NameAt(idx)
	w.visited[idx] = true
	w.res.Depth[name] = d
	if parent >= 0 {
		w.res.Parent[name] = w.graph.NameAt(parent)
	}
	w.opts.OnEnqueue(name, d)
	w.queue = append(w.queue, queueItem{idx: idx, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		w.enqueueNeighbors(item)
	}

	return nil
}

// dequeue pops the first item and invokes OnDequeue.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(w.graph.NameAt(item.idx), item.depth)

	return item
}

// visit records the node in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	name := w.graph.NameAt(item.idx)
	w.res.Order = append(w.res.Order, name)
	if err := w.opts.OnVisit(name, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %q: %w", name, err)
	}

	return nil
}

// enqueueNeighbors enqueues every unseen, passable, unfiltered successor
// within MaxDepth.
func (w *walker) enqueueNeighbors(item queueItem) {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return
	}
	curr := w.graph.NameAt(item.idx)
	for _, a := range w.graph.Arcs(item.idx) {
		if w.visited[a.To] || math.IsInf(a.Weight, 1) {
			continue
		}
		if !w.opts.FilterNeighbor(curr, w.graph.NameAt(a.To)) {
			continue
		}
		w.enqueue(a.To, next, item.idx)
	}
}
