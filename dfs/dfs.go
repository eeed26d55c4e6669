// Package dfs implements depth-first search (single-source and forest) on core.Graph.
// It supports cancellation, pre- and post-order hooks, depth and neighbor limits,
// full-graph traversal, and diagnostics.
//
// Key features:
//   - DFS(g, start, opts...): traverse from a root or full forest via WithFullTraversal
//   - Hooks: OnVisit (pre-order) & OnExit (post-order) with error aborts
//   - Limits: MaxDepth, FilterNeighbor, SkippedNeighbors diagnostic count
//   - Cancellation via context.Context
//
// Complexity:
//
//   - Time:   O(V + E·log d) (neighbors are visited in sorted order).
//   - Memory: O(V) for the explicit frame stack and metadata maps.
//
// Errors:
//
//   - ErrGraphNil               if g is nil.
//   - ErrStartVertexNotFound    if start is missing (single-source mode).
//   - context.Canceled          if ctx is done.
//   - any error returned by OnVisit or OnExit.
package dfs

import (
	"cmp"
	"fmt"

	"github.com/katalvlaran/undigraph/core"
)

// frame is one entry of the explicit traversal stack: the vertex, its sorted
// neighbor snapshot, and the cursor of the next neighbor to examine.
type frame[V cmp.Ordered] struct {
	v     V
	nbrs  []V
	next  int
	depth int
}

// dfsWalker encapsulates state during DFS.
type dfsWalker[V cmp.Ordered] struct {
	graph *core.Graph[V] // underlying graph
	opts  Options[V]     // traversal options
	res   *Result[V]     // result collector
	stack []frame[V]     // explicit stack replacing recursion
}

// DFS performs depth-first search on graph g. If opts include WithFullTraversal,
// it covers all disconnected components (roots taken in Vertices() order);
// otherwise, it starts only from start.
// Returns Result or error if aborted by context or hook.
func DFS[V cmp.Ordered](g *core.Graph[V], start V, opts ...Option[V]) (*Result[V], error) {
	// 1. Validate input graph
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Apply options
	dopts := DefaultOptions[V]()
	for _, fn := range opts {
		fn(&dopts)
	}

	// 3. Single-source mode: verify start
	if !dopts.FullTraversal && !g.HasVertex(start) {
		return nil, ErrStartVertexNotFound
	}

	// 4. Initialize result with capacity hint
	n := g.Size()
	res := &Result[V]{
		Order:   make([]V, 0, n),
		Depth:   make(map[V]int, n),
		Parent:  make(map[V]V, n),
		Visited: make(map[V]bool, n),
	}
	walker := &dfsWalker[V]{graph: g, opts: dopts, res: res}

	// 5. Traverse: forest or single tree
	if dopts.FullTraversal {
		for _, v := range g.Vertices() {
			if res.Visited[v] {
				continue
			}
			if err := walker.traverse(v); err != nil {
				return res, err
			}
		}

		return res, nil
	}
	if err := walker.traverse(start); err != nil {
		return res, err
	}

	return res, nil
}

// traverse runs one DFS tree rooted at root using the explicit frame stack.
// Visitation order matches the recursive formulation: a child is fully
// explored before the next sibling is examined.
func (w *dfsWalker[V]) traverse(root V) error {
	if err := w.enter(root, 0); err != nil {
		return err
	}

	for len(w.stack) > 0 {
		top := &w.stack[len(w.stack)-1]

		// 1. Examine the next neighbor, if any remain.
		if top.next < len(top.nbrs) {
			nid := top.nbrs[top.next]
			top.next++

			// Skip self-loops smuggled in through FromAdjacency.
			if nid == top.v {
				continue
			}
			// Neighbor filtering
			if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(nid) {
				w.res.SkippedNeighbors++
				continue
			}
			if w.res.Visited[nid] {
				continue
			}
			// Depth limit: do not descend past MaxDepth
			depth := top.depth + 1
			if w.opts.MaxDepth >= 0 && depth > w.opts.MaxDepth {
				continue
			}
			w.res.Parent[nid] = top.v
			// enter may grow the stack, so top must not be used after this call.
			if err := w.enter(nid, depth); err != nil {
				return err
			}
			continue
		}

		// 2. All neighbors examined: pop and finish the vertex.
		id := top.v
		w.stack = w.stack[:len(w.stack)-1]
		if w.opts.OnExit != nil {
			if err := w.opts.OnExit(id); err != nil {
				w.res.Order = nil

				return fmt.Errorf("dfs: OnExit hook for %v: %w", id, err)
			}
		}
		w.res.Order = append(w.res.Order, id)
	}

	return nil
}

// enter discovers id: checks cancellation, records depth, fires OnVisit and
// pushes a frame holding the sorted neighbor snapshot.
func (w *dfsWalker[V]) enter(id V, depth int) error {
	// 1. Cancellation check
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	// 2. Mark visited and record depth
	w.res.Visited[id] = true
	w.res.Depth[id] = depth

	// 3. Pre-order hook
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(id); err != nil {
			w.res.Order = nil

			return fmt.Errorf("dfs: OnVisit hook for %v: %w", id, err)
		}
	}

	// 4. Push frame with the neighbor snapshot
	w.stack = append(w.stack, frame[V]{v: id, nbrs: w.graph.Neighbors(id), depth: depth})

	return nil
}
