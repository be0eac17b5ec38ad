package timegraph

import "github.com/chipflow/sdfkit/delay"

// pathWalker carries the state of one simple-path enumeration.
type pathWalker struct {
	g       *Graph
	opts    Options
	sink    string
	visited map[string]bool
	stack   []Edge
	found   [][]Edge
}

// FindPaths enumerates every simple path (each pin visited at most once)
// from source to sink, each path an ordered edge sequence. Parallel
// edges are explored individually, so two entries between the same pins
// yield two paths. A missing source or sink yields no paths, not an
// error; search order is deterministic for a given entry set.
func (g *Graph) FindPaths(source, sink string, opts ...Option) ([][]Edge, error) {
	wopts := DefaultOptions()
	for _, fn := range opts {
		fn(&wopts)
	}
	if wopts.err != nil {
		return nil, wopts.err
	}
	if !g.HasNode(source) || !g.HasNode(sink) || source == sink {
		return nil, nil
	}

	w := &pathWalker{
		g:       g,
		opts:    wopts,
		sink:    sink,
		visited: map[string]bool{source: true},
	}
	if err := w.walk(source); err != nil {
		return nil, err
	}
	return w.found, nil
}

// walk extends the current path from node, recording completions at the
// sink and backtracking for exhaustive enumeration.
func (w *pathWalker) walk(node string) error {
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	if w.opts.MaxDepth > 0 && len(w.stack) >= w.opts.MaxDepth {
		return nil
	}

	for _, idx := range w.g.out[node] {
		e := w.g.edges[idx]
		if e.Sink == w.sink {
			path := make([]Edge, len(w.stack)+1)
			copy(path, w.stack)
			path[len(w.stack)] = e
			w.found = append(w.found, path)
			continue
		}
		if w.visited[e.Sink] {
			continue
		}
		w.visited[e.Sink] = true
		w.stack = append(w.stack, e)
		if err := w.walk(e.Sink); err != nil {
			return err
		}
		w.stack = w.stack[:len(w.stack)-1]
		w.visited[e.Sink] = false
	}
	return nil
}

// ComposeDelay folds a path's edge delays left-to-right with DelayPaths
// addition: the total path delay per corner.
func (g *Graph) ComposeDelay(path []Edge) (delay.DelayPaths, error) {
	if len(path) == 0 {
		return nil, ErrEmptyPath
	}
	total := path[0].Delay.Clone()
	for _, e := range path[1:] {
		total = total.Add(e.Delay)
	}
	return total, nil
}

// Compose finds every path source → sink and returns the composed delay
// of each, in discovery order.
func (g *Graph) Compose(source, sink string, opts ...Option) ([]delay.DelayPaths, error) {
	paths, err := g.FindPaths(source, sink, opts...)
	if err != nil {
		return nil, err
	}
	out := make([]delay.DelayPaths, len(paths))
	for i, p := range paths {
		total, err := g.ComposeDelay(p)
		if err != nil {
			return nil, err
		}
		out[i] = total
	}
	return out, nil
}
