package timegraph

import (
	"fmt"
	"sort"

	"github.com/chipflow/sdfkit/model"
)

// Graph is an immutable directed multigraph of qualified pins. Build it
// fresh from a File; it never observes later File mutations.
type Graph struct {
	edges []Edge           // deterministic build order
	out   map[string][]int // node → outgoing edge indices, build order
	in    map[string][]int // node → incoming edge indices, build order
	nodes []string         // sorted
}

// Build constructs the timing graph for f. It fails only when a delay
// entry is structurally incomplete; malformed topology is preserved
// as-is.
func Build(f *model.File) (*Graph, error) {
	g := &Graph{
		out: make(map[string][]int),
		in:  make(map[string][]int),
	}
	divider := f.Header.DividerOrDefault()

	// Pass 1: find pins carrying single-pin delay entries. Those pins
	// are split into :in/:out aliases so the port delay sits on the
	// path like any other edge.
	split := make(map[string]struct{})
	var walkErr error
	f.Walk(func(_, instance string, e *model.Entry) {
		if walkErr != nil || !isDelayArc(e.Kind) {
			return
		}
		if err := e.Validate(); err != nil {
			walkErr = fmt.Errorf("%w: %v", ErrMalformedEntry, err)
			return
		}
		if e.Kind == model.Port || e.Kind == model.Device {
			split[qualify(instance, e.From, divider)] = struct{}{}
		}
	})
	if walkErr != nil {
		return nil, walkErr
	}

	// Pass 2: add edges, re-pointing endpoints of split pins.
	f.Walk(func(cellType, instance string, e *model.Entry) {
		if !isDelayArc(e.Kind) {
			return
		}
		var source, sink string
		switch e.Kind {
		case model.Port, model.Device:
			pin := qualify(instance, e.From, divider)
			source, sink = pin+pinInSuffix, pin+pinOutSuffix
		case model.IOPath:
			source = fromSplit(split, qualify(instance, e.From, divider))
			sink = toSplit(split, qualify(instance, e.To, divider))
		default: // INTERCONNECT, PATHCONSTRAINT: pins already qualified
			source = fromSplit(split, e.From)
			sink = toSplit(split, e.To)
		}
		g.addEdge(Edge{
			Source:    source,
			Sink:      sink,
			Delay:     e.Delays,
			Kind:      e.Kind,
			CellType:  cellType,
			Instance:  instance,
			EntryName: e.Name,
		})
	})

	g.nodes = make([]string, 0, len(g.out))
	seen := make(map[string]struct{}, len(g.out)+len(g.in))
	for n := range g.out {
		seen[n] = struct{}{}
		g.nodes = append(g.nodes, n)
	}
	for n := range g.in {
		if _, ok := seen[n]; !ok {
			g.nodes = append(g.nodes, n)
		}
	}
	sort.Strings(g.nodes)

	return g, nil
}

// isDelayArc reports whether the kind contributes an edge to the graph.
func isDelayArc(k model.EntryKind) bool {
	switch k {
	case model.IOPath, model.Interconnect, model.Port, model.Device, model.PathConstraint:
		return true
	default:
		return false
	}
}

// qualify prefixes a local pin with its instance path. Interconnect pins
// arrive already qualified and bypass this.
func qualify(instance, pin, divider string) string {
	if instance == "" {
		return pin
	}
	return instance + divider + pin
}

// fromSplit redirects an edge source away from a split pin's out-side.
func fromSplit(split map[string]struct{}, pin string) string {
	if _, ok := split[pin]; ok {
		return pin + pinOutSuffix
	}
	return pin
}

// toSplit redirects an edge sink onto a split pin's in-side.
func toSplit(split map[string]struct{}, pin string) string {
	if _, ok := split[pin]; ok {
		return pin + pinInSuffix
	}
	return pin
}

func (g *Graph) addEdge(e Edge) {
	idx := len(g.edges)
	g.edges = append(g.edges, e)
	g.out[e.Source] = append(g.out[e.Source], idx)
	g.in[e.Sink] = append(g.in[e.Sink], idx)
}

// Nodes returns all qualified pin names in sorted order.
func (g *Graph) Nodes() []string {
	out := make([]string, len(g.nodes))
	copy(out, g.nodes)
	return out
}

// HasNode reports whether the pin exists in the graph.
func (g *Graph) HasNode(pin string) bool {
	if _, ok := g.out[pin]; ok {
		return true
	}
	_, ok := g.in[pin]
	return ok
}

// Edges returns every edge in deterministic build order.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)
	return out
}

// NodeCount returns the number of distinct pins.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of edges, parallel edges counted apart.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Startpoints returns pins with no incoming delay edge (primary inputs),
// sorted.
func (g *Graph) Startpoints() []string {
	var out []string
	for _, n := range g.nodes {
		if len(g.in[n]) == 0 {
			out = append(out, n)
		}
	}
	return out
}

// Endpoints returns pins with no outgoing delay edge (primary outputs),
// sorted.
func (g *Graph) Endpoints() []string {
	var out []string
	for _, n := range g.nodes {
		if len(g.out[n]) == 0 {
			out = append(out, n)
		}
	}
	return out
}

// Successors returns the outgoing edges of a pin in build order.
func (g *Graph) Successors(pin string) []Edge {
	return g.edgeSlice(g.out[pin])
}

// Predecessors returns the incoming edges of a pin in build order.
func (g *Graph) Predecessors(pin string) []Edge {
	return g.edgeSlice(g.in[pin])
}

func (g *Graph) edgeSlice(idxs []int) []Edge {
	out := make([]Edge, len(idxs))
	for i, idx := range idxs {
		out[i] = g.edges[idx]
	}
	return out
}
