package export

import (
	"fmt"
	"sort"
	"strings"

	"github.com/chipflow/sdfkit/delay"
	"github.com/chipflow/sdfkit/timegraph"
)

// Option configures the DOT rendering.
type Option func(*Options)

// Options holds the rendering parameters.
type Options struct {
	// Highlight marks these edges red with a heavy pen.
	Highlight []timegraph.Edge

	// Clusters groups pins into per-instance subgraphs.
	Clusters bool
}

// DefaultOptions returns the rendering defaults: no highlight, flat
// node list.
func DefaultOptions() Options { return Options{} }

// WithHighlight marks the edges of one path.
func WithHighlight(path []timegraph.Edge) Option {
	return func(o *Options) {
		o.Highlight = append([]timegraph.Edge(nil), path...)
	}
}

// WithClusters groups pins into per-instance subgraphs.
func WithClusters() Option {
	return func(o *Options) { o.Clusters = true }
}

// ToDOT renders g as a DOT digraph with (corner, metric) edge labels.
func ToDOT(g *timegraph.Graph, corner delay.Corner, metric delay.Metric, opts ...Option) string {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	highlighted := make(map[[2]string]struct{}, len(o.Highlight))
	for _, e := range o.Highlight {
		highlighted[[2]string{e.Source, e.Sink}] = struct{}{}
	}

	var b strings.Builder
	b.WriteString("digraph timing {\n")
	b.WriteString("  rankdir=LR;\n")

	nodes := g.Nodes()
	if o.Clusters {
		writeClusters(&b, nodes)
	} else {
		for _, n := range nodes {
			fmt.Fprintf(&b, "  %q;\n", n)
		}
	}

	for _, e := range g.Edges() {
		label := "?"
		if v, ok := e.Delay.Scalar(corner, metric); ok {
			label = fmt.Sprintf("%.3f", v)
		}
		attrs := fmt.Sprintf("label=%q", label)
		if _, ok := highlighted[[2]string{e.Source, e.Sink}]; ok {
			attrs += `, color="red", penwidth=2.0`
		}
		fmt.Fprintf(&b, "  %q -> %q [%s];\n", e.Source, e.Sink, attrs)
	}

	b.WriteString("}\n")
	return b.String()
}

// writeClusters groups nodes by the instance prefix before the last
// hierarchy divider; bare pins land in a "(top)" cluster.
func writeClusters(b *strings.Builder, nodes []string) {
	clusters := make(map[string][]string)
	for _, n := range nodes {
		instance := ""
		if i := strings.LastIndex(n, "/"); i >= 0 {
			instance = n[:i]
		}
		clusters[instance] = append(clusters[instance], n)
	}
	names := make([]string, 0, len(clusters))
	for name := range clusters {
		names = append(names, name)
	}
	sort.Strings(names)

	for i, name := range names {
		label := name
		if label == "" {
			label = "(top)"
		}
		fmt.Fprintf(b, "  subgraph cluster_%d {\n", i)
		fmt.Fprintf(b, "    label=%q;\n", label)
		for _, n := range clusters[name] {
			fmt.Fprintf(b, "    %q;\n", n)
		}
		fmt.Fprintf(b, "  }\n")
	}
}
