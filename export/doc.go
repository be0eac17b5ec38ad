// Package export renders timing graphs in Graphviz DOT form.
//
// Nodes are emitted sorted and edges in build order, so output is
// deterministic. Edge labels carry the requested (corner, metric)
// scalar, "?" when absent. WithClusters groups pins into per-instance
// subgraphs; WithHighlight marks a path's edges red.
package export
