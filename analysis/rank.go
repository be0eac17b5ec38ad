package analysis

import (
	"sort"

	"github.com/chipflow/sdfkit/delay"
	"github.com/chipflow/sdfkit/timegraph"
)

// rankAll composes every path source → sink and attaches the scalar, in
// discovery order.
func rankAll(g *timegraph.Graph, source, sink string, corner delay.Corner, metric delay.Metric, o Options) ([]RankedPath, error) {
	paths, err := g.FindPaths(source, sink,
		timegraph.WithContext(o.Ctx),
		timegraph.WithMaxDepth(o.MaxDepth))
	if err != nil {
		return nil, err
	}
	out := make([]RankedPath, 0, len(paths))
	for _, p := range paths {
		total, err := g.ComposeDelay(p)
		if err != nil {
			return nil, err
		}
		scalar, ok := total.Scalar(corner, metric)
		out = append(out, RankedPath{
			Edges:      p,
			Delay:      total,
			Scalar:     scalar,
			Comparable: ok,
		})
	}
	return out, nil
}

// RankPaths returns every path source → sink ordered by the requested
// scalar, largest first (WithAscending flips). Paths whose composed
// delay lacks the scalar keep their discovery order at the tail. The
// sort is stable, so equal scalars keep discovery order too.
func RankPaths(g *timegraph.Graph, source, sink string, corner delay.Corner, metric delay.Metric, opts ...Option) ([]RankedPath, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	ranked, err := rankAll(g, source, sink, corner, metric, o)
	if err != nil {
		return nil, err
	}

	sortable := make([]RankedPath, 0, len(ranked))
	var tail []RankedPath
	for _, r := range ranked {
		if r.Comparable {
			sortable = append(sortable, r)
		} else {
			tail = append(tail, r)
		}
	}
	sort.SliceStable(sortable, func(i, j int) bool {
		if o.Ascending {
			return sortable[i].Scalar < sortable[j].Scalar
		}
		return sortable[i].Scalar > sortable[j].Scalar
	})
	return append(sortable, tail...), nil
}

// CriticalPath returns the comparable path with the largest scalar. A
// tie keeps the first-discovered path. ErrNoPath means the endpoints
// are not connected at all; ErrNoComparablePath means paths exist but
// none carries the scalar.
func CriticalPath(g *timegraph.Graph, source, sink string, corner delay.Corner, metric delay.Metric, opts ...Option) (RankedPath, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return RankedPath{}, err
	}
	ranked, err := rankAll(g, source, sink, corner, metric, o)
	if err != nil {
		return RankedPath{}, err
	}
	if len(ranked) == 0 {
		return RankedPath{}, ErrNoPath
	}

	best := RankedPath{}
	for _, r := range ranked {
		if !r.Comparable {
			continue
		}
		if !best.Comparable || r.Scalar > best.Scalar {
			best = r
		}
	}
	if !best.Comparable {
		return RankedPath{}, ErrNoComparablePath
	}
	return best, nil
}

// Slack returns period minus the critical scalar. Negative slack means
// the path misses the period. The sentinels of CriticalPath pass
// through unchanged.
func Slack(g *timegraph.Graph, source, sink string, period float64, corner delay.Corner, metric delay.Metric, opts ...Option) (float64, error) {
	critical, err := CriticalPath(g, source, sink, corner, metric, opts...)
	if err != nil {
		return 0, err
	}
	return period - critical.Scalar, nil
}
