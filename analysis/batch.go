package analysis

import (
	"errors"
	"sort"
	"sync"

	"github.com/chipflow/sdfkit/delay"
	"github.com/chipflow/sdfkit/timegraph"
)

// EndpointReport is the batch result for one (source, sink) pair that
// has at least one path.
type EndpointReport struct {
	// Source and Sink are the analyzed endpoints.
	Source, Sink string

	// Paths is the number of simple paths between them.
	Paths int

	// Critical is the ranked critical path. When Comparable is false it
	// holds the first-discovered path instead.
	Critical RankedPath

	// Comparable reports whether any path carried the requested scalar.
	Comparable bool
}

// BatchEndpoints analyzes every (startpoint, endpoint) pair, or the
// pins given via WithSources/WithSinks. Pairs with no path are omitted;
// pairs whose paths all lack the scalar are reported with
// Comparable=false rather than dropped. Comparable reports come first,
// critical delay descending; ties and the incomparable tail order by
// (source, sink). WithWorkers fans the searches out over n goroutines;
// the graph is immutable, so they share it without locking.
func BatchEndpoints(g *timegraph.Graph, corner delay.Corner, metric delay.Metric, opts ...Option) ([]EndpointReport, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	sources := o.Sources
	if len(sources) == 0 {
		sources = g.Startpoints()
	}
	sinks := o.Sinks
	if len(sinks) == 0 {
		sinks = g.Endpoints()
	}

	type pair struct{ source, sink string }
	var pairs []pair
	for _, s := range sources {
		for _, k := range sinks {
			if s != k {
				pairs = append(pairs, pair{s, k})
			}
		}
	}

	reports := make([]*EndpointReport, len(pairs))
	errs := make([]error, len(pairs))
	analyze := func(i int) {
		p := pairs[i]
		ranked, err := rankAll(g, p.source, p.sink, corner, metric, o)
		if err != nil {
			errs[i] = err
			return
		}
		if len(ranked) == 0 {
			return
		}
		r := EndpointReport{
			Source:   p.source,
			Sink:     p.sink,
			Paths:    len(ranked),
			Critical: ranked[0],
		}
		for _, candidate := range ranked {
			if !candidate.Comparable {
				continue
			}
			if !r.Comparable || candidate.Scalar > r.Critical.Scalar {
				r.Critical = candidate
				r.Comparable = true
			}
		}
		reports[i] = &r
	}

	if o.Workers <= 1 || len(pairs) <= 1 {
		for i := range pairs {
			analyze(i)
		}
	} else {
		jobs := make(chan int)
		var wg sync.WaitGroup
		for w := 0; w < o.Workers; w++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for i := range jobs {
					analyze(i)
				}
			}()
		}
		for i := range pairs {
			jobs <- i
		}
		close(jobs)
		wg.Wait()
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	var out []EndpointReport
	for _, r := range reports {
		if r != nil {
			out = append(out, *r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Comparable != b.Comparable {
			return a.Comparable
		}
		if a.Comparable && a.Critical.Scalar != b.Critical.Scalar {
			return a.Critical.Scalar > b.Critical.Scalar
		}
		if a.Source != b.Source {
			return a.Source < b.Source
		}
		return a.Sink < b.Sink
	})
	return out, nil
}
