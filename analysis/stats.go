package analysis

import (
	"sort"

	"github.com/chipflow/sdfkit/delay"
	"github.com/chipflow/sdfkit/model"
)

// ScalarStats aggregates the (corner, metric) field over every entry
// that carries it. Min/Max/Mean/Median are meaningful only when
// Count > 0.
type ScalarStats struct {
	Count  int
	Min    float64
	Max    float64
	Mean   float64
	Median float64
}

// Stats summarizes one timing file.
type Stats struct {
	// CellTypes and Instances count distinct cell types and distinct
	// (cellType, instance) pairs.
	CellTypes int
	Instances int

	// Entries is the total entry count; ByKind breaks it down.
	Entries int
	ByKind  map[model.EntryKind]int

	// Scalars aggregates the requested delay field.
	Scalars ScalarStats
}

// Summarize computes entry counts and scalar aggregates for f. Entries
// whose delay lacks the (corner, metric) field contribute to the counts
// but not to the scalar aggregates.
func Summarize(f *model.File, corner delay.Corner, metric delay.Metric) Stats {
	s := Stats{ByKind: make(map[model.EntryKind]int)}

	s.CellTypes = len(f.Cells)
	instances := make(map[string]struct{})
	var scalars []float64
	f.Walk(func(ct, inst string, e *model.Entry) {
		instances[ct+"\x00"+inst] = struct{}{}
		s.Entries++
		s.ByKind[e.Kind]++
		if v, ok := e.Delays.Scalar(corner, metric); ok {
			scalars = append(scalars, v)
		}
	})
	s.Instances = len(instances)
	s.Scalars = summarizeScalars(scalars)
	return s
}

func summarizeScalars(xs []float64) ScalarStats {
	if len(xs) == 0 {
		return ScalarStats{}
	}
	sorted := append([]float64(nil), xs...)
	sort.Float64s(sorted)

	sum := 0.0
	for _, x := range sorted {
		sum += x
	}
	mid := len(sorted) / 2
	median := sorted[mid]
	if len(sorted)%2 == 0 {
		median = (sorted[mid-1] + sorted[mid]) / 2
	}
	return ScalarStats{
		Count:  len(sorted),
		Min:    sorted[0],
		Max:    sorted[len(sorted)-1],
		Mean:   sum / float64(len(sorted)),
		Median: median,
	}
}
