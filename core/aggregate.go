package core

import (
	"github.com/huangsam/surveyrank/schema"
)

// Aggregate groups observations by name and computes the unweighted mean
// rating per group. Names with zero observations never appear, so no entry
// can carry a NaN or zero-mean artifact. Absent cells were already excluded
// upstream; absence is never treated as a zero rating.
func Aggregate(observations []schema.Observation) []schema.RankedEntry {
	sums := make(map[string]float64)
	counts := make(map[string]int)

	for _, obs := range observations {
		sums[obs.Name] += obs.Rating
		counts[obs.Name]++
	}

	entries := make([]schema.RankedEntry, 0, len(sums))
	for name, sum := range sums {
		count := counts[name]
		entries = append(entries, schema.RankedEntry{
			Name:       name,
			MeanRating: sum / float64(count),
			Count:      count,
		})
	}
	return entries
}
