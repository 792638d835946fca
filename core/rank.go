package core

import (
	"sort"

	"github.com/huangsam/surveyrank/schema"
)

// RankEntries sorts entries by mean rating in descending order, breaking
// ties by name in ascending case-sensitive code-point order, and returns
// the top 'limit' entries. A limit of zero or less returns all entries.
// The key is total once names are unique, so output order is deterministic.
func RankEntries(entries []schema.RankedEntry, limit int) []schema.RankedEntry {
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].MeanRating != entries[j].MeanRating {
			return entries[i].MeanRating > entries[j].MeanRating
		}
		return entries[i].Name < entries[j].Name
	})
	if limit > 0 && len(entries) > limit {
		return entries[:limit]
	}
	return entries
}
