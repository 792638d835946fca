package core

import (
	"testing"

	"github.com/huangsam/surveyrank/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRankEntries tests the deterministic ordering.
func TestRankEntries(t *testing.T) {
	entries := []schema.RankedEntry{
		{Name: "Tax Research", MeanRating: 3.2, Count: 10},
		{Name: "Advanced Auditing", MeanRating: 4.8, Count: 12},
		{Name: "Data Analytics", MeanRating: 4.8, Count: 9},
		{Name: "Career Services", MeanRating: 2.1, Count: 11},
	}

	t.Run("mean descending, name ascending on ties", func(t *testing.T) {
		ranked := RankEntries(entries, 0)
		require.Len(t, ranked, 4)
		assert.Equal(t, "Advanced Auditing", ranked[0].Name)
		assert.Equal(t, "Data Analytics", ranked[1].Name)
		assert.Equal(t, "Tax Research", ranked[2].Name)
		assert.Equal(t, "Career Services", ranked[3].Name)
	})

	t.Run("means never increase down the list", func(t *testing.T) {
		ranked := RankEntries(entries, 0)
		for i := 1; i < len(ranked); i++ {
			assert.LessOrEqual(t, ranked[i].MeanRating, ranked[i-1].MeanRating)
			if ranked[i].MeanRating == ranked[i-1].MeanRating {
				assert.LessOrEqual(t, ranked[i-1].Name, ranked[i].Name)
			}
		}
	})

	t.Run("rank and limit", func(t *testing.T) {
		ranked := RankEntries(entries, 2)
		require.Len(t, ranked, 2)
		assert.Equal(t, "Advanced Auditing", ranked[0].Name)
	})

	t.Run("limit exceeds length", func(t *testing.T) {
		ranked := RankEntries(entries, 10)
		assert.Len(t, ranked, 4)
	})
}
