package chart

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/huangsam/surveyrank/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestWrapLabel tests word wrapping for long course names.
func TestWrapLabel(t *testing.T) {
	tests := []struct {
		name  string
		input string
		width int
		want  string
	}{
		{"short name untouched", "Tax Research", 50, "Tax Research"},
		{"wraps at word boundary", "Advanced Financial Statement Auditing and Assurance", 25, "Advanced Financial\nStatement Auditing and\nAssurance"},
		{"single long word kept whole", "Antidisestablishmentarianism", 10, "Antidisestablishmentarianism"},
		{"empty stays empty", "", 50, ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, WrapLabel(tc.input, tc.width))
		})
	}

	t.Run("no line exceeds the width for normal words", func(t *testing.T) {
		wrapped := WrapLabel("one two three four five six seven eight nine ten", 12)
		for _, line := range strings.Split(wrapped, "\n") {
			assert.LessOrEqual(t, len(line), 12)
		}
	})
}

// TestRenderRankings tests PNG output end to end.
func TestRenderRankings(t *testing.T) {
	entries := []schema.RankedEntry{
		{Name: "Advanced Auditing", MeanRating: 4.8, Count: 12},
		{Name: "Data Analytics", MeanRating: 4.5, Count: 9},
		{Name: "Career Services", MeanRating: 2.1, Count: 11},
	}

	t.Run("writes a non-empty png", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out", "rankings.png")
		require.NoError(t, RenderRankings(entries, 25, path, 50))

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Greater(t, info.Size(), int64(0))
	})

	t.Run("empty ranking is an error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "rankings.png")
		require.Error(t, RenderRankings(nil, 0, path, 50))
	})
}
