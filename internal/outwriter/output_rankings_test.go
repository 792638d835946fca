package outwriter

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/huangsam/surveyrank/internal/contract"
	"github.com/huangsam/surveyrank/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rankedFixture() []schema.RankedEntry {
	return []schema.RankedEntry{
		{Name: "Advanced Auditing", MeanRating: 4.8095, Count: 12},
		{Name: "Data Analytics", MeanRating: 4.5, Count: 9},
		{Name: "Career Services", MeanRating: 2.1, Count: 11},
	}
}

// TestWriteRankingsCSV tests the CSV row shape.
func TestWriteRankingsCSV(t *testing.T) {
	var buf bytes.Buffer
	fmtFloat, intFmt := createFormatters(2)
	require.NoError(t, writeRankingsCSV(&buf, rankedFixture(), fmtFloat, intFmt))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "rank,name,mean_rating,count,label", lines[0])
	assert.Equal(t, "1,Advanced Auditing,4.81,12,Excellent", lines[1])
	assert.Equal(t, "2,Data Analytics,4.50,9,Excellent", lines[2])
	assert.Equal(t, "3,Career Services,2.10,11,Poor", lines[3])
}

// TestWriteRankingsJSON tests the JSON array shape.
func TestWriteRankingsJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeRankingsJSON(&buf, rankedFixture()))

	var out []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	require.Len(t, out, 3)
	assert.Equal(t, float64(1), out[0]["rank"])
	assert.Equal(t, "Advanced Auditing", out[0]["name"])
	assert.Equal(t, "Excellent", out[0]["label"])
	assert.Equal(t, float64(9), out[1]["count"])
}

// TestWriteRankingsTable tests the human-readable table render.
func TestWriteRankingsTable(t *testing.T) {
	var buf bytes.Buffer
	cfg := &contract.Config{Precision: 2, Width: 120}
	fmtFloat, intFmt := createFormatters(cfg.Precision)
	require.NoError(t, writeRankingsTable(&buf, rankedFixture(), cfg, fmtFloat, intFmt))

	out := buf.String()
	assert.Contains(t, out, "Advanced Auditing")
	assert.Contains(t, out, "4.81")
	assert.Contains(t, out, "Poor")
	// Rank order preserved top to bottom
	assert.Less(t, strings.Index(out, "Advanced Auditing"), strings.Index(out, "Career Services"))
}

// TestTruncateName tests name shortening for narrow terminals.
func TestTruncateName(t *testing.T) {
	assert.Equal(t, "short", truncateName("short", 20))
	long := strings.Repeat("x", 30)
	got := truncateName(long, 20)
	assert.Len(t, got, 20)
	assert.True(t, strings.HasSuffix(got, "..."))

	t.Run("widths too narrow for an ellipsis", func(t *testing.T) {
		assert.Equal(t, "xxx", truncateName(long, 3))
		assert.Equal(t, "x", truncateName(long, 1))
		assert.Equal(t, "", truncateName(long, 0))
		assert.Equal(t, "", truncateName(long, -1))
	})
}

// TestGetMaxTableNameWidth tests width override handling.
func TestGetMaxTableNameWidth(t *testing.T) {
	t.Run("override respected", func(t *testing.T) {
		cfg := &contract.Config{Width: 120}
		assert.Equal(t, 70, GetMaxTableNameWidth(cfg))
	})

	t.Run("narrow terminals get the floor", func(t *testing.T) {
		cfg := &contract.Config{Width: 40}
		assert.Equal(t, 15, GetMaxTableNameWidth(cfg))
	})
}
