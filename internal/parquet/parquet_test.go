package parquet

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/huangsam/surveyrank/schema"
	"github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConvertRankedEntries tests rank assignment and labeling.
func TestConvertRankedEntries(t *testing.T) {
	rows := ConvertRankedEntries([]schema.RankedEntry{
		{Name: "Advanced Auditing", MeanRating: 4.8, Count: 12},
		{Name: "Career Services", MeanRating: 2.1, Count: 11},
	})

	require.Len(t, rows, 2)
	assert.Equal(t, int32(1), rows[0].Rank)
	assert.Equal(t, "Advanced Auditing", rows[0].Name)
	assert.Equal(t, "Excellent", rows[0].Label)
	assert.Equal(t, int32(2), rows[1].Rank)
	assert.Equal(t, "Poor", rows[1].Label)
	assert.Equal(t, int32(11), rows[1].ObservationCount)
}

// TestWriteRankedEntriesParquet tests a write/read round trip.
func TestWriteRankedEntriesParquet(t *testing.T) {
	rows := ConvertRankedEntries([]schema.RankedEntry{
		{Name: "Advanced Auditing", MeanRating: 4.8, Count: 12},
		{Name: "Data Analytics", MeanRating: 4.5, Count: 9},
	})

	path := filepath.Join(t.TempDir(), "rankings.parquet")
	require.NoError(t, WriteRankedEntriesParquet(rows, path))

	file, err := os.Open(path)
	require.NoError(t, err)
	defer func() { _ = file.Close() }()

	reader := parquet.NewGenericReader[RankedEntryRow](file)
	defer func() { _ = reader.Close() }()

	out := make([]RankedEntryRow, 2)
	n, err := reader.Read(out)
	if err != nil && err != io.EOF {
		require.NoError(t, err)
	}
	require.Equal(t, 2, n)
	assert.Equal(t, rows, out)
}

// TestConvertRankingRunRecords tests field mapping for run exports.
func TestConvertRankingRunRecords(t *testing.T) {
	duration := int32(42)
	now := time.Now()
	runs := ConvertRankingRunRecords([]schema.RankingRunRecord{
		{
			RunID:           7,
			RunTime:         now,
			SourceFile:      "survey.xlsx",
			RespondentCount: 25,
			EntryCount:      14,
			RunDurationMs:   &duration,
		},
	})

	require.Len(t, runs, 1)
	assert.Equal(t, int64(7), runs[0].RunID)
	assert.Equal(t, "survey.xlsx", runs[0].SourceFile)
	assert.Equal(t, int32(25), runs[0].RespondentCount)
	require.NotNil(t, runs[0].RunDurationMs)
	assert.Equal(t, int32(42), *runs[0].RunDurationMs)
}

// TestConvertRankedEntryRecords tests field mapping for entry exports.
func TestConvertRankedEntryRecords(t *testing.T) {
	entries := ConvertRankedEntryRecords([]schema.RankedEntryRecord{
		{RunID: 7, Rank: 1, Name: "Advanced Auditing", MeanRating: 4.8, ObservationCount: 12},
	})

	require.Len(t, entries, 1)
	assert.Equal(t, int64(7), entries[0].RunID)
	assert.Equal(t, int32(1), entries[0].Rank)
	assert.Equal(t, 4.8, entries[0].MeanRating)
}
