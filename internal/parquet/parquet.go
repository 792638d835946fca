// Package parquet provides data structures and functions for exporting
// ranking data to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/huangsam/surveyrank/internal/contract"
	"github.com/huangsam/surveyrank/schema"
	"github.com/parquet-go/parquet-go"
)

// RankedEntryRow is a single ranked entry as emitted by the pipeline.
type RankedEntryRow struct {
	// Rank is the 1-based position in the ordering
	Rank int32 `parquet:"rank,snappy"`

	// Name is the course or program display name
	Name string `parquet:"name,snappy"`

	// MeanRating is the unweighted mean on the unified 1-5 scale
	MeanRating float64 `parquet:"mean_rating,snappy"`

	// ObservationCount is the number of observations behind the mean
	ObservationCount int32 `parquet:"observation_count,snappy"`

	// Label buckets the mean rating (Excellent/Good/Fair/Poor)
	Label string `parquet:"label,snappy"`
}

// RankingRun represents one stored pipeline run with metadata.
// This struct maps to the surveyrank_runs database table.
type RankingRun struct {
	// RunID is the unique identifier for this run
	RunID int64 `parquet:"run_id,snappy"`

	// RunTime is when the run happened (TIMESTAMP with nanosecond precision)
	RunTime time.Time `parquet:"run_time,snappy"`

	// SourceFile is the survey export the run was fed
	SourceFile string `parquet:"source_file,snappy"`

	// RespondentCount is the number of data rows in the source
	RespondentCount int32 `parquet:"respondent_count,snappy"`

	// EntryCount is the number of ranked entries the run produced
	EntryCount int32 `parquet:"entry_count,snappy"`

	// RunDurationMs is the duration of the run in milliseconds (nullable)
	RunDurationMs *int32 `parquet:"run_duration_ms,optional,snappy"`
}

// RankingHistoryEntry represents one ranked entry of a stored run.
// This struct maps to the surveyrank_entries database table.
type RankingHistoryEntry struct {
	// RunID references the parent run
	RunID int64 `parquet:"run_id,snappy"`

	// Rank is the 1-based position within the run
	Rank int32 `parquet:"rank,snappy"`

	// Name is the course or program display name
	Name string `parquet:"name,snappy"`

	// MeanRating is the unweighted mean on the unified 1-5 scale
	MeanRating float64 `parquet:"mean_rating,snappy"`

	// ObservationCount is the number of observations behind the mean
	ObservationCount int32 `parquet:"observation_count,snappy"`
}

// writeParquet writes any record slice to a Parquet file using struct
// schema inference from the record type's tags.
func writeParquet[T any](data []T, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	writer := parquet.NewGenericWriter[T](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// WriteRankedEntriesParquet writes a slice of RankedEntryRow structs to a
// Parquet file.
func WriteRankedEntriesParquet(data []RankedEntryRow, outputPath string) error {
	return writeParquet(data, outputPath)
}

// WriteRankingRunsParquet writes a slice of RankingRun structs to a
// Parquet file.
func WriteRankingRunsParquet(data []RankingRun, outputPath string) error {
	return writeParquet(data, outputPath)
}

// WriteRankingHistoryParquet writes a slice of RankingHistoryEntry structs
// to a Parquet file.
func WriteRankingHistoryParquet(data []RankingHistoryEntry, outputPath string) error {
	return writeParquet(data, outputPath)
}

// ConvertRankedEntries converts pipeline output to RankedEntryRow for
// Parquet export.
func ConvertRankedEntries(entries []schema.RankedEntry) []RankedEntryRow {
	result := make([]RankedEntryRow, len(entries))
	for i, e := range entries {
		result[i] = RankedEntryRow{
			Rank:             int32(i + 1),
			Name:             e.Name,
			MeanRating:       e.MeanRating,
			ObservationCount: int32(e.Count),
			Label:            contract.GetPlainLabel(e.MeanRating),
		}
	}
	return result
}

// ConvertRankingRunRecords converts schema.RankingRunRecord to RankingRun
// for Parquet export.
func ConvertRankingRunRecords(records []schema.RankingRunRecord) []RankingRun {
	result := make([]RankingRun, len(records))
	for i, record := range records {
		result[i] = RankingRun{
			RunID:           record.RunID,
			RunTime:         record.RunTime,
			SourceFile:      record.SourceFile,
			RespondentCount: record.RespondentCount,
			EntryCount:      record.EntryCount,
			RunDurationMs:   record.RunDurationMs,
		}
	}
	return result
}

// ConvertRankedEntryRecords converts schema.RankedEntryRecord to
// RankingHistoryEntry for Parquet export.
func ConvertRankedEntryRecords(records []schema.RankedEntryRecord) []RankingHistoryEntry {
	result := make([]RankingHistoryEntry, len(records))
	for i, record := range records {
		result[i] = RankingHistoryEntry{
			RunID:            record.RunID,
			Rank:             record.Rank,
			Name:             record.Name,
			MeanRating:       record.MeanRating,
			ObservationCount: record.ObservationCount,
		}
	}
	return result
}
