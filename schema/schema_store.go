package schema

import "time"

// RankingRunRecord represents a single pipeline run with metadata.
// This struct maps to the surveyrank_runs database table.
type RankingRunRecord struct {
	RunID           int64
	RunTime         time.Time
	SourceFile      string
	RespondentCount int32
	EntryCount      int32
	RunDurationMs   *int32
}

// RankedEntryRecord represents one ranked entry stored for a run.
// This struct maps to the surveyrank_entries database table.
type RankedEntryRecord struct {
	RunID            int64
	Rank             int32
	Name             string
	MeanRating       float64
	ObservationCount int32
}
