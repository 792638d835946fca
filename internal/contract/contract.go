// Package contract holds configuration, validation and shared helpers used
// across the command layer and the pipeline.
package contract

import (
	"github.com/huangsam/surveyrank/schema"
)

// HistoryStore persists ranking runs for later inspection and export.
type HistoryStore interface {
	// RecordRun inserts one run row plus one row per ranked entry and
	// returns the new run id.
	RecordRun(run schema.RankingRunRecord, entries []schema.RankedEntry) (int64, error)

	// Status returns the stored run and entry counts.
	Status() (runs int64, entries int64, err error)

	// FetchRuns returns all stored runs, newest first.
	FetchRuns() ([]schema.RankingRunRecord, error)

	// FetchEntries returns all stored ranked entries across runs.
	FetchEntries() ([]schema.RankedEntryRecord, error)

	// Clear removes all stored runs and entries.
	Clear() error

	// Close releases the underlying database handle.
	Close() error
}
