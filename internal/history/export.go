package history

import (
	"errors"
	"fmt"

	"github.com/huangsam/surveyrank/internal/contract"
	"github.com/huangsam/surveyrank/internal/parquet"
)

// ExecuteExport writes all stored runs and entries to a pair of Parquet
// files derived from outputFile.
func ExecuteExport(store contract.HistoryStore, outputFile string) error {
	if outputFile == "" {
		return errors.New("--output-file is required for export")
	}

	runs, entries, err := store.Status()
	if err != nil {
		return fmt.Errorf("failed to get history status: %w", err)
	}
	if runs == 0 {
		return errors.New("no run history found to export")
	}
	fmt.Printf("Exporting %d runs with %d entries...\n", runs, entries)

	runRecords, err := store.FetchRuns()
	if err != nil {
		return fmt.Errorf("failed to retrieve runs: %w", err)
	}
	entryRecords, err := store.FetchEntries()
	if err != nil {
		return fmt.Errorf("failed to retrieve entries: %w", err)
	}

	runsFile := outputFile + ".runs.parquet"
	if err := parquet.WriteRankingRunsParquet(parquet.ConvertRankingRunRecords(runRecords), runsFile); err != nil {
		return fmt.Errorf("failed to write runs: %w", err)
	}
	fmt.Printf("Exported %d runs to: %s\n", len(runRecords), runsFile)

	entriesFile := outputFile + ".entries.parquet"
	if err := parquet.WriteRankingHistoryParquet(parquet.ConvertRankedEntryRecords(entryRecords), entriesFile); err != nil {
		return fmt.Errorf("failed to write entries: %w", err)
	}
	fmt.Printf("Exported %d entries to: %s\n", len(entryRecords), entriesFile)

	return nil
}
