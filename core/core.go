package core

import (
	"fmt"
	"time"

	"github.com/huangsam/surveyrank/internal/chart"
	"github.com/huangsam/surveyrank/internal/contract"
	"github.com/huangsam/surveyrank/internal/outwriter"
	"github.com/huangsam/surveyrank/internal/survey"
	"github.com/huangsam/surveyrank/schema"
)

// ExecuteSurveyRank runs the full pipeline: load, classify, reshape,
// aggregate, rank, then emit the ranking table and the bar chart. It is the
// entry point for the 'rank' command. Each stage passes an immutable value
// to the next; there is no shared state between stages and no retry on
// failure.
func ExecuteSurveyRank(cfg *contract.Config, store contract.HistoryStore) error {
	start := time.Now()

	table, err := survey.Load(cfg.SurveyPath, cfg.Sheet)
	if err != nil {
		return fmt.Errorf("cannot load survey: %w", err)
	}

	cls, err := Classify(table, cfg.Lenient, func(msg string) {
		contract.LogWarn(msg, nil)
	})
	if err != nil {
		return err
	}

	observations, skipped := Reshape(table, cls)
	if len(skipped) > 0 {
		if cfg.Strict {
			first := skipped[0]
			return fmt.Errorf("%d invalid cells, first at row %d column %s: %s",
				len(skipped), first.Row, first.Header, first.Reason)
		}
		warnSkipped(skipped)
	}

	entries := Aggregate(observations)
	if len(entries) == 0 {
		return fmt.Errorf("no valid observations in %s", cfg.SurveyPath)
	}
	ranked := RankEntries(entries, cfg.Limit)

	if err := outwriter.WriteRankings(ranked, table.RespondentCount(), cfg, time.Since(start)); err != nil {
		return err
	}

	if !cfg.NoChart {
		if err := chart.RenderRankings(ranked, table.RespondentCount(), cfg.ChartFile, cfg.LabelWrap); err != nil {
			return fmt.Errorf("cannot render chart: %w", err)
		}
	}

	if store != nil {
		if err := recordRun(store, cfg, table, ranked, time.Since(start)); err != nil {
			// History is an auxiliary artifact; a failed insert does not
			// invalidate the outputs already written.
			contract.LogWarn("could not record run history", err)
		}
	}

	return nil
}

// warnSkipped prints one summary warning plus per-cell detail for every
// rejected cell. Detail goes to stderr so table output stays clean.
func warnSkipped(skipped []schema.SkippedCell) {
	contract.LogWarn(fmt.Sprintf("skipped %d invalid cells", len(skipped)), nil)
	for _, cell := range skipped {
		contract.LogWarn(fmt.Sprintf("  row %d column %s value %q: %s",
			cell.Row, cell.Header, cell.Value, cell.Reason), nil)
	}
}

// recordRun persists one run and its ranked entries to the history store.
func recordRun(store contract.HistoryStore, cfg *contract.Config, table *schema.SurveyTable, ranked []schema.RankedEntry, duration time.Duration) error {
	durationMs := int32(duration.Milliseconds())
	run := schema.RankingRunRecord{
		RunTime:         time.Now(),
		SourceFile:      cfg.SurveyPath,
		RespondentCount: int32(table.RespondentCount()),
		EntryCount:      int32(len(ranked)),
		RunDurationMs:   &durationMs,
	}
	_, err := store.RecordRun(run, ranked)
	return err
}
