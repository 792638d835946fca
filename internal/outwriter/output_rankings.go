package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/huangsam/surveyrank/internal/contract"
	"github.com/huangsam/surveyrank/internal/parquet"
	"github.com/huangsam/surveyrank/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// rankedEntryJSON is the JSON shape for one ranked entry.
type rankedEntryJSON struct {
	Rank       int     `json:"rank"`
	Name       string  `json:"name"`
	MeanRating float64 `json:"mean_rating"`
	Count      int     `json:"count"`
	Label      string  `json:"label"`
}

// WriteRankings outputs the ranking, dispatching based on the output format
// configured. The run summary goes to stderr so file artifacts stay
// deterministic across reruns.
func WriteRankings(entries []schema.RankedEntry, respondents int, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, intFmt := createFormatters(cfg.Precision)

	var err error
	switch cfg.Output {
	case schema.JSONOut:
		err = writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeRankingsJSON(w, entries)
		}, "Wrote JSON")
	case schema.CSVOut:
		err = writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeRankingsCSV(w, entries, fmtFloat, intFmt)
		}, "Wrote CSV")
	case schema.ParquetOut:
		err = writeRankingsParquet(entries, cfg)
	default:
		// Default to human-readable table
		err = writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeRankingsTable(w, entries, cfg, fmtFloat, intFmt)
		}, "Wrote table")
	}
	if err != nil {
		return fmt.Errorf("error writing %s output: %w", cfg.Output, err)
	}

	fmt.Fprintf(os.Stderr, "Ranked %d entries from %d respondents in %s\n",
		len(entries), respondents, duration.Round(time.Millisecond))
	return nil
}

// writeRankingsTable generates and writes the human-readable table.
func writeRankingsTable(w io.Writer, entries []schema.RankedEntry, cfg *contract.Config, fmtFloat func(float64) string, intFmt string) error {
	table := tablewriter.NewWriter(w)

	table.Header([]string{"Rank", "Name", "Mean", "Count", "Label"})
	table.Configure(func(tc *tablewriter.Config) {
		tc.Row.Alignment.Global = tw.AlignRight
	})

	nameWidth := GetMaxTableNameWidth(cfg)
	label := contract.GetPlainLabel
	if cfg.UseColors {
		label = contract.GetColorLabel
	}

	var data [][]string
	for i, e := range entries {
		data = append(data, []string{
			strconv.Itoa(i + 1),
			truncateName(e.Name, nameWidth),
			fmtFloat(e.MeanRating),
			fmt.Sprintf(intFmt, e.Count),
			label(e.MeanRating),
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

// writeRankingsCSV writes the ranking in CSV format. Columns mirror the
// table minus terminal coloring.
func writeRankingsCSV(w io.Writer, entries []schema.RankedEntry, fmtFloat func(float64) string, intFmt string) error {
	return writeCSVWithHeader(w, []string{"rank", "name", "mean_rating", "count", "label"}, func(cw *csv.Writer) error {
		for i, e := range entries {
			rec := []string{
				strconv.Itoa(i + 1),
				e.Name,
				fmtFloat(e.MeanRating),
				fmt.Sprintf(intFmt, e.Count),
				contract.GetPlainLabel(e.MeanRating),
			}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}

// writeRankingsJSON writes the ranking as an indented JSON array.
func writeRankingsJSON(w io.Writer, entries []schema.RankedEntry) error {
	out := make([]rankedEntryJSON, len(entries))
	for i, e := range entries {
		out[i] = rankedEntryJSON{
			Rank:       i + 1,
			Name:       e.Name,
			MeanRating: e.MeanRating,
			Count:      e.Count,
			Label:      contract.GetPlainLabel(e.MeanRating),
		}
	}
	return writeJSON(w, out)
}

// writeRankingsParquet writes the ranking to a parquet file. Parquet is a
// binary format, so a destination path is required.
func writeRankingsParquet(entries []schema.RankedEntry, cfg *contract.Config) error {
	if cfg.OutputFile == "" {
		return fmt.Errorf("parquet output requires --output-file")
	}
	rows := parquet.ConvertRankedEntries(entries)
	if err := parquet.WriteRankedEntriesParquet(rows, cfg.OutputFile); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Wrote parquet to %s\n", cfg.OutputFile)
	return nil
}
