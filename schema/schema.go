// Package schema has configs, models and constants for all parts of surveyrank.
package schema

// SurveyTable is the raw survey export after loading.
// Row 1 of the source supplies Headers, row 2 supplies QuestionTexts,
// row 3 (import metadata) is discarded by the loader, and the remaining
// rows become Rows. Cells are kept as strings until normalization.
type SurveyTable struct {
	SourcePath    string     // Path of the file the table was loaded from
	Headers       []string   // Raw column identifiers (e.g. Q35_1)
	QuestionTexts []string   // Full question text per column, aligned with Headers
	Rows          [][]string // One slice per respondent, aligned with Headers
}

// RespondentCount returns the number of data rows in the table.
func (t *SurveyTable) RespondentCount() int {
	return len(t.Rows)
}

// ColumnClass describes one classified survey column.
type ColumnClass struct {
	Index       int    // Column position in the source table
	Header      string // Raw column identifier
	Family      Family // Normalization family the column belongs to
	DisplayName string // Course or program name shown in output
}

// Classification is the explicit column-to-family table built once from the
// header row. Columns matching no family are absent from all three slices.
type Classification struct {
	Ranked    []ColumnClass
	Direct    []ColumnClass
	Agreement []ColumnClass
}

// Columns returns all classified columns in source order across families.
func (c *Classification) Columns() []ColumnClass {
	out := make([]ColumnClass, 0, len(c.Ranked)+len(c.Direct)+len(c.Agreement))
	out = append(out, c.Ranked...)
	out = append(out, c.Direct...)
	out = append(out, c.Agreement...)
	return out
}

// Observation is one respondent's normalized opinion of one course or
// program aspect. Rating is always on the unified 1-5 scale.
type Observation struct {
	Name   string
	Rating float64
}

// RankedEntry is one row of the final ranking. Rank is implied by position
// in the slice returned by the ranker.
type RankedEntry struct {
	Name       string  // Course or program display name
	MeanRating float64 // Unweighted mean of all observations for Name
	Count      int     // Number of observations behind the mean
}

// SkippedCell records one rejected cell for the run summary.
// Row is 1-based relative to the first data row.
type SkippedCell struct {
	Row    int
	Header string
	Value  string
	Reason string
}
