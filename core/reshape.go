package core

import (
	"github.com/huangsam/surveyrank/schema"
)

// Reshape converts the wide table into long form: one Observation per
// (respondent, classified column) pair with a non-blank valid cell.
// Invalid cells are rejected individually and returned for the run summary;
// blank cells are skipped silently.
func Reshape(table *schema.SurveyTable, cls *schema.Classification) ([]schema.Observation, []schema.SkippedCell) {
	columns := cls.Columns()
	observations := make([]schema.Observation, 0, len(table.Rows)*len(columns))
	var skipped []schema.SkippedCell

	for rowIdx, row := range table.Rows {
		for _, col := range columns {
			if col.Index >= len(row) {
				continue
			}
			rating, ok, err := normalizeCell(col.Family, row[col.Index])
			if err != nil {
				skipped = append(skipped, schema.SkippedCell{
					Row:    rowIdx + 1,
					Header: col.Header,
					Value:  row[col.Index],
					Reason: err.Error(),
				})
				continue
			}
			if !ok {
				continue
			}
			observations = append(observations, schema.Observation{
				Name:   col.DisplayName,
				Rating: rating,
			})
		}
	}

	return observations, skipped
}
