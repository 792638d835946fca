// Package core has the pipeline logic for classification, normalization,
// aggregation and ranking of survey responses.
package core

import (
	"fmt"
	"strings"

	"github.com/huangsam/surveyrank/schema"
)

// Classify partitions the table's columns into the three normalization
// families and resolves each column's display name. The classification table
// is built once here; later stages never re-match header strings.
//
// Columns matching no family are ignored. When lenient is false, any family
// with zero matching columns is an error, since aggregation over an empty
// family would silently produce no rows for it.
func Classify(table *schema.SurveyTable, lenient bool, warn func(string)) (*schema.Classification, error) {
	cls := &schema.Classification{}

	for i, header := range table.Headers {
		text := questionText(table, i)
		col := schema.ColumnClass{
			Index:       i,
			Header:      header,
			DisplayName: displayName(header, text),
		}

		switch {
		case strings.HasPrefix(header, schema.RankedPrefix):
			col.Family = schema.RankedFamily
			cls.Ranked = append(cls.Ranked, col)
		case strings.HasPrefix(header, schema.AgreementPrefix):
			col.Family = schema.AgreementFamily
			cls.Agreement = append(cls.Agreement, col)
		case strings.Contains(text, schema.RateTextMarker) && strings.Contains(text, schema.ScaleTextMarker):
			col.Family = schema.DirectFamily
			cls.Direct = append(cls.Direct, col)
		}
	}

	for _, fam := range schema.AllFamilies {
		if n := familySize(cls, fam); n == 0 {
			if !lenient {
				return nil, fmt.Errorf("no columns matched the %s family; check the export format", fam)
			}
			warn(fmt.Sprintf("no columns matched the %s family; its rankings will be empty", fam))
		}
	}

	return cls, nil
}

// questionText returns the question text for a column, falling back to the
// raw header when the metadata row is shorter than the header row.
func questionText(table *schema.SurveyTable, idx int) string {
	if idx < len(table.QuestionTexts) {
		if text := strings.TrimSpace(table.QuestionTexts[idx]); text != "" {
			return text
		}
	}
	return table.Headers[idx]
}

// displayName extracts the course or program name from question text.
// Export format puts the item name after the last " - " separator, e.g.
// "Rate each course on a scale from 1-5 - Advanced Auditing".
func displayName(header, text string) string {
	if idx := strings.LastIndex(text, " - "); idx >= 0 {
		if name := strings.TrimSpace(text[idx+len(" - "):]); name != "" {
			return name
		}
	}
	if text != "" {
		return text
	}
	return header
}

func familySize(cls *schema.Classification, fam schema.Family) int {
	switch fam {
	case schema.RankedFamily:
		return len(cls.Ranked)
	case schema.DirectFamily:
		return len(cls.Direct)
	default:
		return len(cls.Agreement)
	}
}
