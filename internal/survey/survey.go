// Package survey loads tabular survey exports into memory.
//
// The export layout is fixed: row 1 holds raw column identifiers, row 2
// holds the full question text per column, row 3 holds import metadata and
// is discarded, and data rows start at row 4.
package survey

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/huangsam/surveyrank/schema"
	"github.com/xuri/excelize/v2"
)

// Minimum rows a well-formed export carries: headers, question texts and
// the metadata row. Data rows may legitimately be absent (empty survey).
const headerRowCount = 3

// Load reads a survey export from disk. The format is picked by file
// extension: .xlsx/.xlsm through excelize, anything else as CSV. For xlsx
// input, sheet selects the worksheet; empty means the first sheet.
func Load(path, sheet string) (*schema.SurveyTable, error) {
	var rows [][]string
	var err error

	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		rows, err = loadExcel(path, sheet)
	default:
		rows, err = loadCSV(path)
	}
	if err != nil {
		return nil, err
	}

	if len(rows) < headerRowCount {
		return nil, fmt.Errorf("%s: expected at least %d header rows, got %d", path, headerRowCount, len(rows))
	}

	return &schema.SurveyTable{
		SourcePath:    path,
		Headers:       rows[0],
		QuestionTexts: rows[1],
		Rows:          rows[headerRowCount:],
	}, nil
}

// loadExcel reads all rows from one worksheet of an xlsx file.
func loadExcel(path, sheet string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("cannot read sheet %q from %s: %w", sheet, path, err)
	}
	return rows, nil
}

// loadCSV reads all records from a CSV file. Ragged rows are allowed since
// exports routinely omit trailing blank cells.
func loadCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("cannot parse %s: %w", path, err)
	}
	return rows, nil
}
