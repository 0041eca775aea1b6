// Package excel adapts xlsx workbooks to and from the analysis engine's
// tabular types. The engine itself never touches a file.
package excel

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/railops/yardwheel/core/model"
)

// Schedule column headers. "Bocks" is a long-standing typo in the upstream
// planning workbooks; both spellings are accepted.
const (
	colTrain     = "Train"
	colDeparture = "Scheduled Departure"
	colBlocks    = "Blocks"
	colBlocksAlt = "Bocks"
)

// ReadSchedule loads the departure schedule from the given workbook sheet.
// A missing Train, Scheduled Departure or Blocks column is a
// MissingColumnError and aborts the run.
func ReadSchedule(path, sheet string) ([]model.ScheduleRow, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open schedule %s: %w", path, err)
	}
	defer f.Close()

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, &model.MissingColumnError{Table: "schedule", Column: colTrain}
	}

	header := rows[0]
	trainIdx := findColumn(header, colTrain)
	depIdx := findColumn(header, colDeparture)
	blocksIdx := findColumn(header, colBlocks)
	if blocksIdx < 0 {
		blocksIdx = findColumn(header, colBlocksAlt)
	}
	switch {
	case trainIdx < 0:
		return nil, &model.MissingColumnError{Table: "schedule", Column: colTrain}
	case depIdx < 0:
		return nil, &model.MissingColumnError{Table: "schedule", Column: colDeparture}
	case blocksIdx < 0:
		return nil, &model.MissingColumnError{Table: "schedule", Column: colBlocks}
	}

	var out []model.ScheduleRow
	for _, row := range rows[1:] {
		id := strings.TrimSpace(cell(row, trainIdx))
		if id == "" {
			continue
		}
		out = append(out, model.ScheduleRow{
			TrainID:   id,
			Departure: strings.TrimSpace(cell(row, depIdx)),
			Blocks:    cell(row, blocksIdx),
		})
	}
	return out, nil
}

// findColumn returns the index of the named header, case-insensitive, or -1.
func findColumn(header []string, name string) int {
	for i, h := range header {
		if strings.EqualFold(strings.TrimSpace(h), name) {
			return i
		}
	}
	return -1
}

// cell returns the i-th value of a row, tolerating excelize's trailing-cell
// truncation.
func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}
