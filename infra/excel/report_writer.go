package excel

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"regexp"

	"github.com/xuri/excelize/v2"

	"github.com/railops/yardwheel/core/model"
)

// Excel forbids these characters in sheet names and caps them at 31 runes.
var sheetNameSanitizer = regexp.MustCompile(`[\\/*?:\[\]]`)

const maxSheetNameLen = 31

// SanitizeSheetName makes a train identifier usable as an Excel sheet name.
func SanitizeSheetName(name string) string {
	s := sheetNameSanitizer.ReplaceAllString(name, "_")
	if len(s) > maxSheetNameLen {
		s = s[:maxSheetNameLen]
	}
	return s
}

var reportHeader = []string{
	"Train", "Time", "CAR_ARRIVING", "DWELL_HOURS", "CAR_ARRIVING_X_DWELL",
	"CAR_HOURS", "TOTAL_CAR", "TOTAL_CAR_HOURS", "DEPARTURE_TIME",
}

var summaryHeader = []string{
	"Train", "DEPT_TIME", "Blocks", "TOTAL_CAR", "TOTAL_CAR_HOURS",
	"AVG_CAR_HOURS", "MIN_CAR_HOURS", "MIN_CAR_HOURS_TIME",
}

// WriteReport renders one sheet per train plus a leading Summary sheet and
// saves the workbook at path, creating parent directories as needed.
func WriteReport(path string, reports []model.TrainReport, summaries []model.Summary) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := writeSummarySheet(f, summaries); err != nil {
		return err
	}
	for _, r := range reports {
		if err := writeTrainSheet(f, r); err != nil {
			return err
		}
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save report %s: %w", path, err)
	}
	return nil
}

func writeSummarySheet(f *excelize.File, summaries []model.Summary) error {
	// Reuse the default sheet so Summary comes first in the workbook.
	const sheet = "Summary"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return err
	}
	if err := setRow(f, sheet, 1, toCells(summaryHeader)); err != nil {
		return err
	}
	for i, s := range summaries {
		row := []any{
			s.TrainID, s.Departure, joinBlocks(s.Blocks), s.TotalCars,
			round2(s.TotalCarHours), round2(s.AvgCarHours),
			round2(s.MinCarHours), s.MinCarHoursLabel,
		}
		if err := setRow(f, sheet, i+2, row); err != nil {
			return err
		}
	}
	return nil
}

func writeTrainSheet(f *excelize.File, r model.TrainReport) error {
	sheet := SanitizeSheetName(r.Train.ID)
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	if err := setRow(f, sheet, 1, toCells(reportHeader)); err != nil {
		return err
	}
	for h, row := range r.Metrics.Rows {
		values := []any{
			r.Train.ID,
			fmt.Sprintf("%d:00", row.Hour),
			row.CarsIn,
			row.DwellHours,
			row.CarDwell,
			round2(row.CarHours),
			r.Metrics.TotalCars,
			round2(r.Metrics.TotalCarHours),
			r.Train.Departure,
		}
		if err := setRow(f, sheet, h+2, values); err != nil {
			return err
		}
	}
	return nil
}

func setRow(f *excelize.File, sheet string, row int, values []any) error {
	for col, v := range values {
		cellRef, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cellRef, v); err != nil {
			return err
		}
	}
	return nil
}

func toCells(header []string) []any {
	cells := make([]any, len(header))
	for i, h := range header {
		cells[i] = h
	}
	return cells
}

func joinBlocks(blocks []string) string {
	out := ""
	for i, b := range blocks {
		if i > 0 {
			out += ", "
		}
		out += b
	}
	return out
}

// Report cells keep two decimals, matching the planning spreadsheets.
func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
