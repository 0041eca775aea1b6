package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/railops/yardwheel/core/model"
	"github.com/railops/yardwheel/infra/excel"
)

// WriteJSON writes one train's report to w in JSON format.
func WriteJSON(w io.Writer, report model.TrainReport) error {
	enc := json.NewEncoder(w)
	return enc.Encode(report)
}

// WriteCSV writes one train's dwell table to w.
func WriteCSV(w io.Writer, report model.TrainReport) error {
	cw := csv.NewWriter(w)
	header := []string{"Train", "Time", "CAR_ARRIVING", "DWELL_HOURS",
		"CAR_ARRIVING_X_DWELL", "CAR_HOURS", "TOTAL_CAR", "TOTAL_CAR_HOURS", "DEPARTURE_TIME"}
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, row := range report.Metrics.Rows {
		rec := []string{
			report.Train.ID,
			fmt.Sprintf("%d:00", row.Hour),
			strconv.Itoa(row.CarsIn),
			strconv.Itoa(row.DwellHours),
			strconv.Itoa(row.CarDwell),
			strconv.FormatFloat(row.CarHours, 'f', 2, 64),
			strconv.Itoa(report.Metrics.TotalCars),
			strconv.FormatFloat(report.Metrics.TotalCarHours, 'f', 2, 64),
			report.Train.Departure,
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteCSVDir writes one "<train>_summary.csv" per report under dir,
// creating it as needed. Train identifiers are sanitized the same way as
// report sheet names.
func WriteCSVDir(dir string, reports []model.TrainReport) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create csv dir: %w", err)
	}
	for _, r := range reports {
		name := excel.SanitizeSheetName(r.Train.ID) + "_summary.csv"
		f, err := os.Create(filepath.Join(dir, name))
		if err != nil {
			return err
		}
		if err := WriteCSV(f, r); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
	}
	return nil
}
