package analysis

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/railops/yardwheel/core/model"
)

// Summarize condenses one train's report into a Summary-sheet row. The
// minimum of the CAR_HOURS series and the hour at which it occurs flag the
// emptiest point of the yard day for that train.
func Summarize(report model.TrainReport) model.Summary {
	series := make([]float64, model.HoursPerDay)
	for h, row := range report.Metrics.Rows {
		series[h] = row.CarHours
	}
	minIdx := floats.MinIdx(series)

	avg := 0.0
	if report.Metrics.TotalCars > 0 {
		avg = report.Metrics.TotalCarHours / float64(report.Metrics.TotalCars)
	}
	return model.Summary{
		TrainID:          report.Train.ID,
		Departure:        report.Train.Departure,
		Blocks:           report.Train.Blocks,
		TotalCars:        report.Metrics.TotalCars,
		TotalCarHours:    report.Metrics.TotalCarHours,
		AvgCarHours:      avg,
		MinCarHours:      floats.Min(series),
		MinCarHoursLabel: fmt.Sprintf("%d:00", minIdx),
	}
}
