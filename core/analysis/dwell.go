package analysis

import "github.com/railops/yardwheel/core/model"

// ComputeDwell derives the dwell table from a 24-hour arrival vector.
//
// DWELL_HOURS at hour h is 24-h, the hours remaining until the next
// operational midnight. CAR_HOURS runs backward from hour 23:
//
//	CAR_HOURS[23] = TOTAL_CAR_HOURS - TOTAL_CAR + 24*CAR_ARRIVING[23]
//	CAR_HOURS[h]  = CAR_HOURS[h+1]  - TOTAL_CAR + 24*CAR_ARRIVING[h]
//
// The recurrence is reproduced exactly; capacity planning depends on these
// numbers being bit-stable.
func ComputeDwell(vec model.ArrivalVector) model.DwellMetrics {
	var m model.DwellMetrics
	for h := 0; h < model.HoursPerDay; h++ {
		dwell := model.HoursPerDay - h
		m.Rows[h] = model.DwellRow{
			Hour:       h,
			CarsIn:     vec[h],
			DwellHours: dwell,
			CarDwell:   vec[h] * dwell,
		}
		m.TotalCars += vec[h]
		m.TotalCarHours += float64(vec[h] * dwell)
	}
	for h := model.HoursPerDay - 1; h >= 0; h-- {
		prev := m.TotalCarHours // seeds the h == 23 step
		if h < model.HoursPerDay-1 {
			prev = m.Rows[h+1].CarHours
		}
		m.Rows[h].CarHours = prev - float64(m.TotalCars) + float64(model.HoursPerDay*vec[h])
	}
	return m
}
