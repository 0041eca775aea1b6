package model

// HoursPerDay is the size of the hour wheel.
const HoursPerDay = 24

// ArrivalVector counts cars arriving per hour for one train. Every entry is
// non-negative by construction.
type ArrivalVector [HoursPerDay]int

// Total returns the sum of all hourly counts.
func (v ArrivalVector) Total() int {
	total := 0
	for _, n := range v {
		total += n
	}
	return total
}

// DwellRow is one hour of a train's dwell table.
type DwellRow struct {
	Hour       int
	CarsIn     int     // CAR_ARRIVING
	DwellHours int     // 24 - Hour
	CarDwell   int     // CAR_ARRIVING * DWELL_HOURS
	CarHours   float64 // backward cumulative car-hours
}

// DwellMetrics is the derived 24-row dwell table for one train, the terminal
// artifact of the analysis engine.
type DwellMetrics struct {
	Rows          [HoursPerDay]DwellRow
	TotalCars     int
	TotalCarHours float64
}

// TrainReport bundles one train's metrics with its identity for the report
// writers.
type TrainReport struct {
	Train        Train
	Metrics      DwellMetrics
	ClearingHour int // hour of the pull event whose row was excluded
}

// Summary condenses a TrainReport into one row of the report's Summary sheet.
type Summary struct {
	TrainID          string
	Departure        string
	Blocks           []string
	TotalCars        int
	TotalCarHours    float64
	AvgCarHours      float64
	MinCarHours      float64
	MinCarHoursLabel string // hour label "H:00" at which CAR_HOURS bottoms out
}
