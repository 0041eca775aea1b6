package model

// ScheduleRow is one raw row of the departure schedule before registry
// validation.
type ScheduleRow struct {
	TrainID   string
	Departure string // e.g. "3:30"
	Blocks    string // comma separated block list, e.g. "EVL, NAS"
}

// Train represents one outbound train from the departure schedule.
// Instances are immutable after construction.
type Train struct {
	ID            string
	Blocks        []string // block names this train pulls, schedule order
	Departure     string   // raw scheduled departure, e.g. "3:30"
	DepartureHour int      // departure truncated to the hour wheel
}

// YardRow is one interval of the 24-hour yard occupancy snapshot. Rows are
// read-only input; the table may start at any hour and wrap at midnight.
type YardRow struct {
	TimeLabel string // "H:MM-H:MM" or "H:MM"
	Hour      int    // start hour of the interval

	// Pulls holds the values of every Pull-prefixed column, table order.
	// An entry may be empty or name the train clearing cars at this time.
	Pulls []string

	// BlockCounts maps dedicated block columns to their car counts.
	BlockCounts map[string]int

	// SpareCells maps SPARE-slot columns to their raw free-text content,
	// e.g. "2 CHBR 1 CHG".
	SpareCells map[string]string
}
