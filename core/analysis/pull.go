package analysis

import "github.com/railops/yardwheel/core/model"

// Pre/post-midnight neighborhoods for wrap detection. When a train's pull
// matches fall on both sides of the 23->0 boundary, the late hours are the
// chronologically earlier ones of the same operational day.
const (
	postMidnightMax = 2
	preMidnightMin  = 21
)

// Pull identifies a train's earliest clearing event in the yard table.
type Pull struct {
	RowIndex int
	Hour     int
}

// LocatePull finds the earliest row whose Pull column equals the train
// identifier (exact, case-sensitive). Ordering is midnight-aware: if matches
// appear both in {0..2} and {21..23}, the {21..23} hours count as earlier.
// Ties on the effective hour resolve to the first row in table order, and
// within a row to the first Pull column; both are covered by tests.
//
// Returns NotFoundError when the train never appears in a Pull column.
func LocatePull(train model.Train, rows []model.YardRow) (Pull, error) {
	type match struct {
		row  int
		hour int
	}
	var matches []match
	wrapLow, wrapHigh := false, false
	for i, row := range rows {
		for _, pull := range row.Pulls {
			if pull == train.ID {
				matches = append(matches, match{row: i, hour: row.Hour})
				if row.Hour <= postMidnightMax {
					wrapLow = true
				}
				if row.Hour >= preMidnightMin {
					wrapHigh = true
				}
				break
			}
		}
	}
	if len(matches) == 0 {
		return Pull{}, &model.NotFoundError{TrainID: train.ID}
	}

	wrapped := wrapLow && wrapHigh
	best := matches[0]
	for _, m := range matches[1:] {
		if effectiveHour(m.hour, wrapped) < effectiveHour(best.hour, wrapped) {
			best = m
		}
	}
	return Pull{RowIndex: best.row, Hour: best.hour}, nil
}

// effectiveHour maps an hour onto the virtual timeline used for "earliest".
// Under wrap, pre-midnight hours sort below hour 0.
func effectiveHour(h int, wrapped bool) int {
	if wrapped && h >= preMidnightMin {
		return h - model.HoursPerDay
	}
	return h
}
