// Package events defines the analysis events emitted on the event bus.
//
// Available event types:
//   - WarningEvent: a train was skipped or a value was dropped
//   - TrainProcessedEvent: one train's metrics were computed
//   - RunCompletedEvent: the whole batch finished
package events

import "time"

// Skip reasons carried by WarningEvent.
const (
	ReasonNoBlocks     = "no_blocks"
	ReasonBadDeparture = "bad_departure"
	ReasonNotFound     = "not_found"
	ReasonBadTimeLabel = "bad_time_label"
)

// WarningEvent is published whenever a train or value is dropped during a
// run. The run itself continues.
type WarningEvent struct {
	TrainID string
	Reason  string
	Err     error
}

// TrainProcessedEvent is published after a train's dwell metrics are
// computed.
type TrainProcessedEvent struct {
	TrainID       string
	TotalCars     int
	TotalCarHours float64
	ClearingHour  int
}

// RunCompletedEvent is published once per batch run.
type RunCompletedEvent struct {
	RunID     string
	Processed int
	Skipped   int
	Started   time.Time
	Finished  time.Time
}
