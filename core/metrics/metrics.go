package metrics

import "time"

// TrainResult represents one train's outcome in a run, recorded for
// observability purposes.
type TrainResult struct {
	RunID         string
	TrainID       string
	TotalCars     int
	TotalCarHours float64
	ClearingHour  int
	Skipped       bool
	SkipReason    string
	Time          time.Time
}

// RunSummary captures one whole batch run.
type RunSummary struct {
	RunID     string
	Processed int
	Skipped   int
	Warnings  int
	Duration  time.Duration
	Time      time.Time
}

// MetricsSink records analysis results for observability purposes.
type MetricsSink interface {
	RecordTrainResult(results []TrainResult) error
}

// RunSummaryRecorder records batch run summaries when supported by the sink.
type RunSummaryRecorder interface {
	RecordRunSummary(s RunSummary) error
}

// NopSink discards all records.
type NopSink struct{}

func (NopSink) RecordTrainResult([]TrainResult) error { return nil }
func (NopSink) RecordRunSummary(RunSummary) error     { return nil }
