package metrics

import coremetrics "github.com/railops/yardwheel/core/metrics"

// MultiSink fans analysis results out to multiple sinks.
type MultiSink struct {
	Sinks []coremetrics.MetricsSink
}

// NewMultiSink creates a MultiSink with the provided sinks.
func NewMultiSink(sinks ...coremetrics.MetricsSink) *MultiSink {
	return &MultiSink{Sinks: sinks}
}

// RecordTrainResult forwards the records to all sinks, returning the first
// error encountered.
func (m *MultiSink) RecordTrainResult(results []coremetrics.TrainResult) error {
	for _, s := range m.Sinks {
		if err := s.RecordTrainResult(results); err != nil {
			return err
		}
	}
	return nil
}

// RecordRunSummary forwards the summary to sinks that support it.
func (m *MultiSink) RecordRunSummary(sum coremetrics.RunSummary) error {
	for _, s := range m.Sinks {
		if rec, ok := s.(coremetrics.RunSummaryRecorder); ok {
			if err := rec.RecordRunSummary(sum); err != nil {
				return err
			}
		}
	}
	return nil
}
