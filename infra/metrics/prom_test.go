package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	coremetrics "github.com/railops/yardwheel/core/metrics"
)

func TestPromSinkRecordsResults(t *testing.T) {
	reg := prometheus.NewRegistry()
	sink, err := NewPromSinkWithRegistry(reg)
	if err != nil {
		t.Fatalf("sink: %v", err)
	}
	results := []coremetrics.TrainResult{
		{RunID: "r1", TrainID: "ITHNAS", TotalCars: 45, TotalCarHours: 789, ClearingHour: 23, Time: time.Now()},
		{RunID: "r1", TrainID: "GHOST", Skipped: true, SkipReason: "not_found", Time: time.Now()},
	}
	if err := sink.RecordTrainResult(results); err != nil {
		t.Fatalf("record: %v", err)
	}
	if got := testutil.ToFloat64(sink.processed.WithLabelValues("ITHNAS")); got != 1 {
		t.Errorf("processed: want 1 got %v", got)
	}
	if got := testutil.ToFloat64(sink.skipped.WithLabelValues("GHOST", "not_found")); got != 1 {
		t.Errorf("skipped: want 1 got %v", got)
	}
	if got := testutil.ToFloat64(sink.carHours.WithLabelValues("ITHNAS")); got != 789 {
		t.Errorf("car hours gauge: want 789 got %v", got)
	}
}

func TestPromSinkWarningCounter(t *testing.T) {
	reg := prometheus.NewRegistry()
	sink, err := NewPromSinkWithRegistry(reg)
	if err != nil {
		t.Fatalf("sink: %v", err)
	}
	sink.RecordWarning()
	sink.RecordWarning()
	if got := testutil.ToFloat64(sink.warnings); got != 2 {
		t.Errorf("warnings: want 2 got %v", got)
	}
}
