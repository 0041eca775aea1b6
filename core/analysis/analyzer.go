package analysis

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/railops/yardwheel/core/events"
	"github.com/railops/yardwheel/core/logger"
	"github.com/railops/yardwheel/core/metrics"
	"github.com/railops/yardwheel/core/model"
	"github.com/railops/yardwheel/internal/eventbus"
)

const defaultWorkers = 4

// Analyzer runs the per-train pipeline: locate the clearing pull, count
// arrivals, compute dwell metrics. Trains are independent, so the analyzer
// fans out across a bounded worker pool; each train's working set is owned
// by its own task.
type Analyzer struct {
	logger  logger.Logger
	sink    metrics.MetricsSink
	bus     eventbus.EventBus
	workers int
}

// NewAnalyzer creates an Analyzer. A nil sink disables metric recording and
// a nil bus disables event publication; workers <= 0 selects the default
// pool size.
func NewAnalyzer(log logger.Logger, sink metrics.MetricsSink, bus eventbus.EventBus, workers int) *Analyzer {
	if sink == nil {
		sink = metrics.NopSink{}
	}
	if workers <= 0 {
		workers = defaultWorkers
	}
	return &Analyzer{logger: log, sink: sink, bus: bus, workers: workers}
}

// AnalyzeTrain runs the pipeline for a single train against the yard table.
// A NotFoundError means the train has no pull event and produces no report.
func (a *Analyzer) AnalyzeTrain(train model.Train, rows []model.YardRow) (model.TrainReport, error) {
	pull, err := LocatePull(train, rows)
	if err != nil {
		return model.TrainReport{}, err
	}
	vec := CountArrivals(train, rows, pull.RowIndex)
	m := ComputeDwell(vec)
	if a.logger != nil {
		a.logger.Debugw("train analyzed", map[string]any{
			"train":           train.ID,
			"clearing_hour":   pull.Hour,
			"total_cars":      m.TotalCars,
			"total_car_hours": m.TotalCarHours,
		})
	}
	if a.bus != nil {
		a.bus.Publish(events.TrainProcessedEvent{
			TrainID:       train.ID,
			TotalCars:     m.TotalCars,
			TotalCarHours: m.TotalCarHours,
			ClearingHour:  pull.Hour,
		})
	}
	return model.TrainReport{Train: train, Metrics: m, ClearingHour: pull.Hour}, nil
}

// AnalyzeAll processes every train against the yard table and returns the
// reports in schedule order. Trains absent from the yard table are skipped
// with a warning and recorded as such; the run keeps going. The context only
// cuts the fan-out short, individual train computations are not interruptible
// (they are bounded and fast).
func (a *Analyzer) AnalyzeAll(ctx context.Context, trains []model.Train, rows []model.YardRow, runID string) []model.TrainReport {
	type slot struct {
		report model.TrainReport
		err    error
	}
	slots := make([]slot, len(trains))

	var wg sync.WaitGroup
	sem := make(chan struct{}, a.workers)
	started := len(trains)
	for i := range trains {
		if ctx.Err() != nil {
			started = i
			break
		}
		wg.Add(1)
		sem <- struct{}{}
		go func(i int) {
			defer wg.Done()
			defer func() { <-sem }()
			slots[i].report, slots[i].err = a.AnalyzeTrain(trains[i], rows)
		}(i)
	}
	wg.Wait()

	reports := make([]model.TrainReport, 0, started)
	results := make([]metrics.TrainResult, 0, started)
	now := time.Now()
	for i, s := range slots[:started] {
		if s.err != nil {
			var nf *model.NotFoundError
			reason := events.ReasonNotFound
			if !errors.As(s.err, &nf) {
				reason = "error"
			}
			warn(a.logger, a.bus, trains[i].ID, reason, s.err)
			results = append(results, metrics.TrainResult{
				RunID:      runID,
				TrainID:    trains[i].ID,
				Skipped:    true,
				SkipReason: reason,
				Time:       now,
			})
			continue
		}
		reports = append(reports, s.report)
		results = append(results, metrics.TrainResult{
			RunID:         runID,
			TrainID:       s.report.Train.ID,
			TotalCars:     s.report.Metrics.TotalCars,
			TotalCarHours: s.report.Metrics.TotalCarHours,
			ClearingHour:  s.report.ClearingHour,
			Time:          now,
		})
	}
	if err := a.sink.RecordTrainResult(results); err != nil && a.logger != nil {
		a.logger.Errorf("record train results: %v", err)
	}
	return reports
}
