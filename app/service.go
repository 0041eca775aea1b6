package app

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/railops/yardwheel/config"
	"github.com/railops/yardwheel/core/analysis"
	"github.com/railops/yardwheel/core/events"
	coremetrics "github.com/railops/yardwheel/core/metrics"
	"github.com/railops/yardwheel/core/model"
	"github.com/railops/yardwheel/infra/excel"
	"github.com/railops/yardwheel/infra/logger"
	"github.com/railops/yardwheel/infra/metrics"
	"github.com/railops/yardwheel/infra/notify"
	"github.com/railops/yardwheel/internal/eventbus"
	"github.com/railops/yardwheel/pkg/export"
)

// Service wires the readers, the analysis engine and the writers for one
// batch run.
type Service struct {
	cfg      *config.Config
	log      logger.Logger
	bus      *eventbus.Bus
	sink     coremetrics.MetricsSink
	prom     *metrics.PromSink
	notifier *notify.Notifier
	analyzer *analysis.Analyzer
}

// New creates a Service from the configuration.
func New(cfg *config.Config) (*Service, error) {
	logg := logger.New("service")

	var sinks []coremetrics.MetricsSink
	var prom *metrics.PromSink
	if cfg.Metrics.PrometheusEnabled {
		p, err := metrics.NewPromSinkWithRegistry(nil)
		if err != nil {
			return nil, fmt.Errorf("prom sink: %w", err)
		}
		prom = p
		sinks = append(sinks, p)
	}
	if cfg.Metrics.InfluxEnabled {
		sinks = append(sinks, metrics.NewInfluxSinkWithFallback(cfg.Metrics))
	}
	var sink coremetrics.MetricsSink = coremetrics.NopSink{}
	if len(sinks) == 1 {
		sink = sinks[0]
	} else if len(sinks) > 1 {
		sink = metrics.NewMultiSink(sinks...)
	}

	notifier, err := notify.New(cfg.Notifier)
	if err != nil {
		return nil, fmt.Errorf("notifier: %w", err)
	}

	bus := eventbus.New()
	return &Service{
		cfg:      cfg,
		log:      logg,
		bus:      bus,
		sink:     sink,
		prom:     prom,
		notifier: notifier,
		analyzer: analysis.NewAnalyzer(logger.New("analysis"), sink, bus, cfg.Analysis.Workers),
	}, nil
}

// Run executes one batch: read the schedule and yard tables, analyze every
// train, write the report and secondary exports, then record and publish the
// run summary.
func (s *Service) Run(ctx context.Context) error {
	runID := uuid.NewString()
	started := time.Now()
	s.log.Infof("run %s: schedule=%s yard=%s", runID, s.cfg.Input.SchedulePath, s.cfg.Input.YardPath)

	if s.cfg.Metrics.PrometheusEnabled {
		go func() {
			if err := metrics.StartPromServer(ctx, s.cfg.Metrics.PrometheusPort); err != nil {
				s.log.Errorf("prom server: %v", err)
			}
		}()
	}
	if s.prom != nil {
		metrics.StartEventCollector(ctx, s.bus, s.prom)
	}

	scheduleRows, err := excel.ReadSchedule(s.cfg.Input.SchedulePath, s.cfg.Input.ScheduleSheet)
	if err != nil {
		return err
	}
	// Duplicate identifiers collapse silently; only warned exclusions count.
	trains, scheduleSkips := analysis.BuildTrains(scheduleRows, s.log, s.bus)

	yardRows, err := excel.ReadYard(s.cfg.Input.YardPath, s.cfg.Yard, s.log, s.bus)
	if err != nil {
		return err
	}

	reports := s.analyzer.AnalyzeAll(ctx, trains, yardRows, runID)
	if err := ctx.Err(); err != nil {
		return err
	}
	analysisSkips := len(trains) - len(reports)

	summaryRows := make([]model.Summary, 0, len(reports))
	for _, r := range reports {
		summaryRows = append(summaryRows, analysis.Summarize(r))
	}

	if err := excel.WriteReport(s.cfg.Report.Path, reports, summaryRows); err != nil {
		return err
	}
	if s.cfg.Report.CSVDir != "" {
		if err := export.WriteCSVDir(s.cfg.Report.CSVDir, reports); err != nil {
			return err
		}
	}

	skipped := scheduleSkips + analysisSkips
	summary := coremetrics.RunSummary{
		RunID:     runID,
		Processed: len(reports),
		Skipped:   skipped,
		Warnings:  skipped,
		Duration:  time.Since(started),
		Time:      time.Now(),
	}
	s.bus.Publish(events.RunCompletedEvent{
		RunID:     runID,
		Processed: summary.Processed,
		Skipped:   summary.Skipped,
		Started:   started,
		Finished:  summary.Time,
	})
	if rec, ok := s.sink.(coremetrics.RunSummaryRecorder); ok {
		if err := rec.RecordRunSummary(summary); err != nil {
			s.log.Errorf("record run summary: %v", err)
		}
	}
	if s.notifier != nil {
		note := notify.RunNotification{
			RunID:      runID,
			Processed:  summary.Processed,
			Skipped:    summary.Skipped,
			Warnings:   summary.Warnings,
			OutputPath: s.cfg.Report.Path,
			Finished:   time.Now(),
		}
		if err := s.notifier.Publish(note); err != nil {
			s.log.Errorf("publish run notification: %v", err)
		}
	}

	s.log.Infof("run %s done: %d trains reported, %d skipped, report at %s",
		runID, len(reports), skipped, s.cfg.Report.Path)
	return nil
}

// Close releases resources held by the service.
func (s *Service) Close() error {
	s.bus.Close()
	if s.notifier != nil {
		s.notifier.Close()
	}
	return nil
}
