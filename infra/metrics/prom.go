package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	coremetrics "github.com/railops/yardwheel/core/metrics"
)

// PromSink records analysis outcomes in Prometheus metrics.
type PromSink struct {
	processed *prometheus.CounterVec
	skipped   *prometheus.CounterVec
	warnings  prometheus.Counter
	cars      *prometheus.GaugeVec
	carHours  *prometheus.GaugeVec
}

// NewPromSink registers the analysis metrics on the default Prometheus
// registerer.
func NewPromSink() (coremetrics.MetricsSink, error) {
	return NewPromSinkWithRegistry(prometheus.DefaultRegisterer)
}

// NewPromSinkWithRegistry registers metrics on the provided registerer.
// A nil registerer defaults to the global Prometheus registerer. Collectors
// that are already registered are reused.
func NewPromSinkWithRegistry(reg prometheus.Registerer) (*PromSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	processed := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "trains_processed_total",
		Help: "Trains for which dwell metrics were computed",
	}, []string{"train"})
	skipped := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "trains_skipped_total",
		Help: "Trains excluded from the run, by reason",
	}, []string{"train", "reason"})
	warnings := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "analysis_warnings_total",
		Help: "Warnings emitted on the diagnostic stream",
	})
	cars := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "train_total_cars",
		Help: "Total cars counted for a train in the last run",
	}, []string{"train"})
	carHours := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "train_total_car_hours",
		Help: "Total car-hours for a train in the last run",
	}, []string{"train"})

	s := &PromSink{processed: processed, skipped: skipped, warnings: warnings, cars: cars, carHours: carHours}
	for _, c := range []prometheus.Collector{processed, skipped, warnings, cars, carHours} {
		if err := reg.Register(c); err != nil {
			are, ok := err.(prometheus.AlreadyRegisteredError)
			if !ok {
				return nil, err
			}
			switch existing := are.ExistingCollector.(type) {
			case *prometheus.CounterVec:
				if c == processed {
					s.processed = existing
				} else {
					s.skipped = existing
				}
			case prometheus.Counter:
				s.warnings = existing
			case *prometheus.GaugeVec:
				if c == cars {
					s.cars = existing
				} else {
					s.carHours = existing
				}
			}
		}
	}
	return s, nil
}

// RecordTrainResult updates counters and gauges for each train outcome.
func (s *PromSink) RecordTrainResult(results []coremetrics.TrainResult) error {
	for _, r := range results {
		if r.Skipped {
			s.skipped.WithLabelValues(r.TrainID, r.SkipReason).Inc()
			continue
		}
		s.processed.WithLabelValues(r.TrainID).Inc()
		s.cars.WithLabelValues(r.TrainID).Set(float64(r.TotalCars))
		s.carHours.WithLabelValues(r.TrainID).Set(r.TotalCarHours)
	}
	return nil
}

// RecordWarning increments the warning counter; called by the event
// collector for every WarningEvent.
func (s *PromSink) RecordWarning() { s.warnings.Inc() }
