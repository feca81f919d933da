package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/mihai-snyk/nsga2/pkg/multiobjective/algorithms"
)

// Recorder exports the progress of NSGA-II runs as Prometheus metrics. It is
// an algorithms.Observer.
type Recorder struct {
	generations prometheus.Counter
	fronts      prometheus.Gauge
	evaluations prometheus.Gauge
	best        *prometheus.GaugeVec

	runs            *prometheus.CounterVec
	runDuration     prometheus.Histogram
	paretoFrontSize prometheus.Gauge
}

var _ algorithms.Observer = &Recorder{}

// NewRecorder registers the NSGA-II metrics with reg.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	factory := promauto.With(reg)
	return &Recorder{
		generations: factory.NewCounter(prometheus.CounterOpts{
			Name: "nsga2_generations_total",
			Help: "Total generations evolved",
		}),
		fronts: factory.NewGauge(prometheus.GaugeOpts{
			Name: "nsga2_fronts",
			Help: "Number of fronts in the last merged population",
		}),
		evaluations: factory.NewGauge(prometheus.GaugeOpts{
			Name: "nsga2_evaluations",
			Help: "Objective evaluations performed by the current run",
		}),
		best: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "nsga2_best_objective",
			Help: "Objective values of the selected member with the lowest sum of objectives",
		}, []string{"objective"}),
		runs: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "nsga2_runs_total",
			Help: "Total runs by result",
		}, []string{"result"}),
		runDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "nsga2_run_duration_seconds",
			Help:    "Run duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 4, 10), // 1ms to ~4min
		}),
		paretoFrontSize: factory.NewGauge(prometheus.GaugeOpts{
			Name: "nsga2_pareto_front_size",
			Help: "Number of rank 0 members in the final population of the last run",
		}),
	}
}

// Observe records a generation snapshot.
func (r *Recorder) Observe(s algorithms.Snapshot) {
	r.generations.Inc()
	r.fronts.Set(float64(s.Fronts))
	r.evaluations.Set(float64(s.Evaluations))
	for i, v := range s.Best {
		r.best.WithLabelValues(strconv.Itoa(i + 1)).Set(v)
	}
}

// ObserveRun records the outcome of a finished run. res is ignored when err
// is set.
func (r *Recorder) ObserveRun(res *algorithms.Result, err error, duration time.Duration) {
	r.runDuration.Observe(duration.Seconds())
	if err != nil {
		r.runs.WithLabelValues("error").Inc()
		return
	}
	r.runs.WithLabelValues("success").Inc()
	r.evaluations.Set(float64(res.Evaluations))
	r.paretoFrontSize.Set(float64(len(res.ParetoFront())))
}
