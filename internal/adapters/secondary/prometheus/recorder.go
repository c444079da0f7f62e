package prometheus

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	ports "iris-serving-service/internal/core/ports/output"
)

const namespace = "iris"

type recorder struct {
	predictions *prometheus.CounterVec
	invocations *prometheus.CounterVec
	duration    prometheus.Histogram
	batchRows   prometheus.Histogram
	workload    prometheus.Counter
}

// NewRecorder registers the serving collectors on reg and returns a
// ports.MetricsRecorder backed by them.
func NewRecorder(reg prometheus.Registerer) (ports.MetricsRecorder, error) {
	r := &recorder{
		predictions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "predictions_total",
			Help:      "Labels returned to callers, by operation and label.",
		}, []string{"operation", "label"}),
		invocations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "model_invocations_total",
			Help:      "Calls into the classifier artifact, by outcome.",
		}, []string{"outcome"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "model_invocation_duration_seconds",
			Help:      "Wall time spent inside the classifier artifact.",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 10),
		}),
		batchRows: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "model_invocation_rows",
			Help:      "Rows sent to the classifier per invocation.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
		}),
		workload: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "simulated_workload_seconds_total",
			Help:      "Total seconds spent in simulated workload.",
		}),
	}

	for _, c := range []prometheus.Collector{r.predictions, r.invocations, r.duration, r.batchRows, r.workload} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func (r *recorder) ObserveInvocation(rows int, outcome string, elapsed time.Duration) {
	r.invocations.WithLabelValues(outcome).Inc()
	if outcome == ports.OutcomeCached {
		return
	}
	r.duration.Observe(elapsed.Seconds())
	r.batchRows.Observe(float64(rows))
}

func (r *recorder) ObservePrediction(operation string, label string) {
	r.predictions.WithLabelValues(operation, label).Inc()
}

func (r *recorder) ObserveWorkload(delay time.Duration) {
	r.workload.Add(delay.Seconds())
}
