package ports

import "time"

// Invocation outcomes reported to the metrics recorder
const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
	OutcomeCached  = "cached"
)

// MetricsRecorder receives serving events for export
type MetricsRecorder interface {
	// ObserveInvocation records one call into the classifier artifact
	ObserveInvocation(rows int, outcome string, elapsed time.Duration)

	// ObservePrediction counts labels returned by an operation (single, batch, random)
	ObservePrediction(operation string, label string)

	// ObserveWorkload records a completed simulated delay
	ObserveWorkload(delay time.Duration)
}

// NopMetricsRecorder discards everything; used when metrics are disabled.
type NopMetricsRecorder struct{}

func (NopMetricsRecorder) ObserveInvocation(int, string, time.Duration) {}
func (NopMetricsRecorder) ObservePrediction(string, string) {}
func (NopMetricsRecorder) ObserveWorkload(time.Duration) {}
