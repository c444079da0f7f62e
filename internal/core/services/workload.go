package services

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"time"

	"iris-serving-service/internal/core/domain"
	ports "iris-serving-service/internal/core/ports/output"
)

// WorkloadSimulator sleeps on behalf of a request so operators can exercise
// timeouts and backpressure in front of the service.
type WorkloadSimulator struct {
	defaultDelay time.Duration
	maxDelay     time.Duration
	recorder     ports.MetricsRecorder
}

// NewWorkloadSimulator creates a simulator. maxDelay <= 0 means no upper bound.
func NewWorkloadSimulator(defaultDelay, maxDelay time.Duration, recorder ports.MetricsRecorder) *WorkloadSimulator {
	if recorder == nil {
		recorder = ports.NopMetricsRecorder{}
	}
	return &WorkloadSimulator{
		defaultDelay: defaultDelay,
		maxDelay:     maxDelay,
		recorder:     recorder,
	}
}

// DefaultDelaySeconds is used when a caller does not name a delay.
func (s *WorkloadSimulator) DefaultDelaySeconds() float64 {
	return s.defaultDelay.Seconds()
}

// Simulate blocks the calling goroutine for seconds, then returns a message
// echoing the delay. Invalid delays are rejected before any waiting. If ctx
// ends first the context error is returned.
func (s *WorkloadSimulator) Simulate(ctx context.Context, seconds float64) (string, error) {
	if math.IsNaN(seconds) || math.IsInf(seconds, 0) || seconds < 0 {
		return "", domain.ErrInvalidDelay
	}

	if s.maxDelay > 0 && seconds > s.maxDelay.Seconds() {
		return "", fmt.Errorf("%w (%s)", domain.ErrDelayTooLong, s.maxDelay)
	}
	// beyond this the conversion to time.Duration overflows
	if seconds > float64(math.MaxInt64)/float64(time.Second) {
		return "", domain.ErrDelayTooLong
	}
	delay := time.Duration(seconds * float64(time.Second))

	if delay > 0 {
		timer := time.NewTimer(delay)
		defer timer.Stop()

		select {
		case <-timer.C:
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}

	s.recorder.ObserveWorkload(delay)
	return fmt.Sprintf("Workload simulated for %s seconds.", strconv.FormatFloat(seconds, 'f', -1, 64)), nil
}
