package metrics

import "time"

// NoopRecorder implements Recorder with no-op methods.
type NoopRecorder struct{}

// NewNoop returns a Recorder that discards all metrics.
func NewNoop() Recorder {
	return &NoopRecorder{}
}

// IncUserCreated is a no-op.
func (n *NoopRecorder) IncUserCreated() {}

// IncUserConflict is a no-op.
func (n *NoopRecorder) IncUserConflict() {}

// IncExerciseAdded is a no-op.
func (n *NoopRecorder) IncExerciseAdded() {}

// ObserveLogQuery is a no-op.
func (n *NoopRecorder) ObserveLogQuery(duration time.Duration, entries int) {}

// IncRateLimited is a no-op.
func (n *NoopRecorder) IncRateLimited() {}
