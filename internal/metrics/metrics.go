// Package metrics provides lightweight hooks for instrumentation.
package metrics

import "time"

// Recorder captures metric events for the application.
// Implementations can expose these to Prometheus or keep them in memory for tests.
type Recorder interface {
	// User metrics
	IncUserCreated()
	IncUserConflict()

	// Exercise metrics
	IncExerciseAdded()
	ObserveLogQuery(duration time.Duration, entries int)

	// Traffic metrics
	IncRateLimited()
}
