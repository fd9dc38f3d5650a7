package metrics

import (
	"sync/atomic"
	"time"
)

// Snapshot captures current in-memory counters.
type Snapshot struct {
	UsersCreated        uint64
	UserConflicts       uint64
	ExercisesAdded      uint64
	LogQueries          uint64
	LogEntriesReturned  uint64
	LogQueryTotalNs     int64
	RateLimitedRequests uint64
}

// InMemoryRecorder stores metrics in memory for tests.
type InMemoryRecorder struct {
	usersCreated        uint64
	userConflicts       uint64
	exercisesAdded      uint64
	logQueries          uint64
	logEntriesReturned  uint64
	logQueryTotalNs     int64
	rateLimitedRequests uint64
}

// NewInMemory returns a Recorder that stores counters in memory.
func NewInMemory() *InMemoryRecorder {
	return &InMemoryRecorder{}
}

// Snapshot returns a copy of the counters.
func (m *InMemoryRecorder) Snapshot() Snapshot {
	return Snapshot{
		UsersCreated:        atomic.LoadUint64(&m.usersCreated),
		UserConflicts:       atomic.LoadUint64(&m.userConflicts),
		ExercisesAdded:      atomic.LoadUint64(&m.exercisesAdded),
		LogQueries:          atomic.LoadUint64(&m.logQueries),
		LogEntriesReturned:  atomic.LoadUint64(&m.logEntriesReturned),
		LogQueryTotalNs:     atomic.LoadInt64(&m.logQueryTotalNs),
		RateLimitedRequests: atomic.LoadUint64(&m.rateLimitedRequests),
	}
}

// IncUserCreated increments the created users counter.
func (m *InMemoryRecorder) IncUserCreated() {
	atomic.AddUint64(&m.usersCreated, 1)
}

// IncUserConflict increments the duplicate username counter.
func (m *InMemoryRecorder) IncUserConflict() {
	atomic.AddUint64(&m.userConflicts, 1)
}

// IncExerciseAdded increments the added exercises counter.
func (m *InMemoryRecorder) IncExerciseAdded() {
	atomic.AddUint64(&m.exercisesAdded, 1)
}

// ObserveLogQuery records one log query and the entries it returned.
func (m *InMemoryRecorder) ObserveLogQuery(duration time.Duration, entries int) {
	atomic.AddUint64(&m.logQueries, 1)
	atomic.AddInt64(&m.logQueryTotalNs, duration.Nanoseconds())
	if entries > 0 {
		atomic.AddUint64(&m.logEntriesReturned, uint64(entries))
	}
}

// IncRateLimited increments the rejected requests counter.
func (m *InMemoryRecorder) IncRateLimited() {
	atomic.AddUint64(&m.rateLimitedRequests, 1)
}
