package succtree

import "sync/atomic"

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like
// Prometheus.
//
// Collector methods sit on the hot path of operations that complete in a
// bounded number of word touches, so they receive counters only, never
// timestamps or durations.
type MetricsCollector interface {
	// RecordInsert is called after each insert. updated is true if the
	// element was newly added, err is nil if the input was valid.
	RecordInsert(updated bool, err error)

	// RecordDelete is called after each delete. updated is true if the
	// element was actually removed, err is nil if the input was valid.
	RecordDelete(updated bool, err error)

	// RecordSuccessor is called after each successor search. found is
	// true if a successor exists, err is nil if the input was valid.
	RecordSuccessor(found bool, err error)

	// RecordRange is called after each range query. count is the number
	// of elements returned, err is nil if the bounds were valid.
	RecordRange(count int, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordInsert(bool, error)    {}
func (NoopMetricsCollector) RecordDelete(bool, error)    {}
func (NoopMetricsCollector) RecordSuccessor(bool, error) {}
func (NoopMetricsCollector) RecordRange(int, error)      {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	InsertCount     atomic.Int64
	InsertUpdates   atomic.Int64
	InsertErrors    atomic.Int64
	DeleteCount     atomic.Int64
	DeleteUpdates   atomic.Int64
	DeleteErrors    atomic.Int64
	SuccessorCount  atomic.Int64
	SuccessorFound  atomic.Int64
	SuccessorErrors atomic.Int64
	RangeCount      atomic.Int64
	RangeElements   atomic.Int64
	RangeErrors     atomic.Int64
}

// RecordInsert implements MetricsCollector.
func (b *BasicMetricsCollector) RecordInsert(updated bool, err error) {
	b.InsertCount.Add(1)
	if updated {
		b.InsertUpdates.Add(1)
	}
	if err != nil {
		b.InsertErrors.Add(1)
	}
}

// RecordDelete implements MetricsCollector.
func (b *BasicMetricsCollector) RecordDelete(updated bool, err error) {
	b.DeleteCount.Add(1)
	if updated {
		b.DeleteUpdates.Add(1)
	}
	if err != nil {
		b.DeleteErrors.Add(1)
	}
}

// RecordSuccessor implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSuccessor(found bool, err error) {
	b.SuccessorCount.Add(1)
	if found {
		b.SuccessorFound.Add(1)
	}
	if err != nil {
		b.SuccessorErrors.Add(1)
	}
}

// RecordRange implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRange(count int, err error) {
	b.RangeCount.Add(1)
	b.RangeElements.Add(int64(count))
	if err != nil {
		b.RangeErrors.Add(1)
	}
}
