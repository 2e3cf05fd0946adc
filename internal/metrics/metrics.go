package metrics

import (
	"runtime"

	"go.uber.org/zap"
)

// MemStats returns current memory statistics
func MemStats() runtime.MemStats {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return m
}

// Delta is the heap activity between two snapshots.
type Delta struct {
	Mallocs    uint64
	TotalAlloc uint64
	NumGC      uint32
}

// Between computes the heap activity from before to after.
func Between(before, after runtime.MemStats) Delta {
	return Delta{
		Mallocs:    after.Mallocs - before.Mallocs,
		TotalAlloc: after.TotalAlloc - before.TotalAlloc,
		NumGC:      after.NumGC - before.NumGC,
	}
}

// Measure runs f and reports what it allocated.
func Measure(f func() error) (Delta, error) {
	before := MemStats()
	err := f()
	after := MemStats()
	return Between(before, after), err
}

// Fields renders the delta for structured logging.
func (d Delta) Fields() []zap.Field {
	return []zap.Field{
		zap.Uint64("mallocs", d.Mallocs),
		zap.Uint64("total_alloc_bytes", d.TotalAlloc),
		zap.Uint32("gc_cycles", d.NumGC),
	}
}
