package storage

import "testing"

var sinkInt int // prevents dead-code elimination of counter results

// package-level counter, the closest Go gets to a C global
var globalCount int

//go:noinline
func bumpGlobal() int {
	globalCount++
	return globalCount
}

// ---------- 1. Package variable ----------

func BenchmarkPackageVar(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sinkInt = bumpGlobal()
	}
}

// ---------- 2. Caller-owned struct counter ----------

func BenchmarkStructCounter(b *testing.B) {
	b.ReportAllocs()
	var c Counter
	for i := 0; i < b.N; i++ {
		sinkInt = c.Next()
	}
}

// ---------- 3. Closure capture ----------

func BenchmarkClosureCounter(b *testing.B) {
	b.ReportAllocs()
	next := NewClosureCounter()
	for i := 0; i < b.N; i++ {
		sinkInt = next()
	}
}

// ---------- 4. Transient vs persistent ----------

func BenchmarkDemo(b *testing.B) {
	b.ReportAllocs()
	var c Counter
	for i := 0; i < b.N; i++ {
		sinkInt = Demo(&c).Static
	}
}
