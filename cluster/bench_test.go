package cluster_test

import (
	"testing"

	"github.com/katalvlaran/chronocluster/cluster"
	"github.com/katalvlaran/chronocluster/profile"
)

// benchmarkReduce is a helper that reduces a synthetic (load, solar, wind)
// year slice of n periods down to targetCount clusters. It resets the timer
// after fixture generation and fails on unexpected errors.
func benchmarkReduce(b *testing.B, n, targetCount int) {
	periods, err := profile.Join(
		profile.Load(n, 1),
		profile.Solar(n, 2),
		profile.Wind(n, 3),
	)
	if err != nil {
		b.Fatalf("fixture failed: %v", err)
	}

	b.ResetTimer() // ignore fixture setup
	for i := 0; i < b.N; i++ {
		if _, err = cluster.Reduce(periods, targetCount, nil); err != nil {
			b.Fatalf("Reduce failed: %v", err)
		}
	}
}

// BenchmarkReduce_WeekToDay reduces one week of hours to 24 clusters.
func BenchmarkReduce_WeekToDay(b *testing.B) {
	benchmarkReduce(b, 24*7, 24)
}

// BenchmarkReduce_MonthTo96 reduces a month of hours to 96 clusters.
func BenchmarkReduce_MonthTo96(b *testing.B) {
	benchmarkReduce(b, 24*30, 96)
}

// BenchmarkReduce_YearTo672 reduces a full 8760-hour year to 672 typical
// periods, the dominant production shape.
func BenchmarkReduce_YearTo672(b *testing.B) {
	benchmarkReduce(b, 8760, 672)
}

// BenchmarkReduce_YearIdentity measures the validation + arena floor:
// targetCount == n performs no merges at all.
func BenchmarkReduce_YearIdentity(b *testing.B) {
	benchmarkReduce(b, 8760, 8760)
}
