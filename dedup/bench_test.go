package dedup_test

import (
	"testing"

	"github.com/marcodamonte/algorithms/dedup"
)

// Run:
//
//	go test -bench=. -benchmem ./dedup

var sink int

func sortedRuns(n, run int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = i / run
	}
	return s
}

func BenchmarkCompactUnchecked(b *testing.B) {
	src := sortedRuns(10_000, 4)
	s := make([]int, len(src))
	b.ResetTimer()
	for range b.N {
		copy(s, src)
		sink = dedup.CompactUnchecked(s, 2)
	}
}

// The adjacency check costs one extra pass and a map of closed runs.
func BenchmarkCompactChecked(b *testing.B) {
	src := sortedRuns(10_000, 4)
	s := make([]int, len(src))
	b.ResetTimer()
	for range b.N {
		copy(s, src)
		n, err := dedup.Compact(s, 2)
		if err != nil {
			b.Fatal(err)
		}
		sink = n
	}
}

func BenchmarkCheckSorted(b *testing.B) {
	s := sortedRuns(10_000, 4)
	for range b.N {
		if err := dedup.CheckSorted(s); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCompactSorted(b *testing.B) {
	src := sortedRuns(10_000, 4)
	s := make([]int, len(src))
	b.ReportAllocs()
	b.ResetTimer()
	for range b.N {
		copy(s, src)
		n, err := dedup.CompactSorted(s, 2)
		if err != nil {
			b.Fatal(err)
		}
		sink = n
	}
}
