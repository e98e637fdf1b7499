package dedup_test

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/marcodamonte/algorithms/dedup"
)

// ── Samples ──────────────────────────────────────────────────────────────────

func TestCompactSamples(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   []int
		k    int
		want []int
	}{
		{"empty", []int{}, 2, []int{}},
		{"nil", nil, 3, []int{}},
		{"single", []int{7}, 1, []int{7}},
		{"at most two", []int{1, 1, 1, 2, 2, 3}, 2, []int{1, 1, 2, 2, 3}},
		{"longer runs", []int{1, 1, 2, 2, 3, 4, 4, 4, 5}, 2, []int{1, 1, 2, 2, 3, 4, 4, 5}},
		{"unique", []int{1, 1, 2, 2, 3, 4, 4, 4, 5}, 1, []int{1, 2, 3, 4, 5}},
		{"all identical", []int{9, 9, 9, 9, 9}, 3, []int{9, 9, 9}},
		{"k above every run", []int{1, 1, 2, 3, 3, 3}, 10, []int{1, 1, 2, 3, 3, 3}},
		{"descending", []int{5, 5, 5, 3, 1, 1, 1}, 2, []int{5, 5, 3, 1, 1}},
		{"no duplicates", []int{1, 2, 3}, 1, []int{1, 2, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := slices.Clone(tt.in)
			n, err := dedup.Compact(s, tt.k)
			require.NoError(t, err)
			assert.Equal(t, len(tt.want), n)
			if diff := cmp.Diff(tt.want, s[:n], cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("prefix mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCompactDoesNotAllocate(t *testing.T) {
	s := []int{1, 1, 1, 2, 2, 3}
	before := &s[0]
	n, err := dedup.Compact(s, 2)
	require.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.Same(t, before, &s[0])
	assert.Len(t, s, 6, "caller's slice header is untouched")
}

func TestUnique(t *testing.T) {
	t.Parallel()

	s := []string{"a", "a", "b", "c", "c"}
	n, err := dedup.Unique(s)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, s[:n])
}

// ── Validation ───────────────────────────────────────────────────────────────

func TestCompactRejectsInvalidLimit(t *testing.T) {
	t.Parallel()

	for _, k := range []int{0, -1, -100} {
		s := []int{1, 1, 2}
		_, err := dedup.Compact(s, k)
		require.Error(t, err)
		assert.ErrorIs(t, err, dedup.ErrInvalidLimit)
		assert.Equal(t, []int{1, 1, 2}, s)
	}
}

func TestCompactRejectsUnsortedInput(t *testing.T) {
	t.Parallel()

	s := []int{1, 2, 1, 3}
	_, err := dedup.Compact(s, 2)
	require.Error(t, err)
	assert.ErrorIs(t, err, dedup.ErrPrecondition)

	var pe *dedup.PreconditionError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, 2, pe.Index)
	assert.Equal(t, 1, pe.Value)
	assert.Equal(t, []int{1, 2, 1, 3}, s, "slice must be untouched on error")
}

func TestCompactUncheckedNeverPanics(t *testing.T) {
	t.Parallel()

	s := []int{3, 1, 3, 3, 1}
	assert.NotPanics(t, func() { dedup.CompactUnchecked(s, 1) })

	z := []int{1, 1, 2, 2, 2}
	n := dedup.CompactUnchecked(z, 0)
	assert.Equal(t, []int{1, 2}, z[:n], "k < 1 keeps the head of each run")
}

func TestCompactFunc(t *testing.T) {
	t.Parallel()

	fold := func(a, b string) bool { return strings.EqualFold(a, b) }
	s := []string{"Go", "go", "GO", "rust", "Rust", "zig"}
	n, err := dedup.CompactFunc(s, 2, fold)
	require.NoError(t, err)
	assert.Equal(t, []string{"Go", "go", "rust", "Rust", "zig"}, s[:n])

	_, err = dedup.CompactFunc([]string{"a", "B", "A"}, 1, fold)
	assert.ErrorIs(t, err, dedup.ErrPrecondition)

	_, err = dedup.CompactFunc([]string{"a"}, 0, fold)
	assert.ErrorIs(t, err, dedup.ErrInvalidLimit)
}

// ── Properties ───────────────────────────────────────────────────────────────

// keepAtMost is the reference model: walk the input with a counter per value.
func keepAtMost(in []int, k int) []int {
	seen := make(map[int]int)
	out := []int{}
	for _, v := range in {
		if seen[v] < k {
			out = append(out, v)
		}
		seen[v]++
	}
	return out
}

func sortedInts() *rapid.Generator[[]int] {
	return rapid.Custom(func(t *rapid.T) []int {
		s := rapid.SliceOfN(rapid.IntRange(-4, 4), 0, 40).Draw(t, "values")
		slices.Sort(s)
		return s
	})
}

func TestCompactMatchesModel(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		in := sortedInts().Draw(t, "in")
		k := rapid.IntRange(1, 5).Draw(t, "k")

		s := slices.Clone(in)
		n, err := dedup.Compact(s, k)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if diff := cmp.Diff(keepAtMost(in, k), s[:n], cmpopts.EquateEmpty()); diff != "" {
			t.Fatalf("compact(%v, %d) mismatch (-want +got):\n%s", in, k, diff)
		}
	})
}

func TestCompactCapsEveryValue(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		in := sortedInts().Draw(t, "in")
		k := rapid.IntRange(1, 5).Draw(t, "k")

		orig := counts(in)
		s := slices.Clone(in)
		n, err := dedup.Compact(s, k)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got := counts(s[:n])
		for v, c := range orig {
			if want := min(c, k); got[v] != want {
				t.Fatalf("value %d: kept %d, want %d", v, got[v], want)
			}
		}
		if len(got) != len(orig) {
			t.Fatalf("distinct values: got %d, want %d", len(got), len(orig))
		}
	})
}

func TestCompactIsIdempotent(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := sortedInts().Draw(t, "in")
		k := rapid.IntRange(1, 5).Draw(t, "k")

		n, err := dedup.Compact(s, k)
		if err != nil {
			t.Fatalf("first pass: %v", err)
		}
		first := slices.Clone(s[:n])

		m, err := dedup.Compact(s[:n], k)
		if err != nil {
			t.Fatalf("second pass: %v", err)
		}
		if m != n || !slices.Equal(first, s[:m]) {
			t.Fatalf("second pass changed result: %v -> %v", first, s[:m])
		}
	})
}

func TestUncheckedAgreesWithChecked(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		in := sortedInts().Draw(t, "in")
		k := rapid.IntRange(1, 5).Draw(t, "k")

		a, b := slices.Clone(in), slices.Clone(in)
		n, err := dedup.Compact(a, k)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		m := dedup.CompactUnchecked(b, k)
		if n != m || !slices.Equal(a[:n], b[:m]) {
			t.Fatalf("checked %v != unchecked %v", a[:n], b[:m])
		}
	})
}

func counts(s []int) map[int]int {
	m := make(map[int]int)
	for _, v := range s {
		m[v]++
	}
	return m
}

// ── Ordered entry point ──────────────────────────────────────────────────────

func TestCompactSorted(t *testing.T) {
	t.Parallel()

	s := []int{1, 1, 2, 2, 3, 4, 4, 4, 5}
	n, err := dedup.CompactSorted(s, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 1, 2, 2, 3, 4, 4, 5}, s[:n])

	desc := []string{"c", "c", "c", "a"}
	n, err = dedup.CompactSorted(desc, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "a"}, desc[:n])

	n, err = dedup.CompactSorted([]int{}, 3)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestCompactSortedRejectsBadInput(t *testing.T) {
	t.Parallel()

	_, err := dedup.CompactSorted([]int{1}, 0)
	assert.ErrorIs(t, err, dedup.ErrInvalidLimit)

	// Grouped but not monotonic: Compact accepts it, CompactSorted does not.
	grouped := []int{3, 3, 1, 1, 2}
	_, err = dedup.CompactSorted(grouped, 1)
	assert.ErrorIs(t, err, dedup.ErrPrecondition)
	assert.Equal(t, []int{3, 3, 1, 1, 2}, grouped)

	_, err = dedup.Compact(grouped, 1)
	assert.NoError(t, err)
}

// The ordered path must stay within O(1) extra space: no allocation at all,
// however many distinct values the input holds.
func TestCompactSortedDoesNotAllocate(t *testing.T) {
	src := make([]int, 1000)
	for i := range src {
		src[i] = i / 3
	}
	s := make([]int, len(src))

	allocs := testing.AllocsPerRun(100, func() {
		copy(s, src)
		if _, err := dedup.CompactSorted(s, 2); err != nil {
			t.Fatal(err)
		}
	})
	assert.Zero(t, allocs)
}

func TestCompactSortedAgreesWithCompact(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		in := sortedInts().Draw(t, "in")
		k := rapid.IntRange(1, 5).Draw(t, "k")

		a, b := slices.Clone(in), slices.Clone(in)
		n, errA := dedup.Compact(a, k)
		m, errB := dedup.CompactSorted(b, k)
		if errA != nil || errB != nil {
			t.Fatalf("unexpected errors: %v, %v", errA, errB)
		}
		if n != m || !slices.Equal(a[:n], b[:m]) {
			t.Fatalf("Compact %v != CompactSorted %v", a[:n], b[:m])
		}
	})
}
