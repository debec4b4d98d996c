package workload

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(v Variant, n int) State {
	var s State

	s.Reset(time.Time{})
	v.Run(&s, n)

	return s
}

func TestVariantsOrder(t *testing.T) {
	assert.Equal(t, []string{
		"copy-and-assign",
		"callback-mutation (shared instances)",
		"callback-mutation (locally scoped instance)",
		"callback-mutation via raw address",
		"copy-and-assign, alternate loop construct",
		"assign-without-round-trip-copy",
		"callback-mutation-without-round-trip-copy",
	}, Labels())
}

func TestVariantsConcreteScenarios(t *testing.T) {
	tests := []struct {
		name string
		n    int
		want Record
	}{
		{name: "zero iterations", n: 0, want: Record{}},
		{name: "index zero contributes nothing", n: 1, want: Record{}},
		{name: "second iteration", n: 2, want: Record{A: 1, B: 1, C: 1, D: 1}},
		// b must see the a written in the same iteration, c the new b,
		// and d the new c.
		{name: "read after write", n: 3, want: Record{A: 3, B: 4, C: 5, D: 6}},
	}

	for _, tt := range tests {
		for _, v := range Variants() {
			t.Run(tt.name+"/"+v.Label, func(t *testing.T) {
				s := run(v, tt.n)

				assert.Equal(t, tt.want, s.Current)
				assert.Equal(t, tt.n, s.Counter)
			})
		}
	}
}

func TestVariantsEquivalent(t *testing.T) {
	const n = 100_000

	want := Expected(n)

	for _, v := range Variants() {
		t.Run(v.Label, func(t *testing.T) {
			s := run(v, n)

			require.Equal(t, want, s.Current)
			require.Equal(t, n, s.Counter)
		})
	}
}

func TestVariantsWrapOnOverflow(t *testing.T) {
	const maxU32 = math.MaxUint32

	// Index 0 still folds the saturated fields into each other; index 1
	// carries A across the boundary.
	want := Record{A: 0, B: maxU32 - 1, C: maxU32 - 4, D: maxU32 - 8}

	for _, v := range Variants() {
		t.Run(v.Label, func(t *testing.T) {
			var s State

			s.Reset(time.Time{})
			s.Current = Record{A: maxU32, B: maxU32, C: maxU32, D: maxU32}

			v.Run(&s, 2)

			assert.Equal(t, want, s.Current)
		})
	}
}

func TestExpectedMatchesModularArithmetic(t *testing.T) {
	const n = 100_000

	var a, b, c, d uint64

	for i := uint64(0); i < n; i++ {
		a += i
		b += a
		c += b
		d += c
	}

	require.Greater(t, a, uint64(math.MaxUint32), "workload must cross the field width")

	assert.Equal(t, Record{
		A: uint32(a),
		B: uint32(b),
		C: uint32(c),
		D: uint32(d),
	}, Expected(n))
}

func TestResetIsIdempotent(t *testing.T) {
	start := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	for _, v := range Variants() {
		t.Run(v.Label, func(t *testing.T) {
			var s State

			s.Reset(start)
			v.Run(&s, 1000)
			first := s.Current

			s.Reset(start)
			assert.Zero(t, s.Counter)
			assert.Zero(t, s.Current)
			assert.Zero(t, s.Accumulated)
			assert.Equal(t, start, s.Start)

			v.Run(&s, 1000)
			assert.Equal(t, first, s.Current)
		})
	}
}

func TestLookup(t *testing.T) {
	v, err := Lookup(LabelCallbackAddr)
	require.NoError(t, err)
	assert.Equal(t, LabelCallbackAddr, v.Label)

	_, err = Lookup("no-such-variant")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownVariant))
}
