package workload

import "time"

// State is the working set of one benchmark run. Current is the source
// record and Accumulated the destination used by round-trip variants.
type State struct {
	Counter     int
	Start       time.Time
	Current     Record
	Accumulated Record
}

// Reset zeroes the counter and both records and marks now as the start of
// the run.
func (s *State) Reset(now time.Time) {
	s.Counter = 0
	s.Start = now
	s.Current = Record{}
	s.Accumulated = Record{}
}

// Expected computes the final record after n iterations with a plain loop.
// It shares no code with the variants and serves as an independent check.
func Expected(n int) Record {
	var a, b, c, d uint32

	for i := 0; i < n; i++ {
		a += uint32(i)
		b += a
		c += b
		d += c
	}

	return Record{A: a, B: b, C: c, D: d}
}
