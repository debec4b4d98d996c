package workload

import (
	"errors"
	"fmt"
	"unsafe"
)

// ErrUnknownVariant is returned by Lookup for a label no variant carries.
var ErrUnknownVariant = errors.New("unknown variant")

// Variant is one mutation strategy. Run performs n iterations against s,
// which the caller must have reset. On return s.Counter == n and
// s.Current holds the final record.
type Variant struct {
	Label string
	Run   func(s *State, n int)
}

// Variant labels, in execution order.
const (
	LabelCopyAssign      = "copy-and-assign"
	LabelCallbackShared  = "callback-mutation (shared instances)"
	LabelCallbackLocal   = "callback-mutation (locally scoped instance)"
	LabelCallbackAddr    = "callback-mutation via raw address"
	LabelCopyAssignRange = "copy-and-assign, alternate loop construct"
	LabelAssignNoCopy    = "assign-without-round-trip-copy"
	LabelCallbackNoCopy  = "callback-mutation-without-round-trip-copy"
)

// Variants returns every strategy in the fixed execution order. The first
// one is the baseline the others are checked against.
func Variants() []Variant {
	return []Variant{
		{Label: LabelCopyAssign, Run: copyAssign},
		{Label: LabelCallbackShared, Run: callbackShared},
		{Label: LabelCallbackLocal, Run: callbackLocal},
		{Label: LabelCallbackAddr, Run: callbackAddr},
		{Label: LabelCopyAssignRange, Run: copyAssignRange},
		{Label: LabelAssignNoCopy, Run: assignNoCopy},
		{Label: LabelCallbackNoCopy, Run: callbackNoCopy},
	}
}

// Lookup returns the variant with the given label.
func Lookup(label string) (Variant, error) {
	for _, v := range Variants() {
		if v.Label == label {
			return v, nil
		}
	}

	return Variant{}, fmt.Errorf("%w %q", ErrUnknownVariant, label)
}

// Labels returns the labels of all variants in execution order.
func Labels() []string {
	variants := Variants()
	labels := make([]string, len(variants))

	for i, v := range variants {
		labels[i] = v.Label
	}

	return labels
}

func copyAssign(s *State, n int) {
	for s.Counter = 0; s.Counter < n; s.Counter++ {
		idx := uint32(s.Counter)

		s.Accumulated = s.Current
		s.Accumulated.A += idx
		s.Accumulated.B += s.Accumulated.A
		s.Accumulated.C += s.Accumulated.B
		s.Accumulated.D += s.Accumulated.C
		s.Current = s.Accumulated
	}
}

func callbackShared(s *State, n int) {
	for s.Counter = 0; s.Counter < n; s.Counter++ {
		idx := uint32(s.Counter)

		s.Accumulated = s.Current.With(func(r *Record) { r.A += idx })
		s.Accumulated = s.Accumulated.With(func(r *Record) { r.B += r.A })
		s.Accumulated = s.Accumulated.With(func(r *Record) { r.C += r.B })
		s.Accumulated = s.Accumulated.With(func(r *Record) { r.D += r.C })
		s.Current = s.Accumulated
	}
}

func callbackLocal(s *State, n int) {
	for s.Counter = 0; s.Counter < n; s.Counter++ {
		idx := uint32(s.Counter)

		local := s.Current.With(func(r *Record) { r.A += idx })
		local = local.With(func(r *Record) { r.B += r.A })
		local = local.With(func(r *Record) { r.C += r.B })
		local = local.With(func(r *Record) { r.D += r.C })
		s.Accumulated = local
		s.Current = s.Accumulated
	}
}

func callbackAddr(s *State, n int) {
	for s.Counter = 0; s.Counter < n; s.Counter++ {
		idx := uint32(s.Counter)

		s.Accumulated = s.Current.WithAddr(func(p unsafe.Pointer) {
			*field(p, offA) += idx
		})
		s.Accumulated = s.Accumulated.WithAddr(func(p unsafe.Pointer) {
			*field(p, offB) += *field(p, offA)
		})
		s.Accumulated = s.Accumulated.WithAddr(func(p unsafe.Pointer) {
			*field(p, offC) += *field(p, offB)
		})
		s.Accumulated = s.Accumulated.WithAddr(func(p unsafe.Pointer) {
			*field(p, offD) += *field(p, offC)
		})
		s.Current = s.Accumulated
	}
}

// copyAssignRange is copyAssign driven by a range loop instead of the
// shared counter.
func copyAssignRange(s *State, n int) {
	for i := range n {
		idx := uint32(i)

		s.Accumulated = s.Current
		s.Accumulated.A += idx
		s.Accumulated.B += s.Accumulated.A
		s.Accumulated.C += s.Accumulated.B
		s.Accumulated.D += s.Accumulated.C
		s.Current = s.Accumulated
	}

	s.Counter = max(n, 0)
}

func assignNoCopy(s *State, n int) {
	for s.Counter = 0; s.Counter < n; s.Counter++ {
		idx := uint32(s.Counter)

		s.Current.A += idx
		s.Current.B += s.Current.A
		s.Current.C += s.Current.B
		s.Current.D += s.Current.C
	}
}

func callbackNoCopy(s *State, n int) {
	for s.Counter = 0; s.Counter < n; s.Counter++ {
		idx := uint32(s.Counter)

		s.Current = s.Current.With(func(r *Record) { r.A += idx })
		s.Current = s.Current.With(func(r *Record) { r.B += r.A })
		s.Current = s.Current.With(func(r *Record) { r.C += r.B })
		s.Current = s.Current.With(func(r *Record) { r.D += r.C })
	}
}
