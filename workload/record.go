// Package workload defines the value type mutated by the benchmark and the
// fixed set of mutation strategies timed against it.
package workload

import (
	"fmt"
	"unsafe"
)

// Record is the unit of mutation: four independent fixed-width fields.
// All arithmetic on its fields wraps on overflow.
type Record struct {
	A uint32 `json:"a" yaml:"a"`
	B uint32 `json:"b" yaml:"b"`
	C uint32 `json:"c" yaml:"c"`
	D uint32 `json:"d" yaml:"d"`
}

// Byte offsets of the Record fields, used by raw-address callbacks.
const (
	offA = unsafe.Offsetof(Record{}.A)
	offB = unsafe.Offsetof(Record{}.B)
	offC = unsafe.Offsetof(Record{}.C)
	offD = unsafe.Offsetof(Record{}.D)
)

// With copies v, lets fn edit the copy through a pointer, and returns the
// copy. The caller's value is never modified and fn must not retain the
// pointer past the call.
func With[T any](v T, fn func(*T)) T {
	fn(&v)

	return v
}

// WithAddr is With with the copy's raw address handed to fn instead of a
// typed pointer.
func WithAddr[T any](v T, fn func(unsafe.Pointer)) T {
	fn(unsafe.Pointer(&v))

	return v
}

// With is the by-value transform bound to Record.
func (r Record) With(fn func(*Record)) Record {
	return With(r, fn)
}

// WithAddr is the by-raw-address transform bound to Record.
func (r Record) WithAddr(fn func(unsafe.Pointer)) Record {
	return WithAddr(r, fn)
}

func (r Record) String() string {
	return fmt.Sprintf("{%d %d %d %d}", r.A, r.B, r.C, r.D)
}

// Digest returns a fixed-width hex rendering of all four fields, used as
// the comparison key when results are reported side by side.
func (r Record) Digest() string {
	return fmt.Sprintf("0x%08x%08x%08x%08x", r.A, r.B, r.C, r.D)
}

// field returns a pointer to the uint32 at off bytes into the record at p.
func field(p unsafe.Pointer, off uintptr) *uint32 {
	return (*uint32)(unsafe.Add(p, off))
}
