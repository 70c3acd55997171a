// Copyright Krzesimir Nowak
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package combiter provides lending enumerators over combinatorial
// derivatives of a slice: combinations, subsequences, permutations,
// Cartesian products and binary tree shapes.
//
// The enumerators reuse a single internal buffer. A slice returned by Next
// is a view into that buffer and is only valid until the following call to
// Next or Reset; copy it (for example with slices.Clone) to keep it. The
// source slice is borrowed for the lifetime of the enumerator and never
// modified. None of the enumerators are safe for concurrent use.
package combiter

import (
	"github.com/pkg/errors"
)

var (
	// ErrInvalidParameter is returned by constructors given parameters
	// outside their domain.
	ErrInvalidParameter = errors.New("invalid parameter")
	// ErrInvariant is the panic value for broken internal state.
	ErrInvariant = errors.New("internal invariant violated")
)

// Phase is the lifecycle state of an enumerator.
type Phase uint8

const (
	// NotStarted means the next call to Next yields the initial object.
	NotStarted Phase = iota
	// InProgress means the next call to Next computes a transition.
	InProgress
	// Exhausted means every object has been yielded.
	Exhausted
)

func (p Phase) String() string {
	switch p {
	case NotStarted:
		return "not-started"
	case InProgress:
		return "in-progress"
	case Exhausted:
		return "exhausted"
	}
	return "unknown"
}

// Iterator is a pull-style source of values. The second result is false
// once the source is exhausted.
type Iterator[T any] interface {
	Next() (T, bool)
}

// SliceIterator yields the elements of a slice in order.
type SliceIterator[T any] struct {
	s   []T
	idx int
}

// FromSlice returns an Iterator over s.
func FromSlice[T any](s []T) *SliceIterator[T] {
	return &SliceIterator[T]{
		s:   s,
		idx: 0,
	}
}

func (it *SliceIterator[T]) Next() (T, bool) {
	if it.idx >= len(it.s) {
		var zero T
		return zero, false
	}
	v := it.s[it.idx]
	it.idx++
	return v, true
}

// view caps the slice so that appending to it never writes into the
// enumerator's buffer.
func view[T any](buf []T) []T {
	return buf[:len(buf):len(buf)]
}

func invariant(cond bool, formatStr string, args ...interface{}) {
	if !cond {
		panic(errors.Wrapf(ErrInvariant, formatStr, args...))
	}
}
