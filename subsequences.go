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

package combiter

import (
	"iter"
)

// Subsequences enumerates all the subsequences of a source slice, starting
// with the empty one. The order is a pre-order walk of the "take element i
// or not" decision tree, so for 0 1 2 it is: (), 0, 01, 012, 02, 1, 12, 2.
//
// idxs and buf always have the same length; idxs holds the increasing
// source indices whose values are in buf.
type Subsequences[T any] struct {
	src   []T
	buf   []T
	idxs  []int
	phase Phase
}

// NewSubsequences returns an enumerator over the Subsets(len(src))
// subsequences of src.
func NewSubsequences[T any](src []T) *Subsequences[T] {
	return &Subsequences[T]{
		src:   src,
		buf:   make([]T, 0, len(src)),
		idxs:  make([]int, 0, len(src)),
		phase: NotStarted,
	}
}

// Reset rewinds the enumerator to the empty subsequence.
func (s *Subsequences[T]) Reset() {
	var zero T
	for i := range s.buf {
		s.buf[i] = zero
	}
	s.buf = s.buf[:0]
	s.idxs = s.idxs[:0]
	s.phase = NotStarted
}

func (s *Subsequences[T]) Phase() Phase {
	return s.phase
}

// Next advances to the next subsequence. After the last one it returns
// false once and rewinds itself, so the following call starts over with the
// empty subsequence.
func (s *Subsequences[T]) Next() ([]T, bool) {
	if s.phase == NotStarted {
		s.phase = InProgress
		return view(s.buf), true
	}
	invariant(len(s.idxs) == len(s.buf), "subsequence has %d indices and %d values", len(s.idxs), len(s.buf))
	n := len(s.src)
	next := 0
	if l := len(s.idxs); l > 0 {
		next = s.idxs[l-1] + 1
	}
	if next < n {
		s.idxs = append(s.idxs, next)
		s.buf = append(s.buf, s.src[next])
		return view(s.buf), true
	}
	// end of source reached, drop the tail and bump the new tail
	if l := len(s.idxs); l > 0 {
		var zero T
		s.buf[l-1] = zero
		s.idxs = s.idxs[:l-1]
		s.buf = s.buf[:l-1]
	}
	l := len(s.idxs)
	if l == 0 {
		s.Reset()
		return nil, false
	}
	s.idxs[l-1]++
	s.buf[l-1] = s.src[s.idxs[l-1]]
	return view(s.buf), true
}

// All returns an iterator over the remaining subsequences of the current
// pass.
func (s *Subsequences[T]) All() iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		for {
			v, ok := s.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}
