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

// Permutations enumerates orderings of a source slice by applying the
// transpositions of a SwapGenerator to a single buffer in place. With the
// default generator every ordering is yielded once and consecutive views
// differ by one swap of neighbours. The order differs from the
// lexicographic one.
type Permutations[T any] struct {
	src   []T
	buf   []T
	swaps SwapGenerator
	phase Phase
}

// NewPermutations returns an enumerator over the Factorial(len(src))
// orderings of src.
func NewPermutations[T any](src []T) *Permutations[T] {
	return NewPermutationsWith(src, NewAdjacentSwaps(len(src)))
}

// NewPermutationsWith returns an enumerator driven by swaps. Every
// transposition swaps must address positions in [0, len(src)).
func NewPermutationsWith[T any](src []T, swaps SwapGenerator) *Permutations[T] {
	buf := make([]T, len(src))
	copy(buf, src)
	return &Permutations[T]{
		src:   src,
		buf:   buf,
		swaps: swaps,
		phase: NotStarted,
	}
}

// Reset restores the source order and rewinds the swap generator. It does
// nothing if the generator does not implement Resetter.
func (p *Permutations[T]) Reset() {
	r, ok := p.swaps.(Resetter)
	if !ok {
		return
	}
	r.Reset()
	copy(p.buf, p.src)
	p.phase = NotStarted
}

func (p *Permutations[T]) Phase() Phase {
	return p.phase
}

// Next applies the next transposition and returns the buffer. Once it
// returns false it keeps doing so until Reset.
func (p *Permutations[T]) Next() ([]T, bool) {
	if p.phase == Exhausted {
		return nil, false
	}
	s, ok := p.swaps.Next()
	if !ok {
		p.phase = Exhausted
		return nil, false
	}
	p.phase = InProgress
	if !s.Identity() {
		n := len(p.buf)
		invariant(s.I >= 0 && s.I < n && s.J >= 0 && s.J < n, "swap (%d, %d) out of range for %d elements", s.I, s.J, n)
		p.buf[s.I], p.buf[s.J] = p.buf[s.J], p.buf[s.I]
	}
	return view(p.buf), true
}

// All returns an iterator over the remaining permutations.
func (p *Permutations[T]) All() iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		for {
			v, ok := p.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}
