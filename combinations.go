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

	"github.com/pkg/errors"
)

// Combinations enumerates the k-element subsets of a source slice in
// lexicographic order of source indices. Each yielded view keeps the
// source order.
//
// Slot i of the buffer holds src[j] with i <= j <= n-k+i. diffs[i] records
// n-k+i-j, so a zero marks a slot that already sits at its largest index.
type Combinations[T any] struct {
	src   []T
	buf   []T
	diffs []int
	phase Phase
}

// NewCombinations returns an enumerator over the k-element subsets of
// src. There are Binomial(len(src), k) of them.
func NewCombinations[T any](src []T, k int) (*Combinations[T], error) {
	if k < 0 || k > len(src) {
		return nil, errors.Wrapf(ErrInvalidParameter, "cannot choose %d elements out of %d", k, len(src))
	}
	c := &Combinations[T]{
		src:   src,
		buf:   make([]T, k),
		diffs: make([]int, k),
		phase: NotStarted,
	}
	c.Reset()
	return c, nil
}

// Reset rewinds the enumerator to the first combination.
func (c *Combinations[T]) Reset() {
	n, k := len(c.src), len(c.buf)
	copy(c.buf, c.src[:k])
	for i := range c.diffs {
		c.diffs[i] = n - k
	}
	c.phase = NotStarted
}

func (c *Combinations[T]) Phase() Phase {
	return c.phase
}

// Next advances to the next combination. Once it returns false it keeps
// doing so until Reset.
func (c *Combinations[T]) Next() ([]T, bool) {
	switch c.phase {
	case NotStarted:
		c.phase = InProgress
		return view(c.buf), true
	case Exhausted:
		return nil, false
	}
	i := len(c.diffs) - 1
	for i >= 0 && c.diffs[i] == 0 {
		i--
	}
	if i < 0 {
		c.phase = Exhausted
		return nil, false
	}
	n, k := len(c.src), len(c.buf)
	h := c.diffs[i]
	m := n - h + 1
	for i2 := i; i2 < k; i2++ {
		c.diffs[i2] = h - 1
	}
	copy(c.buf[i:], c.src[m-k+i:m])
	return view(c.buf), true
}

// All returns an iterator over the remaining combinations.
func (c *Combinations[T]) All() iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		for {
			v, ok := c.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}
