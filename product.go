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

type Pair[A, B any] struct {
	Outer A
	Inner B
}

// Product enumerates the Cartesian product of two sources in row-major
// order: the outer value changes slowest.
//
// The inner source is restarted through a factory each time the outer
// source advances. If a freshly restarted inner source yields nothing, the
// product ends right away instead of draining the outer source, so an
// infinite outer source combined with an empty inner one terminates.
type Product[A, B any] struct {
	outer    Iterator[A]
	newInner func() Iterator[B]
	inner    Iterator[B]
	cur      A
	hasCur   bool
	// whether inner yielded anything since it was last restarted
	pulled bool
	phase  Phase
}

// NewProduct returns an enumerator pairing each value of outer with every
// value of a fresh inner source.
func NewProduct[A, B any](outer Iterator[A], newInner func() Iterator[B]) *Product[A, B] {
	return &Product[A, B]{
		outer:    outer,
		newInner: newInner,
		phase:    NotStarted,
	}
}

// ProductOf returns an enumerator over the len(as)*len(bs) pairs of
// elements of as and bs.
func ProductOf[A, B any](as []A, bs []B) *Product[A, B] {
	return NewProduct[A, B](FromSlice(as), func() Iterator[B] {
		return FromSlice(bs)
	})
}

func (p *Product[A, B]) Phase() Phase {
	return p.phase
}

// Next returns the next pair. Once it returns false it keeps doing so.
func (p *Product[A, B]) Next() (Pair[A, B], bool) {
	if p.phase == NotStarted {
		p.phase = InProgress
		p.advanceOuter()
	}
	for p.phase == InProgress {
		if !p.hasCur {
			p.finish()
			break
		}
		if b, ok := p.inner.Next(); ok {
			p.pulled = true
			return Pair[A, B]{Outer: p.cur, Inner: b}, true
		}
		if !p.pulled {
			p.finish()
			break
		}
		p.advanceOuter()
	}
	return Pair[A, B]{}, false
}

func (p *Product[A, B]) advanceOuter() {
	p.cur, p.hasCur = p.outer.Next()
	p.pulled = false
	if p.hasCur {
		p.inner = p.newInner()
	}
}

func (p *Product[A, B]) finish() {
	var zero A
	p.cur = zero
	p.hasCur = false
	p.inner = nil
	p.phase = Exhausted
}

// All returns an iterator over the remaining pairs.
func (p *Product[A, B]) All() iter.Seq2[A, B] {
	return func(yield func(A, B) bool) {
		for {
			pair, ok := p.Next()
			if !ok || !yield(pair.Outer, pair.Inner) {
				return
			}
		}
	}
}
