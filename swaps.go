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

// Swap is a transposition of two buffer positions. A swap with I == J is
// the identity and leaves the buffer as it is.
type Swap struct {
	I, J int
}

func (s Swap) Identity() bool {
	return s.I == s.J
}

// SwapGenerator produces the sequence of transpositions that walks a
// buffer through a family of permutations. The second result is false
// when there are no more transpositions.
type SwapGenerator interface {
	Next() (Swap, bool)
}

// Resetter is implemented by swap generators that can be rewound.
type Resetter interface {
	Reset()
}

// AdjacentSwaps generates the transpositions of the Steinhaus-Johnson-Trotter
// order with Even's speedup: first the identity, then n!-1 swaps of
// neighbouring positions, after which every permutation of n positions was
// visited exactly once.
//
// perm mirrors the permuted buffer with element sizes 0..n-1, pos is its
// inverse and dirs holds -1 or +1 per size.
type AdjacentSwaps struct {
	perm  []int
	pos   []int
	dirs  []int
	phase Phase
}

func NewAdjacentSwaps(n int) *AdjacentSwaps {
	g := &AdjacentSwaps{
		perm: make([]int, n),
		pos:  make([]int, n),
		dirs: make([]int, n),
	}
	g.Reset()
	return g
}

func (g *AdjacentSwaps) Reset() {
	for i := range g.perm {
		g.perm[i] = i
		g.pos[i] = i
		g.dirs[i] = -1
	}
	g.phase = NotStarted
}

// Next returns the next transposition. The swapped positions are always
// neighbours, with I < J.
func (g *AdjacentSwaps) Next() (Swap, bool) {
	switch g.phase {
	case NotStarted:
		g.phase = InProgress
		return Swap{}, true
	case Exhausted:
		return Swap{}, false
	}
	n := len(g.perm)
	// Find the largest mobile size. Every larger size checked on the way
	// is not mobile and has its direction flipped, which is exactly the
	// set of sizes that must flip after the move.
	for m := n - 1; m > 0; m-- {
		p := g.pos[m]
		q := p + g.dirs[m]
		if q >= 0 && q < n && g.perm[q] < m {
			other := g.perm[q]
			g.perm[p], g.perm[q] = other, m
			g.pos[m], g.pos[other] = q, p
			if p > q {
				p, q = q, p
			}
			return Swap{I: p, J: q}, true
		}
		g.dirs[m] = -g.dirs[m]
	}
	g.phase = Exhausted
	return Swap{}, false
}
